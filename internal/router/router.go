package router

import (
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/config"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/handler"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/middleware"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter configures the gin engine, the middleware chain and all
// API routes.
func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	r := gin.New()

	users := repository.NewUserRepository(db)
	tokens := repository.NewTokenRepository(db)

	// the request gate runs on every route; it only enriches the
	// context, authorization happens on the protected group below
	r.Use(
		middleware.RequestID(),
		gin.Logger(),
		gin.Recovery(),
		middleware.RequestGate(cfg.JWT.Secret, users, tokens),
	)

	authHandler := handler.NewAuthHandler(users, tokens, cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireHours, cfg.Security.BcryptCost)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.POST("/logout", authHandler.Logout)

	protected := r.Group("")
	protected.Use(
		middleware.Authorize(),
		middleware.Audit(db),
	)

	protected.POST("/user/signout", authHandler.SignOut)

	api := protected.Group("/api")
	api.GET("/me", handler.GetMe)

	truckHandler := handler.NewTruckHandler(db)
	trucks := api.Group("/trucks")
	trucks.POST("/save", truckHandler.Save)
	trucks.GET("", truckHandler.List)
	trucks.GET("/get/:id", truckHandler.Get)
	trucks.PUT("/update/:id", truckHandler.Update)
	trucks.DELETE("/delete/:id", truckHandler.Delete)

	driverHandler := handler.NewTruckDriverHandler(db)
	drivers := api.Group("/truck-drivers")
	drivers.POST("/save", driverHandler.Save)
	drivers.GET("", driverHandler.List)
	drivers.GET("/get/:id", driverHandler.Get)
	drivers.PUT("/update/:id", driverHandler.Update)
	drivers.DELETE("/delete/:id", driverHandler.Delete)

	packHandler := handler.NewPackHandler(db)
	exportHandler := handler.NewExportHandler(db)
	packs := api.Group("/packs")
	packs.POST("/save", packHandler.Save)
	packs.GET("", packHandler.List)
	packs.GET("/get/:id", packHandler.Get)
	packs.PUT("/update/:id", packHandler.Update)
	packs.DELETE("/delete/:id", packHandler.Delete)
	packs.GET("/export/csv", exportHandler.ExportPacksCSV)
	packs.GET("/export/xlsx", exportHandler.ExportPacksXLSX)

	cityHandler := handler.NewCityHandler(db)
	cities := api.Group("/cities")
	cities.POST("/save", cityHandler.Save)
	cities.GET("", cityHandler.List)
	cities.GET("/get/:id", cityHandler.Get)
	cities.PUT("/update/:id", cityHandler.Update)
	cities.DELETE("/delete/:id", cityHandler.Delete)

	addressHandler := handler.NewDeliveryAddressHandler(db)
	addresses := api.Group("/delivery-addresses")
	addresses.POST("/save", addressHandler.Save)
	addresses.GET("", addressHandler.List)
	addresses.GET("/get/:id", addressHandler.Get)
	addresses.PUT("/update/:id", addressHandler.Update)
	addresses.DELETE("/delete/:id", addressHandler.Delete)

	assignmentHandler := handler.NewAssignmentHandler(db)
	assignments := api.Group("/truck-driver-trucks")
	assignments.POST("/assign", assignmentHandler.Assign)
	assignments.GET("", assignmentHandler.List)
	assignments.GET("/get/:id", assignmentHandler.Get)
	assignments.PUT("/update/:id", assignmentHandler.Update)
	assignments.DELETE("/delete/:id", assignmentHandler.Delete)

	return r
}
