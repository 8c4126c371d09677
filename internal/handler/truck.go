package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// TruckHandler exposes CRUD over the truck fleet.
type TruckHandler struct {
	DB *gorm.DB
}

func NewTruckHandler(db *gorm.DB) *TruckHandler {
	return &TruckHandler{DB: db}
}

type truckReq struct {
	LicensePlate string  `json:"license_plate"`
	Model        string  `json:"model"`
	Kilometers   float64 `json:"kilometers"`
}

func (h *TruckHandler) Save(c *gin.Context) {
	var req truckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateTruck(req.LicensePlate, req.Model); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	truck := models.Truck{
		LicensePlate: req.LicensePlate,
		Model:        req.Model,
		Kilometers:   req.Kilometers,
	}
	if err := h.DB.Create(&truck).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			util.Error(c, http.StatusConflict, util.CodeConflict, "license plate already registered")
			return
		}
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create truck failed")
		return
	}

	util.Created(c, util.Response{"truck": truck})
}

func (h *TruckHandler) List(c *gin.Context) {
	var trucks []models.Truck
	if err := h.DB.Find(&trucks).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "list trucks failed")
		return
	}
	util.Success(c, util.Response{"trucks": trucks})
}

func (h *TruckHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var truck models.Truck
	if err := h.DB.First(&truck, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "truck not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get truck failed")
		}
		return
	}
	util.Success(c, util.Response{"truck": truck})
}

func (h *TruckHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req truckReq
	if err := c.ShouldBindJSON(&req); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid request body")
		return
	}
	if err := util.ValidateTruck(req.LicensePlate, req.Model); err != nil {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, err.Error())
		return
	}

	var truck models.Truck
	if err := h.DB.First(&truck, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.Error(c, http.StatusNotFound, util.CodeNotFound, "truck not found")
		} else {
			util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "get truck failed")
		}
		return
	}

	truck.LicensePlate = req.LicensePlate
	truck.Model = req.Model
	truck.Kilometers = req.Kilometers
	if err := h.DB.Save(&truck).Error; err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "update truck failed")
		return
	}

	util.Success(c, util.Response{"truck": truck})
}

func (h *TruckHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	res := h.DB.Delete(&models.Truck{}, id)
	if res.Error != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "delete truck failed")
		return
	}
	if res.RowsAffected == 0 {
		util.Error(c, http.StatusNotFound, util.CodeNotFound, "truck not found")
		return
	}
	c.Status(http.StatusNoContent)
}

// parseID reads the :id path parameter, answering 400 itself when the
// value is not a positive integer.
func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		util.Error(c, http.StatusBadRequest, util.CodeInvalidParam, "invalid id")
		return 0, false
	}
	return uint(id), true
}
