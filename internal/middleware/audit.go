package middleware

import (
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Audit records one row per authenticated request after the handler
// chain completes. Failures to write the row are ignored.
func Audit(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		user, ok := CurrentUser(c)
		if !ok {
			return
		}

		entry := models.AuditLog{
			UserID:    &user.ID,
			Method:    c.Request.Method,
			Path:      c.Request.URL.Path,
			IP:        c.ClientIP(),
			UserAgent: c.Request.UserAgent(),
		}
		_ = db.Create(&entry).Error
	}
}
