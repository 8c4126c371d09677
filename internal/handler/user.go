package handler

import (
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/middleware"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
)

// GetMe returns the authenticated caller's account.
func GetMe(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
		return
	}

	util.Success(c, util.Response{
		"user": gin.H{
			"id":         user.ID,
			"username":   user.Username,
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"mail":       user.Mail,
			"role":       user.Role,
		},
	})
}
