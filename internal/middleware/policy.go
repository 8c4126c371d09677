package middleware

import (
	"net/http"

	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/models"
	"github.com/JohnnyBC2022/CodeIntelligence-Delivery/internal/util"

	"github.com/gin-gonic/gin"
)

var (
	anyRole   = []models.Role{models.RoleAdmin, models.RoleUser}
	adminOnly = []models.Role{models.RoleAdmin}
)

// routePolicy is the closed authorization table, keyed by
// "METHOD route-pattern". Reads are open to every role, writes and
// exports require ADMIN. Protected routes missing from the table only
// require an authenticated caller.
var routePolicy = map[string][]models.Role{
	"POST /user/signout":                          anyRole,
	"GET /api/me":                                 anyRole,
	"POST /api/truck-driver-trucks/assign":        adminOnly,
	"GET /api/truck-driver-trucks":                anyRole,
	"GET /api/truck-driver-trucks/get/:id":        anyRole,
	"PUT /api/truck-driver-trucks/update/:id":     adminOnly,
	"DELETE /api/truck-driver-trucks/delete/:id":  adminOnly,
	"GET /api/packs/export/csv":                   adminOnly,
	"GET /api/packs/export/xlsx":                  adminOnly,
}

func init() {
	for _, base := range []string{
		"/api/trucks",
		"/api/truck-drivers",
		"/api/packs",
		"/api/cities",
		"/api/delivery-addresses",
	} {
		routePolicy["POST "+base+"/save"] = adminOnly
		routePolicy["GET "+base] = anyRole
		routePolicy["GET "+base+"/get/:id"] = anyRole
		routePolicy["PUT "+base+"/update/:id"] = adminOnly
		routePolicy["DELETE "+base+"/delete/:id"] = adminOnly
	}
}

// Authorize enforces the route policy: 401 when no identity was
// established by the request gate, 403 when the caller's role is not
// allowed for the matched route.
func Authorize() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			util.Error(c, http.StatusUnauthorized, util.CodeAuth, "authentication required")
			c.Abort()
			return
		}

		allowed, found := routePolicy[c.Request.Method+" "+c.FullPath()]
		if !found {
			c.Next()
			return
		}
		for _, role := range allowed {
			if user.Role == role {
				c.Next()
				return
			}
		}

		util.Error(c, http.StatusForbidden, util.CodeForbidden, "insufficient privileges")
		c.Abort()
	}
}
