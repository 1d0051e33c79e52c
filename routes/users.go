package routes

import (
	"github.com/gin-gonic/gin"
	usercontroller "github.com/jakhongirov/lazuno/controllers/user"
	"github.com/jakhongirov/lazuno/middleware"
	"github.com/jakhongirov/lazuno/models"
	"golang.org/x/time/rate"
)

// SetupUserRoutes registers all "/users/*" endpoints. Account management
// is SUPER_ADMIN-gated; login and super-admin bootstrap are public.
func SetupUserRoutes(api *gin.RouterGroup, d Deps) {
	users := api.Group("/users")
	{
		users.POST("/login", middleware.RateLimit(rate.Limit(5), 10), usercontroller.Login(d.Users))
		users.POST("/create/superadmin", usercontroller.CreateSuperAdmin(d.Users))

		protected := users.Group("")
		protected.Use(middleware.RequireAuth(d.Tokens))
		{
			protected.GET("/list", middleware.RequireRoles(models.RoleSuperAdmin), usercontroller.GetUsers(d.Users))
			protected.GET("/:id", usercontroller.GetUserByID(d.Users))
			protected.POST("/create/admin", middleware.RequireRoles(models.RoleSuperAdmin), usercontroller.CreateAdmin(d.Users))
			protected.PUT("/:id", middleware.RequireRoles(models.RoleSuperAdmin), usercontroller.UpdateUser(d.Users))
			protected.DELETE("/:id", middleware.RequireRoles(models.RoleSuperAdmin), usercontroller.DeleteUser(d.Users))
		}
	}
}
