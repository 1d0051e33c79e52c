package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/auth"
	"github.com/jakhongirov/lazuno/services"
)

// Deps carries the service graph built by the composition root into the
// route tables.
type Deps struct {
	Users      *services.Users
	Categories *services.Categories
	Products   *services.Products
	Reviews    *services.Reviews
	Tokens     *auth.TokenManager
}

// SetupRoutes is the single entry-point that wires every route group
// under the common /api/v1 prefix.
func SetupRoutes(r *gin.Engine, d Deps) {
	api := r.Group("/api/v1")

	SetupUserRoutes(api, d)
	SetupCategoryRoutes(api, d)
	SetupProductRoutes(api, d)
	SetupReviewRoutes(api, d)
}
