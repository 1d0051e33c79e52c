package routes

import (
	"github.com/gin-gonic/gin"
	categorycontroller "github.com/jakhongirov/lazuno/controllers/category"
	"github.com/jakhongirov/lazuno/middleware"
)

// SetupCategoryRoutes registers all "/categories/*" endpoints.
func SetupCategoryRoutes(api *gin.RouterGroup, d Deps) {
	categories := api.Group("/categories")
	{
		// Public storefront reads
		categories.GET("", categorycontroller.GetCategoriesByLang(d.Categories))
		categories.GET("/filter", categorycontroller.GetCategoriesFilter(d.Categories))

		protected := categories.Group("")
		protected.Use(middleware.RequireAuth(d.Tokens))
		{
			protected.GET("/list", categorycontroller.GetCategoriesList(d.Categories))
			protected.POST("", categorycontroller.CreateCategory(d.Categories))
			protected.PUT("/:id", categorycontroller.UpdateCategory(d.Categories))
			protected.DELETE("/:id", categorycontroller.DeleteCategory(d.Categories))
		}
	}
}
