package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/jakhongirov/lazuno/controllers/product"
	"github.com/jakhongirov/lazuno/middleware"
)

// SetupProductRoutes registers all "/products/*" endpoints.
func SetupProductRoutes(api *gin.RouterGroup, d Deps) {
	products := api.Group("/products")
	{
		// Public storefront reads
		products.GET("", productcontroller.GetProductsByCategory(d.Products))
		products.GET("/color", productcontroller.GetProductColors(d.Products))
		products.POST("/filter", productcontroller.FilterProducts(d.Products))
		products.GET("/:id", productcontroller.GetProductByID(d.Products))

		protected := products.Group("")
		protected.Use(middleware.RequireAuth(d.Tokens))
		{
			protected.GET("/list", productcontroller.GetProductsList(d.Products))
			protected.GET("/admin/:id", productcontroller.GetProductAdmin(d.Products))
			protected.GET("/export-excel", productcontroller.ExportProductsToExcel(d.Products))
			protected.POST("", productcontroller.CreateProduct(d.Products))
			protected.PUT("/:id", productcontroller.UpdateProduct(d.Products))
			protected.DELETE("/:id", productcontroller.DeleteProduct(d.Products))
		}
	}
}
