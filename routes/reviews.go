package routes

import (
	"github.com/gin-gonic/gin"
	reviewcontroller "github.com/jakhongirov/lazuno/controllers/review"
	"github.com/jakhongirov/lazuno/middleware"
)

// SetupReviewRoutes registers all "/reviews/*" endpoints. Creation and
// per-product listing are public so the storefront can post reviews.
func SetupReviewRoutes(api *gin.RouterGroup, d Deps) {
	reviews := api.Group("/reviews")
	{
		reviews.GET("/product/:product_id", reviewcontroller.GetProductReviews(d.Reviews))
		reviews.POST("", reviewcontroller.CreateReview(d.Reviews))

		protected := reviews.Group("")
		protected.Use(middleware.RequireAuth(d.Tokens))
		{
			protected.GET("/list", reviewcontroller.GetReviewsList(d.Reviews))
			protected.GET("/:id", reviewcontroller.GetReviewByID(d.Reviews))
			protected.DELETE("/:id", reviewcontroller.DeleteReview(d.Reviews))
		}
	}
}
