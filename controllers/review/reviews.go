package reviewcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/controllers/paging"
	"github.com/jakhongirov/lazuno/services"
)

type createReviewRequest struct {
	Name      string `json:"name" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Title     string `json:"title" binding:"required"`
	Text      string `json:"text" binding:"required"`
	Stars     int    `json:"stars" binding:"omitempty,min=0,max=5"`
	ProductID uint   `json:"product_id" binding:"required"`
}

// GetReviewsList returns the paginated admin listing.
func GetReviewsList(svc *services.Reviews) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}

		reviews, total, err := svc.List(page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": reviews, "total": total})
	}
}

// GetProductReviews returns the public review listing for one product.
// URL param: /reviews/product/:product_id
func GetProductReviews(svc *services.Reviews) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.ParseUint(c.Param("product_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}

		reviews, total, err := svc.ListByProduct(uint(productID), page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": reviews, "total": total})
	}
}

func GetReviewByID(svc *services.Reviews) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		review, err := svc.GetByID(uint(id))
		if err != nil {
			if errors.Is(err, services.ErrReviewNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch review"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": review})
	}
}

// CreateReview records a customer review for an existing product.
func CreateReview(svc *services.Reviews) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createReviewRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, title, text and product_id are required; stars must be 0-5"})
			return
		}

		review, err := svc.Create(services.CreateReviewInput{
			Name:      req.Name,
			Email:     req.Email,
			Title:     req.Title,
			Text:      req.Text,
			Stars:     req.Stars,
			ProductID: req.ProductID,
		})
		if err != nil {
			if errors.Is(err, services.ErrProductNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create review"})
			}
			return
		}
		c.JSON(http.StatusCreated, review)
	}
}

func DeleteReview(svc *services.Reviews) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid review ID"})
			return
		}

		if err := svc.Delete(uint(id)); err != nil {
			if errors.Is(err, services.ErrReviewNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
	}
}
