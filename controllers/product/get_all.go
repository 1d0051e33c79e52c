package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/controllers/paging"
	"github.com/jakhongirov/lazuno/services"
)

// GetProductsList returns the paginated admin listing.
func GetProductsList(svc *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}

		products, total, err := svc.List(page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products, "total": total})
	}
}

// GetProductsByCategory returns the public listing for one category.
// Query: categoryId, take, page.
func GetProductsByCategory(svc *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}

		categoryID, err := strconv.ParseUint(c.Query("categoryId"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid categoryId"})
			return
		}

		products, total, err := svc.ListByCategory(uint(categoryID), page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products, "total": total})
	}
}

// GetProductColors returns the per-color product counts for a language,
// for building filter widgets.
func GetProductColors(svc *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.DefaultQuery("lang", "en")

		counts, err := svc.ColorCounts(lang)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch color counts"})
			return
		}
		c.JSON(http.StatusOK, counts)
	}
}
