package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/controllers/paging"
	"github.com/jakhongirov/lazuno/services"
)

// FilterProducts returns products matching the optional color and
// category-id sets in the JSON body. Empty lists add no predicate.
func FilterProducts(svc *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}

		var filter services.ProductFilter
		if err := c.ShouldBindJSON(&filter); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filter body"})
			return
		}

		products, total, err := svc.Filter(filter, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to filter products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": products, "total": total})
	}
}
