package productcontroller

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/services"
)

// UpdateProduct applies a partial update. New "files" uploads replace
// the whole image set and delete the previously stored files.
func UpdateProduct(svc *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
			return
		}

		var categoryID uint
		if v := c.PostForm("category_id"); v != "" {
			parsed, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
				return
			}
			categoryID = uint(parsed)
		}

		var uploads []*multipart.FileHeader
		if form, err := c.MultipartForm(); err == nil && form != nil {
			uploads = form.File["files"]
		}

		product, err := svc.Update(uint(id), services.UpdateProductInput{
			Title:       c.PostForm("title"),
			Description: c.PostForm("description"),
			Color:       c.PostForm("color"),
			CategoryID:  categoryID,
		}, uploads)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrProductNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			case errors.Is(err, services.ErrCategoryNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			}
			return
		}
		c.JSON(http.StatusOK, product)
	}
}
