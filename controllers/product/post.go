package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/services"
)

// CreateProduct creates a product from a multipart form. Required
// fields: title, description, color, category_id. Images arrive as the
// repeated "files" field.
func CreateProduct(svc *services.Products) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		description := c.PostForm("description")
		color := c.PostForm("color")
		categoryIDStr := c.PostForm("category_id")
		if title == "" || description == "" || color == "" || categoryIDStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title, description, color and category_id are required"})
			return
		}

		categoryID, err := strconv.ParseUint(categoryIDStr, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}

		form, err := c.MultipartForm()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
			return
		}
		files := form.File["files"]

		product, err := svc.Create(services.CreateProductInput{
			Title:       title,
			Description: description,
			Color:       color,
			CategoryID:  uint(categoryID),
		}, files)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			}
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
