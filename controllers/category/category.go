package categorycontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jakhongirov/lazuno/controllers/paging"
	"github.com/jakhongirov/lazuno/services"
)

// GetCategoriesList returns the paginated admin listing.
func GetCategoriesList(svc *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}

		categories, total, err := svc.List(page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": categories, "total": total})
	}
}

// GetCategoriesByLang returns the public listing for one language.
func GetCategoriesByLang(svc *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, err := paging.FromQuery(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid pagination parameters"})
			return
		}
		lang := c.DefaultQuery("lang", "en")

		categories, total, err := svc.ListByLang(lang, page)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": categories, "total": total})
	}
}

// GetCategoriesFilter returns every category of a language with its
// product count, for building filter widgets.
func GetCategoriesFilter(svc *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.DefaultQuery("lang", "en")

		counts, err := svc.ProductCounts(lang)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch category counts"})
			return
		}
		c.JSON(http.StatusOK, counts)
	}
}

// CreateCategory creates a category from a multipart form with an
// optional "image" file.
func CreateCategory(svc *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		title := c.PostForm("title")
		lang := c.PostForm("lang")
		if title == "" || lang == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "title and lang are required"})
			return
		}

		image, err := c.FormFile("image")
		if err != nil {
			image = nil
		}

		category, err := svc.Create(services.CreateCategoryInput{Title: title, Lang: lang}, image)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
			return
		}
		c.JSON(http.StatusCreated, category)
	}
}

// UpdateCategory applies a partial update; a new image replaces and
// deletes the stored one.
func UpdateCategory(svc *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		image, err := c.FormFile("image")
		if err != nil {
			image = nil
		}

		category, err := svc.Update(uint(id), services.UpdateCategoryInput{
			Title: c.PostForm("title"),
			Lang:  c.PostForm("lang"),
		}, image)
		if err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
			}
			return
		}
		c.JSON(http.StatusOK, category)
	}
}

func DeleteCategory(svc *services.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category ID"})
			return
		}

		if err := svc.Delete(uint(id)); err != nil {
			if errors.Is(err, services.ErrCategoryNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
	}
}
