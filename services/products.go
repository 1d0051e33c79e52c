package services

import (
	"errors"
	"math"
	"mime/multipart"

	"github.com/jakhongirov/lazuno/models"
	"github.com/jakhongirov/lazuno/storage"
	"gorm.io/gorm"
)

// Products manages the product catalog: listings, filtering, the public
// detail view with its view counter, and image attachments.
type Products struct {
	db    *gorm.DB
	store *storage.Store
}

func NewProducts(db *gorm.DB, store *storage.Store) *Products {
	return &Products{db: db, store: store}
}

type CreateProductInput struct {
	Title       string
	Description string
	Color       string
	CategoryID  uint
}

type UpdateProductInput struct {
	Title       string
	Description string
	Color       string
	CategoryID  uint
}

// ProductFilter holds optional IN predicates, AND-ed when both present.
// An absent or empty list adds no predicate at all.
type ProductFilter struct {
	Colors      []string `json:"color"`
	CategoryIDs []uint   `json:"category_id"`
}

// ProductDetail is the aggregate read: product with category, reviews,
// average rating and review count.
type ProductDetail struct {
	models.Product
	AverageRating float64 `json:"averageRating"`
	ReviewsCount  int     `json:"reviews_count"`
}

// ColorCount is one row of the per-language color histogram.
type ColorCount struct {
	Color        string `json:"color"`
	ProductCount int64  `json:"product_count"`
}

func (s *Products) List(p PageParams) ([]models.Product, int64, error) {
	var total int64
	if err := s.db.Model(&models.Product{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := p.apply(s.db.Model(&models.Product{})).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *Products) ListByCategory(categoryID uint, p PageParams) ([]models.Product, int64, error) {
	base := s.db.Model(&models.Product{}).Where("category_id = ?", categoryID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	err := p.apply(base.Session(&gorm.Session{})).Preload("Category").Find(&products).Error
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// ColorCounts returns how many products exist per color within the
// categories of a language.
func (s *Products) ColorCounts(lang string) ([]ColorCount, error) {
	var counts []ColorCount
	err := s.db.Model(&models.Product{}).
		Select("products.color AS color, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN categories ON categories.id = products.category_id").
		Where("categories.lang = ?", lang).
		Group("products.color").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *Products) Filter(filter ProductFilter, p PageParams) ([]models.Product, int64, error) {
	base := s.db.Model(&models.Product{})
	if len(filter.Colors) > 0 {
		base = base.Where("color IN ?", filter.Colors)
	}
	if len(filter.CategoryIDs) > 0 {
		base = base.Where("category_id IN ?", filter.CategoryIDs)
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := p.apply(base.Session(&gorm.Session{})).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// Get is the public detail read. It bumps the view counter with a single
// in-place UPDATE before loading the aggregate, so concurrent reads
// cannot lose increments.
func (s *Products) Get(id uint) (*ProductDetail, error) {
	res := s.db.Model(&models.Product{}).
		Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + ?", 1))
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrProductNotFound
	}
	return s.detail(id)
}

// GetForAdmin is the detail read without the view-counter side effect.
func (s *Products) GetForAdmin(id uint) (*ProductDetail, error) {
	return s.detail(id)
}

func (s *Products) detail(id uint) (*ProductDetail, error) {
	var product models.Product
	err := s.db.Preload("Category").Preload("Reviews").First(&product, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	var totalStars int
	for _, review := range product.Reviews {
		totalStars += review.Stars
	}

	average := 0.0
	if len(product.Reviews) > 0 {
		average = math.Round(float64(totalStars)/float64(len(product.Reviews))*10) / 10
	}

	return &ProductDetail{
		Product:       product,
		AverageRating: average,
		ReviewsCount:  len(product.Reviews),
	}, nil
}

// Create persists a product after checking the category exists. Uploaded
// images are stored first and recorded as name/URL pairs.
func (s *Products) Create(in CreateProductInput, images []*multipart.FileHeader) (*models.Product, error) {
	var category models.Category
	if err := s.db.First(&category, in.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}

	names, err := s.store.SaveAll(images)
	if err != nil {
		return nil, err
	}
	urls := make([]string, len(names))
	for i, name := range names {
		urls[i] = s.store.URL(name)
	}

	product := models.Product{
		Title:       in.Title,
		Description: in.Description,
		Color:       in.Color,
		ImageURLs:   models.StringArray(urls),
		ImageNames:  models.StringArray(names),
		CategoryID:  category.ID,
	}
	if err := s.db.Create(&product).Error; err != nil {
		return nil, err
	}
	product.Category = &category
	return &product, nil
}

// Update overwrites only the provided fields. New images replace the full
// existing set and the old files are deleted best-effort.
func (s *Products) Update(id uint, in UpdateProductInput, images []*multipart.FileHeader) (*models.Product, error) {
	var product models.Product
	if err := s.db.Preload("Category").First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if in.Title != "" {
		product.Title = in.Title
	}
	if in.Description != "" {
		product.Description = in.Description
	}
	if in.Color != "" {
		product.Color = in.Color
	}
	if in.CategoryID != 0 {
		var category models.Category
		if err := s.db.First(&category, in.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrCategoryNotFound
			}
			return nil, err
		}
		product.CategoryID = category.ID
		product.Category = &category
	}

	if len(images) > 0 {
		names, err := s.store.SaveAll(images)
		if err != nil {
			return nil, err
		}
		s.store.RemoveAll(product.ImageNames)

		urls := make([]string, len(names))
		for i, name := range names {
			urls[i] = s.store.URL(name)
		}
		product.ImageNames = models.StringArray(names)
		product.ImageURLs = models.StringArray(urls)
	}

	if err := s.db.Save(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product and its image files; reviews cascade at the
// storage layer.
func (s *Products) Delete(id uint) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	if err := s.db.Delete(&product).Error; err != nil {
		return err
	}

	s.store.RemoveAll(product.ImageNames)
	return nil
}
