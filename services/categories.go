package services

import (
	"errors"
	"mime/multipart"

	"github.com/jakhongirov/lazuno/models"
	"github.com/jakhongirov/lazuno/storage"
	"gorm.io/gorm"
)

// Categories manages the category catalog and its image attachments.
type Categories struct {
	db    *gorm.DB
	store *storage.Store
}

func NewCategories(db *gorm.DB, store *storage.Store) *Categories {
	return &Categories{db: db, store: store}
}

type CreateCategoryInput struct {
	Title string
	Lang  string
}

type UpdateCategoryInput struct {
	Title string
	Lang  string
}

// CategoryProductCount is one row of the grouped category/product join.
type CategoryProductCount struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Lang         string `json:"lang"`
	ProductCount int64  `json:"product_count"`
}

func (s *Categories) List(p PageParams) ([]models.Category, int64, error) {
	var total int64
	if err := s.db.Model(&models.Category{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	if err := p.apply(s.db.Model(&models.Category{})).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *Categories) ListByLang(lang string, p PageParams) ([]models.Category, int64, error) {
	base := s.db.Model(&models.Category{}).Where("lang = ?", lang)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	if err := p.apply(base.Session(&gorm.Session{})).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

// ProductCounts returns each category of a language with the number of
// products it holds, including empty categories.
func (s *Categories) ProductCounts(lang string) ([]CategoryProductCount, error) {
	var counts []CategoryProductCount
	err := s.db.Model(&models.Category{}).
		Select("categories.id AS id, categories.title AS title, categories.lang AS lang, COUNT(products.id) AS product_count").
		Joins("LEFT JOIN products ON products.category_id = categories.id").
		Where("categories.lang = ?", lang).
		Group("categories.id").
		Group("categories.title").
		Group("categories.lang").
		Scan(&counts).Error
	if err != nil {
		return nil, err
	}
	return counts, nil
}

func (s *Categories) GetByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return &category, nil
}

func (s *Categories) Create(in CreateCategoryInput, image *multipart.FileHeader) (*models.Category, error) {
	category := models.Category{
		Title: in.Title,
		Lang:  in.Lang,
	}

	if image != nil {
		name, err := s.store.Save(image)
		if err != nil {
			return nil, err
		}
		category.ImageName = name
		category.ImageURL = s.store.URL(name)
	}

	if err := s.db.Create(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// Update overwrites only the provided fields. A replacement image
// deletes the previously stored file.
func (s *Categories) Update(id uint, in UpdateCategoryInput, image *multipart.FileHeader) (*models.Category, error) {
	category, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if in.Title != "" {
		category.Title = in.Title
	}
	if in.Lang != "" {
		category.Lang = in.Lang
	}

	if image != nil {
		name, err := s.store.Save(image)
		if err != nil {
			return nil, err
		}
		s.store.Remove(category.ImageName)
		category.ImageName = name
		category.ImageURL = s.store.URL(name)
	}

	if err := s.db.Save(category).Error; err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category; its products cascade at the storage layer
// and the image file is removed best-effort.
func (s *Categories) Delete(id uint) error {
	category, err := s.GetByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(category).Error; err != nil {
		return err
	}

	s.store.Remove(category.ImageName)
	return nil
}
