package services

import (
	"errors"

	"github.com/jakhongirov/lazuno/models"
	"gorm.io/gorm"
)

// Reviews manages customer reviews attached to products.
type Reviews struct {
	db *gorm.DB
}

func NewReviews(db *gorm.DB) *Reviews {
	return &Reviews{db: db}
}

type CreateReviewInput struct {
	Name      string
	Email     string
	Title     string
	Text      string
	Stars     int
	ProductID uint
}

func (s *Reviews) List(p PageParams) ([]models.Review, int64, error) {
	var total int64
	if err := s.db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := p.apply(s.db.Model(&models.Review{})).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *Reviews) ListByProduct(productID uint, p PageParams) ([]models.Review, int64, error) {
	base := s.db.Model(&models.Review{}).Where("product_id = ?", productID)

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := p.apply(base.Session(&gorm.Session{})).Find(&reviews).Error; err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (s *Reviews) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

// Create persists a review after checking the product exists.
func (s *Reviews) Create(in CreateReviewInput) (*models.Review, error) {
	var product models.Product
	if err := s.db.First(&product, in.ProductID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	review := models.Review{
		Name:      in.Name,
		Email:     in.Email,
		Title:     in.Title,
		Text:      in.Text,
		Stars:     in.Stars,
		ProductID: product.ID,
	}
	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (s *Reviews) Delete(id uint) error {
	review, err := s.GetByID(id)
	if err != nil {
		return err
	}
	return s.db.Delete(review).Error
}
