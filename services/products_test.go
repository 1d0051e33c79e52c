package services

import (
	"fmt"
	"testing"

	"github.com/jakhongirov/lazuno/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProductsService(t *testing.T) (*Products, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewProducts(db, newTestStore(t)), db
}

func seedCategory(t *testing.T, db *gorm.DB, lang string) *models.Category {
	t.Helper()
	category := models.Category{Title: "Electronics", Lang: lang}
	require.NoError(t, db.Create(&category).Error)
	return &category
}

func TestCreateProduct(t *testing.T) {
	svc, db := newProductsService(t)
	category := seedCategory(t, db, "en")

	product, err := svc.Create(CreateProductInput{
		Title:       "Phone",
		Description: "A phone",
		Color:       "black",
		CategoryID:  category.ID,
	}, nil)
	require.NoError(t, err)
	assert.NotZero(t, product.ID)
	assert.Equal(t, category.ID, product.CategoryID)
	assert.Zero(t, product.Views)
}

func TestCreateProductUnknownCategory(t *testing.T) {
	svc, db := newProductsService(t)

	_, err := svc.Create(CreateProductInput{
		Title:       "Phone",
		Description: "A phone",
		Color:       "black",
		CategoryID:  42,
	}, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Zero(t, count, "failed create must not write")
}

func TestGetProductIncrementsViews(t *testing.T) {
	svc, db := newProductsService(t)
	category := seedCategory(t, db, "en")

	created, err := svc.Create(CreateProductInput{
		Title:       "Phone",
		Description: "A phone",
		Color:       "black",
		CategoryID:  category.ID,
	}, nil)
	require.NoError(t, err)

	first, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, first.Views)

	second, err := svc.Get(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, second.Views, "two sequential reads add exactly 2")

	admin, err := svc.GetForAdmin(created.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, admin.Views, "admin read has no side effect")
}

func TestGetProductNotFound(t *testing.T) {
	svc, _ := newProductsService(t)

	_, err := svc.Get(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductAverageRating(t *testing.T) {
	svc, db := newProductsService(t)
	category := seedCategory(t, db, "en")

	created, err := svc.Create(CreateProductInput{
		Title:       "Phone",
		Description: "A phone",
		Color:       "black",
		CategoryID:  category.ID,
	}, nil)
	require.NoError(t, err)

	t.Run("no reviews", func(t *testing.T) {
		detail, err := svc.GetForAdmin(created.ID)
		require.NoError(t, err)
		assert.Zero(t, detail.AverageRating)
		assert.Zero(t, detail.ReviewsCount)
	})

	for _, stars := range []int{5, 4, 5} {
		require.NoError(t, db.Create(&models.Review{
			Name:      "n",
			Email:     "e@example.com",
			Title:     "t",
			Text:      "x",
			Stars:     stars,
			ProductID: created.ID,
		}).Error)
	}

	t.Run("rounded to one decimal", func(t *testing.T) {
		detail, err := svc.GetForAdmin(created.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.7, detail.AverageRating)
		assert.Equal(t, 3, detail.ReviewsCount)
		require.NotNil(t, detail.Category)
		assert.Equal(t, category.ID, detail.Category.ID)
	})
}

func TestFilterProducts(t *testing.T) {
	svc, db := newProductsService(t)
	first := seedCategory(t, db, "en")
	second := seedCategory(t, db, "en")

	seed := []struct {
		color    string
		category uint
	}{
		{"red", first.ID},
		{"red", second.ID},
		{"blue", first.ID},
		{"green", second.ID},
	}
	for i, s := range seed {
		require.NoError(t, db.Create(&models.Product{
			Title:       fmt.Sprintf("p%d", i),
			Description: "d",
			Color:       s.color,
			CategoryID:  s.category,
		}).Error)
	}

	page := PageParams{Take: 10, Page: 1}

	t.Run("color only, empty category list adds no predicate", func(t *testing.T) {
		products, total, err := svc.Filter(ProductFilter{Colors: []string{"red"}, CategoryIDs: []uint{}}, page)
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		require.Len(t, products, 2)
		for _, p := range products {
			assert.Equal(t, "red", p.Color)
		}
	})

	t.Run("color AND category", func(t *testing.T) {
		products, total, err := svc.Filter(ProductFilter{
			Colors:      []string{"red"},
			CategoryIDs: []uint{second.ID},
		}, page)
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, second.ID, products[0].CategoryID)
	})

	t.Run("no filters returns everything", func(t *testing.T) {
		_, total, err := svc.Filter(ProductFilter{}, page)
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
	})
}

func TestListProductsPagination(t *testing.T) {
	svc, db := newProductsService(t)
	category := seedCategory(t, db, "en")

	for i := 0; i < 25; i++ {
		require.NoError(t, db.Create(&models.Product{
			Title:       fmt.Sprintf("p%d", i),
			Description: "d",
			Color:       "red",
			CategoryID:  category.ID,
		}).Error)
	}

	products, total, err := svc.List(PageParams{Take: 10, Page: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	require.Len(t, products, 10)
	assert.EqualValues(t, 15, products[0].ID, "page 2 skips the 10 newest")
}

func TestListProductsByCategory(t *testing.T) {
	svc, db := newProductsService(t)
	first := seedCategory(t, db, "en")
	second := seedCategory(t, db, "en")

	for i, categoryID := range []uint{first.ID, first.ID, second.ID} {
		require.NoError(t, db.Create(&models.Product{
			Title:       fmt.Sprintf("p%d", i),
			Description: "d",
			Color:       "red",
			CategoryID:  categoryID,
		}).Error)
	}

	products, total, err := svc.ListByCategory(first.ID, PageParams{Take: 10, Page: 1})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, products, 2)
	require.NotNil(t, products[0].Category)
	assert.Equal(t, first.ID, products[0].Category.ID)
}

func TestProductColorCounts(t *testing.T) {
	svc, db := newProductsService(t)
	en := seedCategory(t, db, "en")
	uz := seedCategory(t, db, "uz")

	for _, s := range []struct {
		color    string
		category uint
	}{
		{"red", en.ID}, {"red", en.ID}, {"blue", en.ID}, {"red", uz.ID},
	} {
		require.NoError(t, db.Create(&models.Product{
			Title:       "p",
			Description: "d",
			Color:       s.color,
			CategoryID:  s.category,
		}).Error)
	}

	counts, err := svc.ColorCounts("en")
	require.NoError(t, err)

	byColor := map[string]int64{}
	for _, c := range counts {
		byColor[c.Color] = c.ProductCount
	}
	assert.EqualValues(t, 2, byColor["red"], "uz products excluded")
	assert.EqualValues(t, 1, byColor["blue"])
}

func TestUpdateProductPartial(t *testing.T) {
	svc, db := newProductsService(t)
	category := seedCategory(t, db, "en")
	other := seedCategory(t, db, "en")

	created, err := svc.Create(CreateProductInput{
		Title:       "Phone",
		Description: "A phone",
		Color:       "black",
		CategoryID:  category.ID,
	}, nil)
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, UpdateProductInput{Color: "silver"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "silver", updated.Color)
	assert.Equal(t, "Phone", updated.Title, "omitted fields keep their values")
	assert.Equal(t, category.ID, updated.CategoryID)

	updated, err = svc.Update(created.ID, UpdateProductInput{CategoryID: other.ID}, nil)
	require.NoError(t, err)
	assert.Equal(t, other.ID, updated.CategoryID)

	_, err = svc.Update(created.ID, UpdateProductInput{CategoryID: 404}, nil)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestDeleteProductCascadesReviews(t *testing.T) {
	svc, db := newProductsService(t)
	category := seedCategory(t, db, "en")

	created, err := svc.Create(CreateProductInput{
		Title:       "Phone",
		Description: "A phone",
		Color:       "black",
		CategoryID:  category.ID,
	}, nil)
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.Review{
		Name:      "n",
		Email:     "e@example.com",
		Title:     "t",
		Text:      "x",
		Stars:     5,
		ProductID: created.ID,
	}).Error)

	require.NoError(t, svc.Delete(created.ID))

	var reviewCount int64
	require.NoError(t, db.Model(&models.Review{}).Count(&reviewCount).Error)
	assert.Zero(t, reviewCount)

	assert.ErrorIs(t, svc.Delete(created.ID), ErrProductNotFound)
}
