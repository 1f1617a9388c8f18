package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

// CategoryRepository is the scoped query service for categories. Scoping
// filters on the restaurants owned by the principal.
type CategoryRepository struct {
	DB *gorm.DB
}

var _ Crud[models.Category] = (*CategoryRepository)(nil)

func NewCategoryRepository(db *gorm.DB) *CategoryRepository {
	return &CategoryRepository{DB: db}
}

func (r *CategoryRepository) scoped(query *gorm.DB, scope *Scope) (*gorm.DB, error) {
	if scope.IsAdmin() {
		return query, nil
	}
	restaurantIDs, err := scope.RestaurantIDs()
	if err != nil {
		return nil, err
	}
	return query.Where("restaurant_id IN ?", restaurantIDs), nil
}

func (r *CategoryRepository) GetAll(scope *Scope, page int) (*Pagination, error) {
	query, err := r.scoped(r.DB.Model(&models.Category{}), scope)
	if err != nil {
		return nil, err
	}
	query = query.Preload("Restaurant").Order("id desc")

	var categories []models.Category
	return Paginate(query, page, OwnedPerPage, &categories)
}

func (r *CategoryRepository) GetPaginated(page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultPublicPerPage
	}

	query := r.DB.Model(&models.Category{}).
		Preload("Restaurant").
		Order("id desc")

	var categories []models.Category
	return Paginate(query, page, perPage, &categories)
}

func (r *CategoryRepository) Search(scope *Scope, keyword string, page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultSearchPerPage
	}
	kw := "%" + strings.ToLower(keyword) + "%"

	query, err := r.scoped(r.DB.Model(&models.Category{}), scope)
	if err != nil {
		return nil, err
	}
	query = query.
		Where("LOWER(name) LIKE ?", kw).
		Preload("Restaurant").
		Order("id desc")

	var categories []models.Category
	return Paginate(query, page, perPage, &categories)
}

func (r *CategoryRepository) GetByID(scope *Scope, id uint) (*models.Category, error) {
	query, err := r.scoped(r.DB.Preload("Restaurant"), scope)
	if err != nil {
		return nil, err
	}

	var category models.Category
	err = query.First(&category, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) Create(record *models.Category) (*models.Category, error) {
	if err := r.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *CategoryRepository) Update(scope *Scope, id uint, fields map[string]interface{}) (*models.Category, error) {
	category, err := r.GetByID(scope, id)
	if err != nil || category == nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.DB.Model(category).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(scope, id)
}

func (r *CategoryRepository) Delete(scope *Scope, id uint) (bool, error) {
	category, err := r.GetByID(scope, id)
	if err != nil || category == nil {
		return false, err
	}

	var children int64
	if err := r.DB.Model(&models.SubCategory{}).Where("parent_category_id = ?", id).Count(&children).Error; err != nil {
		return false, err
	}
	if children > 0 {
		return false, ErrHasChildren
	}

	if err := r.DB.Delete(&models.Category{}, id).Error; err != nil {
		return false, err
	}
	return true, nil
}
