package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

// RestaurantRepository is the scoped query service for restaurants, the root
// of the ownership chain.
type RestaurantRepository struct {
	DB *gorm.DB
}

var _ Crud[models.Restaurant] = (*RestaurantRepository)(nil)

func NewRestaurantRepository(db *gorm.DB) *RestaurantRepository {
	return &RestaurantRepository{DB: db}
}

func (r *RestaurantRepository) scoped(query *gorm.DB, scope *Scope) *gorm.DB {
	if scope.IsAdmin() {
		return query
	}
	return query.Where("user_id = ?", scope.UserID())
}

func (r *RestaurantRepository) GetAll(scope *Scope, page int) (*Pagination, error) {
	query := r.scoped(r.DB.Model(&models.Restaurant{}), scope).
		Preload("User").
		Order("id desc")

	var restaurants []models.Restaurant
	return Paginate(query, page, OwnedPerPage, &restaurants)
}

func (r *RestaurantRepository) GetPaginated(page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultPublicPerPage
	}

	query := r.DB.Model(&models.Restaurant{}).
		Preload("User").
		Order("id desc")

	var restaurants []models.Restaurant
	return Paginate(query, page, perPage, &restaurants)
}

func (r *RestaurantRepository) Search(scope *Scope, keyword string, page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultSearchPerPage
	}
	kw := "%" + strings.ToLower(keyword) + "%"

	query := r.scoped(r.DB.Model(&models.Restaurant{}), scope).
		Where(r.DB.
			Where("LOWER(name) LIKE ?", kw).
			Or("LOWER(location) LIKE ?", kw).
			Or("LOWER(address) LIKE ?", kw)).
		Preload("User").
		Order("id desc")

	var restaurants []models.Restaurant
	return Paginate(query, page, perPage, &restaurants)
}

func (r *RestaurantRepository) GetByID(scope *Scope, id uint) (*models.Restaurant, error) {
	var restaurant models.Restaurant
	err := r.scoped(r.DB.Preload("User"), scope).
		First(&restaurant, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &restaurant, nil
}

func (r *RestaurantRepository) Create(record *models.Restaurant) (*models.Restaurant, error) {
	if err := r.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *RestaurantRepository) Update(scope *Scope, id uint, fields map[string]interface{}) (*models.Restaurant, error) {
	restaurant, err := r.GetByID(scope, id)
	if err != nil || restaurant == nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.DB.Model(restaurant).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(scope, id)
}

func (r *RestaurantRepository) Delete(scope *Scope, id uint) (bool, error) {
	restaurant, err := r.GetByID(scope, id)
	if err != nil || restaurant == nil {
		return false, err
	}

	var children int64
	if err := r.DB.Model(&models.Category{}).Where("restaurant_id = ?", id).Count(&children).Error; err != nil {
		return false, err
	}
	if children > 0 {
		return false, ErrHasChildren
	}

	if err := r.DB.Delete(&models.Restaurant{}, id).Error; err != nil {
		return false, err
	}
	return true, nil
}
