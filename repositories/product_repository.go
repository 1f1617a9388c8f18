package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

// ProductRepository is the scoped query service for products, the leaf of the
// ownership chain. Search stays unscoped, as it always has for this resource.
type ProductRepository struct {
	DB *gorm.DB
}

var _ Crud[models.Product] = (*ProductRepository)(nil)

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) scoped(query *gorm.DB, scope *Scope) (*gorm.DB, error) {
	if scope.IsAdmin() {
		return query, nil
	}
	subCategoryIDs, err := scope.SubCategoryIDs()
	if err != nil {
		return nil, err
	}
	return query.Where("subcategory_id IN ?", subCategoryIDs), nil
}

func (r *ProductRepository) GetAll(scope *Scope, page int) (*Pagination, error) {
	query, err := r.scoped(r.DB.Model(&models.Product{}), scope)
	if err != nil {
		return nil, err
	}
	query = query.Preload("SubCategory").Order("id desc")

	var products []models.Product
	return Paginate(query, page, OwnedPerPage, &products)
}

func (r *ProductRepository) GetPaginated(page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultPublicPerPage
	}

	query := r.DB.Model(&models.Product{}).
		Preload("SubCategory").
		Order("id desc")

	var products []models.Product
	return Paginate(query, page, perPage, &products)
}

// Search matches name and description case-insensitively, and the price
// rendered as text, so "9.99" finds products priced 9.99.
func (r *ProductRepository) Search(scope *Scope, keyword string, page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultSearchPerPage
	}
	kw := "%" + strings.ToLower(keyword) + "%"

	query := r.DB.Model(&models.Product{}).
		Where(r.DB.
			Where("LOWER(name) LIKE ?", kw).
			Or("LOWER(description) LIKE ?", kw).
			Or("price LIKE ?", "%"+keyword+"%")).
		Preload("SubCategory").
		Order("id desc")

	var products []models.Product
	return Paginate(query, page, perPage, &products)
}

func (r *ProductRepository) GetByID(scope *Scope, id uint) (*models.Product, error) {
	query, err := r.scoped(r.DB.Preload("SubCategory"), scope)
	if err != nil {
		return nil, err
	}

	var product models.Product
	err = query.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepository) Create(record *models.Product) (*models.Product, error) {
	if err := r.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *ProductRepository) Update(scope *Scope, id uint, fields map[string]interface{}) (*models.Product, error) {
	product, err := r.GetByID(scope, id)
	if err != nil || product == nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.DB.Model(product).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(scope, id)
}

func (r *ProductRepository) Delete(scope *Scope, id uint) (bool, error) {
	product, err := r.GetByID(scope, id)
	if err != nil || product == nil {
		return false, err
	}

	if err := r.DB.Delete(&models.Product{}, id).Error; err != nil {
		return false, err
	}
	return true, nil
}
