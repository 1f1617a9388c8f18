package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

// SubCategoryRepository is the scoped query service for subcategories.
// Scoping filters on the categories reachable from the principal's
// restaurants. Search stays unscoped, as it always has for this resource.
type SubCategoryRepository struct {
	DB *gorm.DB
}

var _ Crud[models.SubCategory] = (*SubCategoryRepository)(nil)

func NewSubCategoryRepository(db *gorm.DB) *SubCategoryRepository {
	return &SubCategoryRepository{DB: db}
}

func (r *SubCategoryRepository) scoped(query *gorm.DB, scope *Scope) (*gorm.DB, error) {
	if scope.IsAdmin() {
		return query, nil
	}
	categoryIDs, err := scope.CategoryIDs()
	if err != nil {
		return nil, err
	}
	return query.Where("parent_category_id IN ?", categoryIDs), nil
}

func (r *SubCategoryRepository) GetAll(scope *Scope, page int) (*Pagination, error) {
	query, err := r.scoped(r.DB.Model(&models.SubCategory{}), scope)
	if err != nil {
		return nil, err
	}
	query = query.Preload("ParentCategory").Order("id desc")

	var subcategories []models.SubCategory
	return Paginate(query, page, OwnedPerPage, &subcategories)
}

func (r *SubCategoryRepository) GetPaginated(page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultPublicPerPage
	}

	query := r.DB.Model(&models.SubCategory{}).
		Preload("ParentCategory").
		Order("id desc")

	var subcategories []models.SubCategory
	return Paginate(query, page, perPage, &subcategories)
}

func (r *SubCategoryRepository) Search(scope *Scope, keyword string, page, perPage int) (*Pagination, error) {
	if perPage <= 0 {
		perPage = DefaultSearchPerPage
	}
	kw := "%" + strings.ToLower(keyword) + "%"

	query := r.DB.Model(&models.SubCategory{}).
		Where("LOWER(name) LIKE ?", kw).
		Preload("ParentCategory").
		Order("id desc")

	var subcategories []models.SubCategory
	return Paginate(query, page, perPage, &subcategories)
}

func (r *SubCategoryRepository) GetByID(scope *Scope, id uint) (*models.SubCategory, error) {
	query, err := r.scoped(r.DB.Preload("ParentCategory"), scope)
	if err != nil {
		return nil, err
	}

	var subcategory models.SubCategory
	err = query.First(&subcategory, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &subcategory, nil
}

func (r *SubCategoryRepository) Create(record *models.SubCategory) (*models.SubCategory, error) {
	if err := r.DB.Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *SubCategoryRepository) Update(scope *Scope, id uint, fields map[string]interface{}) (*models.SubCategory, error) {
	subcategory, err := r.GetByID(scope, id)
	if err != nil || subcategory == nil {
		return nil, err
	}

	if len(fields) > 0 {
		if err := r.DB.Model(subcategory).Updates(fields).Error; err != nil {
			return nil, err
		}
	}

	return r.GetByID(scope, id)
}

func (r *SubCategoryRepository) Delete(scope *Scope, id uint) (bool, error) {
	subcategory, err := r.GetByID(scope, id)
	if err != nil || subcategory == nil {
		return false, err
	}

	var children int64
	if err := r.DB.Model(&models.Product{}).Where("subcategory_id = ?", id).Count(&children).Error; err != nil {
		return false, err
	}
	if children > 0 {
		return false, ErrHasChildren
	}

	if err := r.DB.Delete(&models.SubCategory{}, id).Error; err != nil {
		return false, err
	}
	return true, nil
}
