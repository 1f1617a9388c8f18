package repositories

import (
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

// Scope resolves which records the authenticated principal may touch at each
// level of the ownership chain Product -> SubCategory -> Category ->
// Restaurant -> User. Resolution walks the chain one query per hop and is
// memoized for the lifetime of the Scope, which must not outlive the request
// that created it: ownership data may change between requests.
//
// An anonymous principal (userID 0) resolves to empty sets everywhere. An
// admin principal disables scoping entirely.
type Scope struct {
	db      *gorm.DB
	userID  uint
	isAdmin bool

	restaurantIDs  []uint
	categoryIDs    []uint
	subCategoryIDs []uint
}

func NewScope(db *gorm.DB, userID uint, role string) *Scope {
	return &Scope{db: db, userID: userID, isAdmin: role == "admin"}
}

func (s *Scope) UserID() uint  { return s.userID }
func (s *Scope) IsAdmin() bool { return s.isAdmin }

// RestaurantIDs returns the ids of restaurants owned by the principal.
func (s *Scope) RestaurantIDs() ([]uint, error) {
	if s.restaurantIDs != nil {
		return s.restaurantIDs, nil
	}
	ids := make([]uint, 0)
	if s.userID != 0 {
		err := s.db.Model(&models.Restaurant{}).
			Where("user_id = ?", s.userID).
			Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
	}
	s.restaurantIDs = ids
	return ids, nil
}

// CategoryIDs returns the ids of categories under the principal's restaurants.
func (s *Scope) CategoryIDs() ([]uint, error) {
	if s.categoryIDs != nil {
		return s.categoryIDs, nil
	}
	restaurantIDs, err := s.RestaurantIDs()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0)
	if len(restaurantIDs) > 0 {
		err := s.db.Model(&models.Category{}).
			Where("restaurant_id IN ?", restaurantIDs).
			Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
	}
	s.categoryIDs = ids
	return ids, nil
}

// SubCategoryIDs returns the ids of subcategories under the principal's
// categories.
func (s *Scope) SubCategoryIDs() ([]uint, error) {
	if s.subCategoryIDs != nil {
		return s.subCategoryIDs, nil
	}
	categoryIDs, err := s.CategoryIDs()
	if err != nil {
		return nil, err
	}
	ids := make([]uint, 0)
	if len(categoryIDs) > 0 {
		err := s.db.Model(&models.SubCategory{}).
			Where("parent_category_id IN ?", categoryIDs).
			Pluck("id", &ids).Error
		if err != nil {
			return nil, err
		}
	}
	s.subCategoryIDs = ids
	return ids, nil
}
