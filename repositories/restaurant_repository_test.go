package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

func seedRestaurants(t *testing.T, db *gorm.DB, owner models.User, n int) {
	for i := 0; i < n; i++ {
		restaurant := models.Restaurant{
			UserID:      owner.ID,
			Name:        fmt.Sprintf("Extra %d", i),
			Location:    "Casablanca",
			Address:     fmt.Sprintf("%d Ocean Dr", i),
			PhoneNumber: "555-1000",
			Description: "bulk seed",
		}
		if err := db.Create(&restaurant).Error; err != nil {
			t.Fatalf("seed restaurant %d: %v", i, err)
		}
	}
}

func restaurantItems(t *testing.T, page *Pagination) []models.Restaurant {
	items, ok := page.Items.(*[]models.Restaurant)
	if !ok {
		t.Fatalf("unexpected items type %T", page.Items)
	}
	return *items
}

func TestRestaurantGetAllIsOwnerScoped(t *testing.T) {
	db := setupScopeDB(t)
	u1, r1, _, _, _ := seedTenant(t, db, "one")
	seedTenant(t, db, "two")

	repo := NewRestaurantRepository(db)
	page, err := repo.GetAll(NewScope(db, u1.ID, "user"), 1)

	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, OwnedPerPage, page.PerPage)

	items := restaurantItems(t, page)
	assert.Len(t, items, 1)
	assert.Equal(t, r1.ID, items[0].ID)
	assert.NotNil(t, items[0].User)
}

func TestRestaurantGetPaginatedPublic(t *testing.T) {
	db := setupScopeDB(t)
	u1, _, _, _, _ := seedTenant(t, db, "one")
	seedRestaurants(t, db, u1, 11)

	repo := NewRestaurantRepository(db)

	page, err := repo.GetPaginated(1, 5)
	assert.NoError(t, err)
	assert.EqualValues(t, 12, page.Total)
	assert.Equal(t, 5, page.PerPage)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 3, page.LastPage)
	assert.Len(t, restaurantItems(t, page), 5)

	// perPage <= 0 falls back to the public default
	page, err = repo.GetPaginated(1, 0)
	assert.NoError(t, err)
	assert.Equal(t, DefaultPublicPerPage, page.PerPage)
	assert.Len(t, restaurantItems(t, page), 12)

	// page past the end is an empty page, not an error
	page, err = repo.GetPaginated(4, 5)
	assert.NoError(t, err)
	assert.Len(t, restaurantItems(t, page), 0)
	assert.EqualValues(t, 12, page.Total)
}

func TestRestaurantSearchIsScopedAndCaseInsensitive(t *testing.T) {
	db := setupScopeDB(t)
	u1, _, _, _, _ := seedTenant(t, db, "one")
	u2, _, _, _, _ := seedTenant(t, db, "two")

	tajine := models.Restaurant{
		UserID: u1.ID, Name: "Tajine House", Location: "Rabat",
		Address: "5 Medina Rd", PhoneNumber: "555-2000", Description: "slow food",
	}
	assert.NoError(t, db.Create(&tajine).Error)

	repo := NewRestaurantRepository(db)

	page, err := repo.Search(NewScope(db, u1.ID, "user"), "TAJINE", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, DefaultSearchPerPage, page.PerPage)
	assert.Equal(t, "Tajine House", restaurantItems(t, page)[0].Name)

	// another owner's scope does not reach it
	page, err = repo.Search(NewScope(db, u2.ID, "user"), "tajine", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)

	// location matches too
	page, err = repo.Search(NewScope(db, u1.ID, "user"), "rabat", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
}

func TestRestaurantGetByIDOutsideScope(t *testing.T) {
	db := setupScopeDB(t)
	_, r1, _, _, _ := seedTenant(t, db, "one")
	u2, _, _, _, _ := seedTenant(t, db, "two")

	repo := NewRestaurantRepository(db)

	restaurant, err := repo.GetByID(NewScope(db, u2.ID, "user"), r1.ID)
	assert.NoError(t, err)
	assert.Nil(t, restaurant)

	// admin sees everything
	restaurant, err = repo.GetByID(NewScope(db, u2.ID, "admin"), r1.ID)
	assert.NoError(t, err)
	assert.NotNil(t, restaurant)
}

func TestRestaurantUpdate(t *testing.T) {
	db := setupScopeDB(t)
	u1, r1, _, _, _ := seedTenant(t, db, "one")
	u2, _, _, _, _ := seedTenant(t, db, "two")

	repo := NewRestaurantRepository(db)
	scope := NewScope(db, u1.ID, "user")

	updated, err := repo.Update(scope, r1.ID, map[string]interface{}{"name": "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, r1.Location, updated.Location)

	// empty patch leaves the record alone
	same, err := repo.Update(scope, r1.ID, map[string]interface{}{})
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", same.Name)

	// not reachable from another owner's scope
	none, err := repo.Update(NewScope(db, u2.ID, "user"), r1.ID, map[string]interface{}{"name": "Hijacked"})
	assert.NoError(t, err)
	assert.Nil(t, none)
}

func TestRestaurantDelete(t *testing.T) {
	db := setupScopeDB(t)
	u1, r1, c1, _, _ := seedTenant(t, db, "one")

	repo := NewRestaurantRepository(db)
	scope := NewScope(db, u1.ID, "user")

	// refused while a category still hangs off it
	deleted, err := repo.Delete(scope, r1.ID)
	assert.ErrorIs(t, err, ErrHasChildren)
	assert.False(t, deleted)

	assert.NoError(t, db.Where("parent_category_id = ?", c1.ID).Delete(&models.SubCategory{}).Error)
	assert.NoError(t, db.Delete(&models.Category{}, c1.ID).Error)

	deleted, err = repo.Delete(scope, r1.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// absent id reports false without an error
	deleted, err = repo.Delete(scope, r1.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}
