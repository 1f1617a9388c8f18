package repositories

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

func setupScopeDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open in-memory sqlite: %v", err)
	}
	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.Category{},
		&models.SubCategory{},
		&models.Product{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

// seedTenant creates a user with one restaurant, one category, one
// subcategory and one product, returning the user id.
func seedTenant(t *testing.T, db *gorm.DB, tag string) (models.User, models.Restaurant, models.Category, models.SubCategory, models.Product) {
	user := models.User{Name: "Owner " + tag, Email: tag + "@example.com", Username: "owner-" + tag, Password: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	restaurant := models.Restaurant{
		UserID: user.ID, Name: "Resto " + tag, Location: "LA",
		Address: "1 Main St", PhoneNumber: "555-0000", Description: "seed",
	}
	if err := db.Create(&restaurant).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	category := models.Category{Name: "Cat " + tag, RestaurantID: restaurant.ID}
	if err := db.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	subcategory := models.SubCategory{Name: "Sub " + tag, ParentCategoryID: category.ID}
	if err := db.Create(&subcategory).Error; err != nil {
		t.Fatalf("seed subcategory: %v", err)
	}
	product := models.Product{Name: "Prod " + tag, Price: 9.5, SubcategoryID: subcategory.ID}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return user, restaurant, category, subcategory, product
}

func TestScopeResolvesOwnershipChain(t *testing.T) {
	db := setupScopeDB(t)
	u1, r1, c1, s1, _ := seedTenant(t, db, "one")
	_, r2, c2, s2, _ := seedTenant(t, db, "two")

	scope := NewScope(db, u1.ID, "user")

	restaurantIDs, err := scope.RestaurantIDs()
	assert.NoError(t, err)
	assert.Equal(t, []uint{r1.ID}, restaurantIDs)
	assert.NotContains(t, restaurantIDs, r2.ID)

	categoryIDs, err := scope.CategoryIDs()
	assert.NoError(t, err)
	assert.Equal(t, []uint{c1.ID}, categoryIDs)
	assert.NotContains(t, categoryIDs, c2.ID)

	subCategoryIDs, err := scope.SubCategoryIDs()
	assert.NoError(t, err)
	assert.Equal(t, []uint{s1.ID}, subCategoryIDs)
	assert.NotContains(t, subCategoryIDs, s2.ID)
}

func TestScopeAnonymousIsEmpty(t *testing.T) {
	db := setupScopeDB(t)
	seedTenant(t, db, "one")

	scope := NewScope(db, 0, "")

	restaurantIDs, err := scope.RestaurantIDs()
	assert.NoError(t, err)
	assert.Empty(t, restaurantIDs)

	subCategoryIDs, err := scope.SubCategoryIDs()
	assert.NoError(t, err)
	assert.Empty(t, subCategoryIDs)
}

func TestScopeMemoizesResolution(t *testing.T) {
	db := setupScopeDB(t)
	u1, r1, _, _, _ := seedTenant(t, db, "one")

	scope := NewScope(db, u1.ID, "user")

	first, err := scope.RestaurantIDs()
	assert.NoError(t, err)
	assert.Equal(t, []uint{r1.ID}, first)

	// A restaurant created after resolution is not visible through the same
	// scope; a new scope picks it up.
	extra := models.Restaurant{
		UserID: u1.ID, Name: "Late", Location: "LA",
		Address: "2 Main St", PhoneNumber: "555-0001", Description: "late",
	}
	assert.NoError(t, db.Create(&extra).Error)

	again, err := scope.RestaurantIDs()
	assert.NoError(t, err)
	assert.Len(t, again, 1)

	fresh, err := NewScope(db, u1.ID, "user").RestaurantIDs()
	assert.NoError(t, err)
	assert.Len(t, fresh, 2)
}

func TestScopeAdminBypass(t *testing.T) {
	db := setupScopeDB(t)
	seedTenant(t, db, "one")
	seedTenant(t, db, "two")

	scope := NewScope(db, 1, "admin")
	assert.True(t, scope.IsAdmin())

	repo := NewRestaurantRepository(db)
	page, err := repo.GetAll(scope, 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)
}
