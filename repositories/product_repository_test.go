package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

func productItems(t *testing.T, page *Pagination) []models.Product {
	items, ok := page.Items.(*[]models.Product)
	if !ok {
		t.Fatalf("unexpected items type %T", page.Items)
	}
	return *items
}

func TestProductGetAllIsTransitivelyScoped(t *testing.T) {
	db := setupScopeDB(t)
	u1, _, _, _, p1 := seedTenant(t, db, "one")
	u2, _, _, _, p2 := seedTenant(t, db, "two")

	repo := NewProductRepository(db)

	page, err := repo.GetAll(NewScope(db, u1.ID, "user"), 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, p1.ID, productItems(t, page)[0].ID)

	page, err = repo.GetAll(NewScope(db, u2.ID, "user"), 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, p2.ID, productItems(t, page)[0].ID)

	// anonymous scope reaches nothing
	page, err = repo.GetAll(NewScope(db, 0, ""), 1)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
}

func TestProductSearchIsUnscoped(t *testing.T) {
	db := setupScopeDB(t)
	u1, _, _, s1, _ := seedTenant(t, db, "one")
	u2, _, _, _, _ := seedTenant(t, db, "two")

	desc := "wood-fired classic"
	pizza := models.Product{Name: "Pizza Margherita", Price: 12.5, Description: &desc, SubcategoryID: s1.ID}
	assert.NoError(t, db.Create(&pizza).Error)

	repo := NewProductRepository(db)

	// a different owner still finds it, matching is case-insensitive
	page, err := repo.Search(NewScope(db, u2.ID, "user"), "pizza", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, "Pizza Margherita", productItems(t, page)[0].Name)

	// description matches
	page, err = repo.Search(NewScope(db, u1.ID, "user"), "wood-fired", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	// price matches as text
	page, err = repo.Search(NewScope(db, u1.ID, "user"), "12.5", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)

	page, err = repo.Search(NewScope(db, u1.ID, "user"), "no such dish", 1, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
}

func TestProductRoundTrip(t *testing.T) {
	db := setupScopeDB(t)
	u1, _, _, s1, _ := seedTenant(t, db, "one")

	repo := NewProductRepository(db)
	scope := NewScope(db, u1.ID, "user")

	created, err := repo.Create(&models.Product{Name: "Couscous", Price: 8, SubcategoryID: s1.ID})
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	fetched, err := repo.GetByID(scope, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Couscous", fetched.Name)
	assert.NotNil(t, fetched.SubCategory)

	updated, err := repo.Update(scope, created.ID, map[string]interface{}{"price": 9.5})
	assert.NoError(t, err)
	assert.EqualValues(t, 9.5, updated.Price)
	assert.Equal(t, "Couscous", updated.Name)

	deleted, err := repo.Delete(scope, created.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	gone, err := repo.GetByID(scope, created.ID)
	assert.NoError(t, err)
	assert.Nil(t, gone)
}

func TestProductGetByIDOutsideScope(t *testing.T) {
	db := setupScopeDB(t)
	_, _, _, _, p1 := seedTenant(t, db, "one")
	u2, _, _, _, _ := seedTenant(t, db, "two")

	repo := NewProductRepository(db)

	product, err := repo.GetByID(NewScope(db, u2.ID, "user"), p1.ID)
	assert.NoError(t, err)
	assert.Nil(t, product)
}
