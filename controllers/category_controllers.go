package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
	"github.com/abdennabi-ahrrabi/gs-menu-api/repositories"
	"github.com/abdennabi-ahrrabi/gs-menu-api/utils"
)

type CategoryController struct {
	DB          *gorm.DB
	repo        repositories.Crud[models.Category]
	restaurants repositories.Crud[models.Restaurant]
}

func NewCategoryController(db *gorm.DB) *CategoryController {
	return &CategoryController{
		DB:          db,
		repo:        repositories.NewCategoryRepository(db),
		restaurants: repositories.NewRestaurantRepository(db),
	}
}

// Index lists the categories under the principal's restaurants, 10 per page
func (cc *CategoryController) Index(c *gin.Context) {
	scope := getScope(c, cc.DB)

	data, err := cc.repo.GetAll(scope, queryInt(c, "page"))
	if err != nil {
		utils.ErrorLogger.Printf("category list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category list", data)
}

// IndexAll lists categories publicly, default 12 per page
func (cc *CategoryController) IndexAll(c *gin.Context) {
	data, err := cc.repo.GetPaginated(queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("public category list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category list", data)
}

// Search matches category names within the principal's scope
func (cc *CategoryController) Search(c *gin.Context) {
	scope := getScope(c, cc.DB)

	data, err := cc.repo.Search(scope, c.Query("search"), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("category search failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category list", data)
}

type StoreCategoryRequest struct {
	Name         string `json:"name" binding:"required"`
	RestaurantID uint   `json:"restaurant_id" binding:"required"`
}

// Store creates a category under one of the principal's restaurants
func (cc *CategoryController) Store(c *gin.Context) {
	var req StoreCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, cc.DB)

	parent, err := cc.restaurants.GetByID(scope, req.RestaurantID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if parent == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("restaurant not found"))
		return
	}

	category := models.Category{
		Name:         req.Name,
		RestaurantID: req.RestaurantID,
	}

	created, err := cc.repo.Create(&category)
	if err != nil {
		utils.ErrorLogger.Printf("category create failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Category created", created)
}

// Show fetches one category within scope
func (cc *CategoryController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, cc.DB)

	category, err := cc.repo.GetByID(scope, id)
	if err != nil {
		utils.ErrorLogger.Printf("category fetch failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if category == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category detail", category)
}

type UpdateCategoryRequest struct {
	Name         *string `json:"name"`
	RestaurantID *uint   `json:"restaurant_id"`
}

// Update overwrites only the provided fields; a new parent restaurant must be
// inside the principal's scope
func (cc *CategoryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, cc.DB)

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.RestaurantID != nil {
		parent, err := cc.restaurants.GetByID(scope, *req.RestaurantID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if parent == nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("restaurant not found"))
			return
		}
		fields["restaurant_id"] = *req.RestaurantID
	}

	category, err := cc.repo.Update(scope, id, fields)
	if err != nil {
		utils.ErrorLogger.Printf("category update failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if category == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category updated", category)
}

// Delete removes a category that has no subcategories left
func (cc *CategoryController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, cc.DB)

	category, err := cc.repo.GetByID(scope, id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if category == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	deleted, err := cc.repo.Delete(scope, id)
	if errors.Is(err, repositories.ErrHasChildren) {
		utils.RespondError(c, http.StatusConflict, errors.New("category still has subcategories"))
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("category delete failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("category not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Category deleted", category)
}
