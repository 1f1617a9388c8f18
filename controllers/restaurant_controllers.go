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

type RestaurantController struct {
	DB   *gorm.DB
	repo repositories.Crud[models.Restaurant]
}

func NewRestaurantController(db *gorm.DB) *RestaurantController {
	return &RestaurantController{
		DB:   db,
		repo: repositories.NewRestaurantRepository(db),
	}
}

// Index lists the restaurants owned by the principal, 10 per page
func (rc *RestaurantController) Index(c *gin.Context) {
	scope := getScope(c, rc.DB)

	data, err := rc.repo.GetAll(scope, queryInt(c, "page"))
	if err != nil {
		utils.ErrorLogger.Printf("restaurant list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant list", data)
}

// IndexAll lists restaurants publicly, default 12 per page
func (rc *RestaurantController) IndexAll(c *gin.Context) {
	data, err := rc.repo.GetPaginated(queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("public restaurant list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant list", data)
}

// Search matches name, location and address within the principal's scope
func (rc *RestaurantController) Search(c *gin.Context) {
	scope := getScope(c, rc.DB)

	data, err := rc.repo.Search(scope, c.Query("search"), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("restaurant search failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant list", data)
}

type StoreRestaurantRequest struct {
	Name        string `json:"name" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Address     string `json:"address" binding:"required"`
	PhoneNumber string `json:"phone_number" binding:"required"`
	Description string `json:"description" binding:"required"`
	UserID      uint   `json:"user_id"`
}

// Store creates a restaurant owned by the principal. Admins may create on
// behalf of another user by passing user_id.
func (rc *RestaurantController) Store(c *gin.Context) {
	var req StoreRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, rc.DB)

	ownerID := scope.UserID()
	if scope.IsAdmin() && req.UserID != 0 {
		ownerID = req.UserID
	}

	var owner models.User
	if err := rc.DB.First(&owner, ownerID).Error; err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("owning user not found"))
		return
	}

	restaurant := models.Restaurant{
		UserID:      ownerID,
		Name:        req.Name,
		Location:    req.Location,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
		Description: req.Description,
	}

	created, err := rc.repo.Create(&restaurant)
	if err != nil {
		utils.ErrorLogger.Printf("restaurant create failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Restaurant created", created)
}

// Show fetches one restaurant within scope
func (rc *RestaurantController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, rc.DB)

	restaurant, err := rc.repo.GetByID(scope, id)
	if err != nil {
		utils.ErrorLogger.Printf("restaurant fetch failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant detail", restaurant)
}

type UpdateRestaurantRequest struct {
	Name        *string `json:"name"`
	Location    *string `json:"location"`
	Address     *string `json:"address"`
	PhoneNumber *string `json:"phone_number"`
	Description *string `json:"description"`
}

// Update overwrites only the provided fields
func (rc *RestaurantController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.PhoneNumber != nil {
		fields["phone_number"] = *req.PhoneNumber
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}

	scope := getScope(c, rc.DB)

	restaurant, err := rc.repo.Update(scope, id, fields)
	if err != nil {
		utils.ErrorLogger.Printf("restaurant update failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant updated", restaurant)
}

// Delete removes a restaurant that has no categories left
func (rc *RestaurantController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, rc.DB)

	restaurant, err := rc.repo.GetByID(scope, id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if restaurant == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	deleted, err := rc.repo.Delete(scope, id)
	if errors.Is(err, repositories.ErrHasChildren) {
		utils.RespondError(c, http.StatusConflict, errors.New("restaurant still has categories"))
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("restaurant delete failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("restaurant not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Restaurant deleted", restaurant)
}
