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

type SubCategoryController struct {
	DB         *gorm.DB
	repo       repositories.Crud[models.SubCategory]
	categories repositories.Crud[models.Category]
}

func NewSubCategoryController(db *gorm.DB) *SubCategoryController {
	return &SubCategoryController{
		DB:         db,
		repo:       repositories.NewSubCategoryRepository(db),
		categories: repositories.NewCategoryRepository(db),
	}
}

// Index lists the subcategories under the principal's categories, 10 per page
func (sc *SubCategoryController) Index(c *gin.Context) {
	scope := getScope(c, sc.DB)

	data, err := sc.repo.GetAll(scope, queryInt(c, "page"))
	if err != nil {
		utils.ErrorLogger.Printf("subcategory list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "SubCategory list", data)
}

// IndexAll lists subcategories publicly, default 12 per page
func (sc *SubCategoryController) IndexAll(c *gin.Context) {
	data, err := sc.repo.GetPaginated(queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("public subcategory list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "SubCategory list", data)
}

// Search matches subcategory names (unscoped)
func (sc *SubCategoryController) Search(c *gin.Context) {
	scope := getScope(c, sc.DB)

	data, err := sc.repo.Search(scope, c.Query("search"), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("subcategory search failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "SubCategory list", data)
}

type StoreSubCategoryRequest struct {
	Name             string `json:"name" binding:"required"`
	ParentCategoryID uint   `json:"parent_category_id" binding:"required"`
}

// Store creates a subcategory under one of the principal's categories
func (sc *SubCategoryController) Store(c *gin.Context) {
	var req StoreSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, sc.DB)

	parent, err := sc.categories.GetByID(scope, req.ParentCategoryID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if parent == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("category not found"))
		return
	}

	subcategory := models.SubCategory{
		Name:             req.Name,
		ParentCategoryID: req.ParentCategoryID,
	}

	created, err := sc.repo.Create(&subcategory)
	if err != nil {
		utils.ErrorLogger.Printf("subcategory create failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "SubCategory created", created)
}

// Show fetches one subcategory within scope
func (sc *SubCategoryController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, sc.DB)

	subcategory, err := sc.repo.GetByID(scope, id)
	if err != nil {
		utils.ErrorLogger.Printf("subcategory fetch failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if subcategory == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("subcategory not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "SubCategory detail", subcategory)
}

type UpdateSubCategoryRequest struct {
	Name             *string `json:"name"`
	ParentCategoryID *uint   `json:"parent_category_id"`
}

// Update overwrites only the provided fields; a new parent category must be
// inside the principal's scope
func (sc *SubCategoryController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	var req UpdateSubCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, sc.DB)

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ParentCategoryID != nil {
		parent, err := sc.categories.GetByID(scope, *req.ParentCategoryID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if parent == nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("category not found"))
			return
		}
		fields["parent_category_id"] = *req.ParentCategoryID
	}

	subcategory, err := sc.repo.Update(scope, id, fields)
	if err != nil {
		utils.ErrorLogger.Printf("subcategory update failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if subcategory == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("subcategory not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "SubCategory updated", subcategory)
}

// Delete removes a subcategory that has no products left
func (sc *SubCategoryController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, sc.DB)

	subcategory, err := sc.repo.GetByID(scope, id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if subcategory == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("subcategory not found"))
		return
	}

	deleted, err := sc.repo.Delete(scope, id)
	if errors.Is(err, repositories.ErrHasChildren) {
		utils.RespondError(c, http.StatusConflict, errors.New("subcategory still has products"))
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("subcategory delete failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("subcategory not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "SubCategory deleted", subcategory)
}
