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

type ProductController struct {
	DB            *gorm.DB
	repo          repositories.Crud[models.Product]
	subcategories repositories.Crud[models.SubCategory]
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{
		DB:            db,
		repo:          repositories.NewProductRepository(db),
		subcategories: repositories.NewSubCategoryRepository(db),
	}
}

// Index lists the products under the principal's subcategories, 10 per page
func (pc *ProductController) Index(c *gin.Context) {
	scope := getScope(c, pc.DB)

	data, err := pc.repo.GetAll(scope, queryInt(c, "page"))
	if err != nil {
		utils.ErrorLogger.Printf("product list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product list", data)
}

// IndexAll lists products publicly, default 12 per page
func (pc *ProductController) IndexAll(c *gin.Context) {
	data, err := pc.repo.GetPaginated(queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("public product list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product list", data)
}

// Search matches product name, description and price text (unscoped)
func (pc *ProductController) Search(c *gin.Context) {
	scope := getScope(c, pc.DB)

	data, err := pc.repo.Search(scope, c.Query("search"), queryInt(c, "page"), queryInt(c, "perPage"))
	if err != nil {
		utils.ErrorLogger.Printf("product search failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product list", data)
}

type StoreProductRequest struct {
	Name string `json:"name" binding:"required,max=255"`
	// Pointer so "required" means the key must be present; 0 is a valid price.
	Price         *float64 `json:"price" binding:"required,gte=0"`
	Description   *string  `json:"description" binding:"omitempty,max=5000"`
	SubcategoryID uint     `json:"subcategory_id" binding:"required"`
}

// Store creates a product under one of the principal's subcategories
func (pc *ProductController) Store(c *gin.Context) {
	var req StoreProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, pc.DB)

	parent, err := pc.subcategories.GetByID(scope, req.SubcategoryID)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if parent == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("subcategory not found"))
		return
	}

	product := models.Product{
		Name:          req.Name,
		Price:         *req.Price,
		Description:   req.Description,
		SubcategoryID: req.SubcategoryID,
	}

	created, err := pc.repo.Create(&product)
	if err != nil {
		utils.ErrorLogger.Printf("product create failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Product created", created)
}

// Show fetches one product within scope
func (pc *ProductController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, pc.DB)

	product, err := pc.repo.GetByID(scope, id)
	if err != nil {
		utils.ErrorLogger.Printf("product fetch failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product detail", product)
}

type UpdateProductRequest struct {
	Name          *string  `json:"name" binding:"omitempty,max=255"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	Description   *string  `json:"description" binding:"omitempty,max=5000"`
	SubcategoryID *uint    `json:"subcategory_id"`
}

// Update overwrites only the provided fields; a new parent subcategory must
// be inside the principal's scope
func (pc *ProductController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	scope := getScope(c, pc.DB)

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Price != nil {
		fields["price"] = *req.Price
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.SubcategoryID != nil {
		parent, err := pc.subcategories.GetByID(scope, *req.SubcategoryID)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		if parent == nil {
			utils.RespondError(c, http.StatusBadRequest, errors.New("subcategory not found"))
			return
		}
		fields["subcategory_id"] = *req.SubcategoryID
	}

	product, err := pc.repo.Update(scope, id, fields)
	if err != nil {
		utils.ErrorLogger.Printf("product update failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product updated", product)
}

// Delete removes a product
func (pc *ProductController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	scope := getScope(c, pc.DB)

	product, err := pc.repo.GetByID(scope, id)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if product == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	deleted, err := pc.repo.Delete(scope, id)
	if err != nil {
		utils.ErrorLogger.Printf("product delete failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if !deleted {
		utils.RespondError(c, http.StatusNotFound, errors.New("product not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Product deleted", product)
}
