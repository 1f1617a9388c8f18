package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
	"github.com/abdennabi-ahrrabi/gs-menu-api/repositories"
	"github.com/abdennabi-ahrrabi/gs-menu-api/utils"
)

// AdminController manages back-office admin accounts. Admin tokens carry role
// "admin" and bypass ownership scoping on the catalog resources.
type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// Register a new admin account
func (ac *AdminController) Register(c *gin.Context) {
	type request struct {
		Email    string `json:"email" binding:"required,email"`
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required,min=8"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	admin := models.Admin{
		Email:    req.Email,
		Username: req.Username,
		Password: string(hashed),
	}

	if err := ac.DB.Create(&admin).Error; err != nil {
		utils.ErrorLogger.Printf("admin register failed for %s: %v", req.Email, err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Admin registered", gin.H{
		"admin_id": admin.ID,
	})
}

// Login -> return JWT with role "admin"
func (ac *AdminController) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	var admin models.Admin
	if err := ac.DB.Where("email = ?", input.Email).First(&admin).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid credentials"))
		return
	}

	token, err := utils.GenerateToken(admin.ID, "admin")
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token": token,
	})
}

// Index lists admin accounts, 10 per page
func (ac *AdminController) Index(c *gin.Context) {
	query := ac.DB.Model(&models.Admin{}).Order("id desc")

	var admins []models.Admin
	data, err := repositories.Paginate(query, queryInt(c, "page"), repositories.OwnedPerPage, &admins)
	if err != nil {
		utils.ErrorLogger.Printf("admin list failed: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Admin list", data)
}

// Show one admin account
func (ac *AdminController) Show(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("admin not found"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Admin detail", admin)
}

// Update an admin account (provided fields only)
func (ac *AdminController) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	type request struct {
		Email    *string `json:"email" binding:"omitempty,email"`
		Username *string `json:"username"`
		Password *string `json:"password" binding:"omitempty,min=8"`
	}
	var req request
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, err)
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("admin not found"))
		return
	}

	fields := map[string]interface{}{}
	if req.Email != nil {
		fields["email"] = *req.Email
	}
	if req.Username != nil {
		fields["username"] = *req.Username
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
		fields["password"] = string(hashed)
	}

	if len(fields) > 0 {
		if err := ac.DB.Model(&admin).Updates(fields).Error; err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err)
			return
		}
	}

	utils.RespondJSON(c, http.StatusOK, "Admin updated", admin)
}

// Delete an admin account
func (ac *AdminController) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid id"))
		return
	}

	var admin models.Admin
	if err := ac.DB.First(&admin, id).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("admin not found"))
		return
	}

	if err := ac.DB.Delete(&models.Admin{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Admin deleted", admin)
}
