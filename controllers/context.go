package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/repositories"
)

// getScope builds the per-request ownership scope from the principal the auth
// middleware placed in the context. Unauthenticated requests yield an empty
// scope.
func getScope(c *gin.Context, db *gorm.DB) *repositories.Scope {
	var uid uint
	var role string

	if v, exists := c.Get("user_id"); exists {
		uid, _ = v.(uint)
	}
	if v, exists := c.Get("role"); exists {
		role, _ = v.(string)
	}

	return repositories.NewScope(db, uid, role)
}

// queryInt reads an integer query parameter, returning 0 for absent or
// non-numeric values so repositories can substitute their defaults.
func queryInt(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}

// paramID parses the :id path parameter.
func paramID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
