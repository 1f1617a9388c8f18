package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/abdennabi-ahrrabi/gs-menu-api/models"
)

func TestUserAuthFlow(t *testing.T) {
	_, engine := setupAPI(t)

	// weak password is rejected with a field error
	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Short Pass",
		"email":    "short@example.com",
		"username": "shortpass",
		"password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Errors, "password")

	w, env = doJSON(t, engine, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Amina",
		"email":    "amina@example.com",
		"username": "amina",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Status)

	// wrong password never yields a token
	w, _ = doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "amina@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, env = doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "amina@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &login))
	assert.NotEmpty(t, login.Token)

	w, env = doJSON(t, engine, http.MethodGet, "/api/auth/me", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var me models.User
	assert.NoError(t, json.Unmarshal(env.Data, &me))
	assert.Equal(t, "amina@example.com", me.Email)

	// the password hash never leaves the API
	assert.NotContains(t, string(env.Data), "secret-password")
	assert.NotContains(t, string(env.Data), `"password"`)
}

func TestLogoutRevokesToken(t *testing.T) {
	db, engine := setupAPI(t)

	// high explicit id keeps this token distinct from every other test's
	user, _ := seedUser(t, db, "leaving")
	assert.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("id", 7777).Error)

	w, env := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "leaving@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &login))

	w, _ = doJSON(t, engine, http.MethodGet, "/api/auth/me", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = doJSON(t, engine, http.MethodPost, "/api/auth/logout", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// the revoked token is refused from then on
	w, _ = doJSON(t, engine, http.MethodGet, "/api/auth/me", login.Token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminAccountManagement(t *testing.T) {
	_, engine := setupAPI(t)

	w, _ := doJSON(t, engine, http.MethodPost, "/api/admins/register", "", gin.H{
		"email":    "boss@example.com",
		"username": "boss",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, engine, http.MethodPost, "/api/admins/login", "", gin.H{
		"email":    "boss@example.com",
		"password": "secret-password",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var login struct {
		Token string `json:"token"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &login))

	w, env = doJSON(t, engine, http.MethodGet, "/api/admins", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var page struct {
		Total int64 `json:"total"`
	}
	assert.NoError(t, json.Unmarshal(env.Data, &page))
	assert.EqualValues(t, 1, page.Total)

	w, env = doJSON(t, engine, http.MethodPut, "/api/admins/update/1", login.Token, gin.H{
		"username": "big-boss",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w, env = doJSON(t, engine, http.MethodGet, "/api/admins/show/1", login.Token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var admin models.Admin
	assert.NoError(t, json.Unmarshal(env.Data, &admin))
	assert.Equal(t, "big-boss", admin.Username)
}

func TestCredentialEndpointsAreThrottled(t *testing.T) {
	_, engine := setupAPI(t)

	var last int
	for i := 0; i < 6; i++ {
		w, _ := doJSON(t, engine, http.MethodPost, "/api/auth/login", "", gin.H{
			"email":    "nobody@example.com",
			"password": "whatever-else",
		})
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}
