package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/abdennabi-ahrrabi/gs-menu-api/controllers"
	"github.com/abdennabi-ahrrabi/gs-menu-api/middlewares"
)

// SetupRouter wires every route. The rate limiter must join the chain here,
// before routes are registered: gin snapshots each route's handler chain at
// registration time, so middleware added to the engine afterwards never runs.
func SetupRouter(db *gorm.DB, rateLimiter *middlewares.RateLimiter) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(rateLimiter.RateLimit())

	userCtrl := controllers.NewUserController(db)
	adminCtrl := controllers.NewAdminController(db)
	restaurantCtrl := controllers.NewRestaurantController(db)
	categoryCtrl := controllers.NewCategoryController(db)
	subCategoryCtrl := controllers.NewSubCategoryController(db)
	productCtrl := controllers.NewProductController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	// ----------------------------------------------------------------
	//                      AUTHENTICATION
	// ----------------------------------------------------------------
	auth := api.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}
	authed := api.Group("/auth")
	authed.Use(middlewares.AuthMiddleware())
	{
		authed.POST("/logout", userCtrl.Logout)
		authed.GET("/me", userCtrl.Me)
	}

	// ----------------------------------------------------------------
	//                      ADMIN ACCOUNTS
	// ----------------------------------------------------------------
	admins := api.Group("/admins")
	admins.Use(middlewares.NewStrictRateLimiter())
	{
		admins.POST("/register", adminCtrl.Register)
		admins.POST("/login", adminCtrl.Login)
	}
	adminOnly := api.Group("/admins")
	adminOnly.Use(middlewares.AuthMiddleware(), middlewares.AdminOnly())
	{
		adminOnly.GET("", adminCtrl.Index)
		adminOnly.GET("/show/:id", adminCtrl.Show)
		adminOnly.PUT("/update/:id", adminCtrl.Update)
		adminOnly.DELETE("/delete/:id", adminCtrl.Delete)
	}

	// ----------------------------------------------------------------
	//                      CATALOG RESOURCES
	// ----------------------------------------------------------------
	// Each resource exposes one public listing (/all); everything else
	// requires a token and is filtered by the principal's ownership chain.
	type resource struct {
		path string
		ctrl interface {
			Index(*gin.Context)
			IndexAll(*gin.Context)
			Search(*gin.Context)
			Store(*gin.Context)
			Show(*gin.Context)
			Update(*gin.Context)
			Delete(*gin.Context)
		}
	}

	for _, res := range []resource{
		{"/restaurants", restaurantCtrl},
		{"/categories", categoryCtrl},
		{"/subcategories", subCategoryCtrl},
		{"/products", productCtrl},
	} {
		api.GET(res.path+"/all", res.ctrl.IndexAll)

		scoped := api.Group(res.path)
		scoped.Use(middlewares.AuthMiddleware())
		{
			scoped.GET("", res.ctrl.Index)
			scoped.GET("/search", res.ctrl.Search)
			scoped.POST("/store", res.ctrl.Store)
			scoped.GET("/show/:id", res.ctrl.Show)
			scoped.PUT("/update/:id", res.ctrl.Update)
			scoped.DELETE("/delete/:id", res.ctrl.Delete)
		}
	}

	return r
}
