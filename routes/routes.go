package routes

import (
	"github.com/catx7/visit-borsa-sub000/configs"
	"github.com/catx7/visit-borsa-sub000/controllers"
	"github.com/catx7/visit-borsa-sub000/middlewares"
	"github.com/catx7/visit-borsa-sub000/repository"
	"github.com/catx7/visit-borsa-sub000/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, storage services.ImageStorage) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	propRepo := repository.NewPropertyRepository(db)
	svcRepo := repository.NewServiceRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	attrRepo := repository.NewAttractionRepository(db)
	clickRepo := repository.NewContactClickRepository(db)

	// Services
	captcha := services.NewCaptchaVerifier(cfg.RecaptchaSecret)
	authSvc := services.NewAuthService(userRepo, captcha, cfg.JWTSecret, cfg.JWTTTL)
	propSvc := services.NewPropertyService(propRepo, storage)
	svcSvc := services.NewServiceService(svcRepo, storage)
	restSvc := services.NewRestaurantService(restRepo, storage)
	attrSvc := services.NewAttractionService(attrRepo)
	promoSvc := services.NewPromotionService(db)
	clickSvc := services.NewContactClickService(clickRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	propCtrl := controllers.NewPropertyController(propSvc)
	svcCtrl := controllers.NewServiceController(svcSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	attrCtrl := controllers.NewAttractionController(attrSvc)
	clickCtrl := controllers.NewContactClickController(clickSvc)
	uploadCtrl := controllers.NewUploadController(storage)
	promoCtrl := controllers.NewPromotionController(promoSvc)
	adminCtrl := controllers.NewAdminController(db, propSvc, svcSvc, restSvc, attrSvc, promoSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "ADMIN")

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", auth, authCtrl.Me)
		a.PATCH("/me", auth, authCtrl.UpdateMe)
	}

	// Properties
	props := api.Group("/properties")
	{
		props.GET("", propCtrl.List)
		props.GET("/promoted", propCtrl.Promoted)
		props.GET("/my", auth, propCtrl.Mine)
		props.GET("/:id", propCtrl.Detail)
		props.POST("", auth, propCtrl.Create)
		props.PATCH("/:id", auth, propCtrl.Update)
		props.DELETE("/:id", auth, propCtrl.Delete)
	}

	// Services
	svcs := api.Group("/services")
	{
		svcs.GET("", svcCtrl.List)
		svcs.GET("/categories", svcCtrl.Categories)
		svcs.GET("/promoted", svcCtrl.Promoted)
		svcs.GET("/my", auth, svcCtrl.Mine)
		svcs.GET("/:id", svcCtrl.Detail)
		svcs.POST("", auth, svcCtrl.Create)
		svcs.PATCH("/:id", auth, svcCtrl.Update)
		svcs.DELETE("/:id", auth, svcCtrl.Delete)
	}

	// Restaurants
	rests := api.Group("/restaurants")
	{
		rests.GET("", restCtrl.List)
		rests.GET("/promoted", restCtrl.Promoted)
		rests.GET("/my", auth, restCtrl.Mine)
		rests.GET("/:id", restCtrl.Detail)
		rests.POST("", auth, restCtrl.Create)
		rests.PATCH("/:id", auth, restCtrl.Update)
		rests.DELETE("/:id", auth, restCtrl.Delete)
	}

	// Attractions (read-only public, admin writes live under /admin)
	attrs := api.Group("/attractions")
	{
		attrs.GET("", attrCtrl.List)
		attrs.GET("/nearby", attrCtrl.Nearby)
		attrs.GET("/:id", attrCtrl.Detail)
	}

	// Location of month (public read)
	api.GET("/location-of-month", promoCtrl.GetLocationOfMonth)

	// Contact reveal tracking (public write, admin read)
	api.POST("/contact-clicks", clickCtrl.Record)

	// Uploads
	up := api.Group("/upload", auth)
	{
		up.POST("/image", uploadCtrl.UploadImage)
		up.POST("/images", uploadCtrl.UploadImages)
	}

	// Admin
	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/stats", adminCtrl.Stats)

		admin.GET("/properties", adminCtrl.ListProperties)
		admin.PATCH("/properties/:id/status", adminCtrl.PatchPropertyStatus)
		admin.PATCH("/properties/:id/toggle-active", adminCtrl.TogglePropertyActive)
		admin.DELETE("/properties/:id", adminCtrl.DeleteProperty)

		admin.GET("/services", adminCtrl.ListServices)
		admin.PATCH("/services/:id/status", adminCtrl.PatchServiceStatus)
		admin.PATCH("/services/:id/toggle-active", adminCtrl.ToggleServiceActive)
		admin.DELETE("/services/:id", adminCtrl.DeleteService)

		admin.GET("/restaurants", adminCtrl.ListRestaurants)
		admin.PATCH("/restaurants/:id/status", adminCtrl.PatchRestaurantStatus)
		admin.PATCH("/restaurants/:id/toggle-active", adminCtrl.ToggleRestaurantActive)
		admin.DELETE("/restaurants/:id", adminCtrl.DeleteRestaurant)

		admin.POST("/attractions", adminCtrl.CreateAttraction)
		admin.PATCH("/attractions/:id", adminCtrl.UpdateAttraction)
		admin.DELETE("/attractions/:id", adminCtrl.DeleteAttraction)

		admin.GET("/users", adminCtrl.ListUsers)
		admin.PATCH("/users/:id/role", adminCtrl.PatchUserRole)

		admin.PUT("/promoted/:kind", adminCtrl.SetPromoted)
		admin.PUT("/location-of-month", adminCtrl.SetLocationOfMonth)

		admin.GET("/contact-clicks/stats", clickCtrl.Stats)
	}
}
