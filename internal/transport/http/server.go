package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	appsvc "recipeshare/internal/app"
	"recipeshare/internal/bootstrap"
	"recipeshare/internal/cache"
	"recipeshare/internal/platform/rabbitmq"
	"recipeshare/internal/repository"
	"recipeshare/internal/transport/http/handler"
	"recipeshare/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), middleware.RequestID())

	store := cookie.NewStore([]byte(app.Config.Session.Secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   app.Config.Session.MaxAgeSeconds,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	router.Use(sessions.Sessions(app.Config.Session.CookieName, store))

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	recipeRepo := repository.NewRecipeRepository(app.MySQL)
	recipeCache := cache.NewRecipeCache(app.Redis, time.Duration(app.Config.Redis.RecipeListTTLSeconds)*time.Second)
	publisher := rabbitmq.NewActivityPublisher(app.MQConn, app.Config.RabbitMQ.ActivityQueue)

	authService := appsvc.NewAuthService(userRepo, publisher)
	recipeService := appsvc.NewRecipeService(recipeRepo, recipeCache, publisher)
	authHandler := handler.NewAuthHandler(authService)
	recipeHandler := handler.NewRecipeHandler(recipeService)

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	authed := router.Group("")
	authed.Use(middleware.RequireSession())
	authed.GET("/check_session", authHandler.CheckSession)
	authed.DELETE("/logout", authHandler.Logout)
	authed.GET("/recipes", recipeHandler.List)
	authed.POST("/recipes", recipeHandler.Create)

	return router
}
