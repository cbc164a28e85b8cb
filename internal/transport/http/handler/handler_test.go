package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"recipeshare/internal/app"
	"recipeshare/internal/model"
	"recipeshare/internal/repository"
	"recipeshare/internal/transport/http/middleware"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Recipe{}, &model.Activity{}))
	return db
}

// newTestRouter wires the handlers the way the production router does, minus
// redis and the broker.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	router := gin.New()
	store := cookie.NewStore([]byte("test-secret"))
	router.Use(sessions.Sessions("recipeshare_session", store))

	authService := app.NewAuthService(repository.NewUserRepository(db), nil)
	recipeService := app.NewRecipeService(repository.NewRecipeRepository(db), nil, nil)
	authHandler := NewAuthHandler(authService)
	recipeHandler := NewRecipeHandler(recipeService)

	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)

	authed := router.Group("")
	authed.Use(middleware.RequireSession())
	authed.GET("/check_session", authHandler.CheckSession)
	authed.DELETE("/logout", authHandler.Logout)
	authed.GET("/recipes", recipeHandler.List)
	authed.POST("/recipes", recipeHandler.Create)

	return router, db
}

// client carries the session cookies between requests like a browser would.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newClient(t *testing.T, router *gin.Engine) *client {
	return &client{t: t, router: router}
}

func (c *client) do(method, path, body string) *httptest.ResponseRecorder {
	c.t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		c.cookies = set
	}
	return w
}

func validInstructions() string {
	return strings.Repeat("Simmer tomatoes with spices, crack in the eggs. ", 2)
}
