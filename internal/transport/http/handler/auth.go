package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/app"
	"recipeshare/internal/model"
	"recipeshare/internal/serializer"
	"recipeshare/internal/session"
	"recipeshare/internal/transport/http/middleware"
	"recipeshare/internal/transport/http/response"
)

type AuthHandler struct {
	authService *app.AuthService
}

type SignupRequest struct {
	Username string `json:"username"`
	ImageURL string `json:"image_url"`
	Bio      string `json:"bio"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func NewAuthHandler(authService *app.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), app.SignupInput{
		Username: req.Username,
		ImageURL: req.ImageURL,
		Bio:      req.Bio,
		Password: req.Password,
	})
	if err != nil {
		var validationErr *model.ValidationError
		switch {
		case errors.As(err, &validationErr):
			response.Errors(c, http.StatusUnprocessableEntity, validationErr.Message)
		case errors.Is(err, app.ErrUsernameExists):
			response.Errors(c, http.StatusUnprocessableEntity, response.MsgUsernameExists)
		default:
			log.Printf("signup failed: %v", err)
			response.Error(c, http.StatusInternalServerError, "signup failed")
		}
		return
	}

	if err := session.Start(c, user.ID); err != nil {
		log.Printf("start session failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "signup failed")
		return
	}
	c.JSON(http.StatusCreated, serializer.User(user))
}

func (h *AuthHandler) CheckSession(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	user, err := h.authService.CurrentUser(userID)
	if err != nil {
		log.Printf("fetch current user failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "check session failed")
		return
	}
	if user == nil {
		// Stale cookie pointing at a user that no longer exists.
		response.Unauthorized(c)
		return
	}
	c.JSON(http.StatusOK, serializer.User(user))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	user, err := h.authService.Login(app.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, app.ErrInvalidCredential) {
			response.Error(c, http.StatusUnauthorized, response.MsgInvalidCredentials)
			return
		}
		log.Printf("login failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "login failed")
		return
	}

	if err := session.Start(c, user.ID); err != nil {
		log.Printf("start session failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "login failed")
		return
	}
	c.JSON(http.StatusOK, serializer.User(user))
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.End(c); err != nil {
		log.Printf("end session failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "logout failed")
		return
	}
	c.Status(http.StatusNoContent)
}
