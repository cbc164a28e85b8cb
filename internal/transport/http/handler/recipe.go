package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipeshare/internal/app"
	"recipeshare/internal/model"
	"recipeshare/internal/serializer"
	"recipeshare/internal/transport/http/middleware"
	"recipeshare/internal/transport/http/response"
)

type RecipeHandler struct {
	recipeService *app.RecipeService
}

// CreateRecipeRequest deliberately has no user_id field: ownership always
// comes from the session.
type CreateRecipeRequest struct {
	Title             string `json:"title"`
	Instructions      string `json:"instructions"`
	MinutesToComplete *int   `json:"minutes_to_complete"`
}

func NewRecipeHandler(recipeService *app.RecipeService) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService}
}

func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		log.Printf("list recipes failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "list recipes failed")
		return
	}
	c.JSON(http.StatusOK, serializer.Recipes(recipes))
}

func (h *RecipeHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	recipe, err := h.recipeService.Create(c.Request.Context(), app.CreateRecipeInput{
		UserID:            userID,
		Title:             req.Title,
		Instructions:      req.Instructions,
		MinutesToComplete: req.MinutesToComplete,
	})
	if err != nil {
		var validationErr *model.ValidationError
		if errors.As(err, &validationErr) {
			response.Errors(c, http.StatusUnprocessableEntity, validationErr.Message)
			return
		}
		log.Printf("create recipe failed: %v", err)
		response.Error(c, http.StatusInternalServerError, "create recipe failed")
		return
	}
	c.JSON(http.StatusCreated, serializer.Recipe(recipe))
}
