package app

import (
	"context"
	"log"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

// RecipeCache is an optional read-through cache for the full recipe list.
// Cache failures degrade to the database, never to the client.
type RecipeCache interface {
	GetAll(ctx context.Context) ([]model.Recipe, bool, error)
	SetAll(ctx context.Context, recipes []model.Recipe) error
	Invalidate(ctx context.Context) error
}

type RecipeService struct {
	recipeRepo *repository.RecipeRepository
	cache      RecipeCache
	publisher  ActivityPublisher
}

type CreateRecipeInput struct {
	UserID            uint
	Title             string
	Instructions      string
	MinutesToComplete *int
}

func NewRecipeService(recipeRepo *repository.RecipeRepository, cache RecipeCache, publisher ActivityPublisher) *RecipeService {
	return &RecipeService{
		recipeRepo: recipeRepo,
		cache:      cache,
		publisher:  publisher,
	}
}

func (s *RecipeService) List(ctx context.Context) ([]model.Recipe, error) {
	if s.cache != nil {
		if cached, hit, err := s.cache.GetAll(ctx); err == nil && hit {
			return cached, nil
		}
	}

	recipes, err := s.recipeRepo.All()
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetAll(ctx, recipes); err != nil {
			log.Printf("cache recipe list failed: %v", err)
		}
	}
	return recipes, nil
}

// Create validates and persists a recipe owned by input.UserID. The owner id
// comes from the caller's session, never from the request body.
func (s *RecipeService) Create(ctx context.Context, input CreateRecipeInput) (*model.Recipe, error) {
	recipe := &model.Recipe{
		Title:             input.Title,
		Instructions:      input.Instructions,
		MinutesToComplete: input.MinutesToComplete,
		UserID:            input.UserID,
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}

	if err := s.recipeRepo.Create(recipe); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.Printf("invalidate recipe cache failed: %v", err)
		}
	}
	if s.publisher != nil {
		activity := model.Activity{
			UserID:   recipe.UserID,
			Action:   model.ActionRecipeCreated,
			RecipeID: &recipe.ID,
		}
		if err := s.publisher.Publish(ctx, activity); err != nil {
			log.Printf("publish %s activity failed: %v", activity.Action, err)
		}
	}
	return recipe, nil
}
