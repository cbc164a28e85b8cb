package repository

import (
	"fmt"

	"gorm.io/gorm"

	"recipeshare/internal/model"
)

type RecipeRepository struct {
	db *gorm.DB
}

func NewRecipeRepository(db *gorm.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

func (r *RecipeRepository) Create(recipe *model.Recipe) error {
	if err := r.db.Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe failed: %w", err)
	}
	return nil
}

func (r *RecipeRepository) All() ([]model.Recipe, error) {
	var recipes []model.Recipe
	if err := r.db.Order("id").Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes failed: %w", err)
	}
	return recipes, nil
}
