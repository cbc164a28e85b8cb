package model

import "time"

const (
	ActionUserSignedUp  = "user.signed_up"
	ActionRecipeCreated = "recipe.created"
)

// Activity is an append-only feed entry persisted by the activity worker from
// queue deliveries.
type Activity struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	Action    string    `gorm:"size:64;not null" json:"action"`
	RecipeID  *uint     `json:"recipe_id"`
	CreatedAt time.Time `json:"created_at"`
}
