package model

import "time"

type Recipe struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	Title             string    `gorm:"size:255;not null" json:"title"`
	Instructions      string    `gorm:"type:text;not null" json:"instructions"`
	MinutesToComplete *int      `json:"minutes_to_complete"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	User              *User     `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// Validate runs the field preconditions in declaration order and returns the
// first failure.
func (r *Recipe) Validate() error {
	if err := ValidateTitle(r.Title); err != nil {
		return err
	}
	return ValidateInstructions(r.Instructions)
}
