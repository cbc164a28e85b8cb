package model

import "time"

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Password  Digest    `gorm:"column:password_hash;size:255" json:"-"`
	ImageURL  string    `gorm:"size:255" json:"image_url"`
	Bio       string    `gorm:"type:text" json:"bio"`
	Recipes   []Recipe  `gorm:"foreignKey:UserID" json:"recipes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetPassword hashes plain and stores only the digest. The plaintext is never
// retained.
func (u *User) SetPassword(plain string) error {
	if plain == "" {
		return &ValidationError{Field: "password", Message: "Password must be present."}
	}
	digest, err := NewDigest(plain)
	if err != nil {
		return err
	}
	u.Password = digest
	return nil
}

// PasswordHash always fails: the stored hash may not be viewed through any
// accessor. Reading is a deliberately absent capability, not an empty value.
func (u *User) PasswordHash() (string, error) {
	return "", ErrPasswordReadNotAllowed
}

// Authenticate reports whether plain matches the stored digest. It returns
// false, never an error, when no digest has been set or plain is empty.
func (u *User) Authenticate(plain string) bool {
	return u.Password.Verify(plain)
}

// Validate runs the field preconditions in declaration order and returns the
// first failure.
func (u *User) Validate() error {
	return ValidateUsername(u.Username)
}
