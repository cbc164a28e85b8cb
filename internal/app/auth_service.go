package app

import (
	"context"
	"errors"
	"log"

	"gorm.io/gorm"

	"recipeshare/internal/model"
	"recipeshare/internal/repository"
)

var (
	ErrUsernameExists    = errors.New("username already exists")
	ErrInvalidCredential = errors.New("invalid username or password")
)

// ActivityPublisher emits feed events. Publishing is best-effort: a failure
// is logged and never fails the request.
type ActivityPublisher interface {
	Publish(ctx context.Context, activity model.Activity) error
}

type AuthService struct {
	userRepo  *repository.UserRepository
	publisher ActivityPublisher
}

type SignupInput struct {
	Username string
	ImageURL string
	Bio      string
	Password string
}

type LoginInput struct {
	Username string
	Password string
}

func NewAuthService(userRepo *repository.UserRepository, publisher ActivityPublisher) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		publisher: publisher,
	}
}

// Signup validates and persists a new user. The insert is a single atomic
// statement; a lost uniqueness race rolls back wholly and surfaces as
// ErrUsernameExists. Field validation failures come back as
// *model.ValidationError.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	user := &model.User{
		Username: input.Username,
		ImageURL: input.ImageURL,
		Bio:      input.Bio,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := user.SetPassword(input.Password); err != nil {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	s.publish(ctx, model.Activity{UserID: user.ID, Action: model.ActionUserSignedUp})
	return user, nil
}

// Login resolves credentials to a user. Unknown username and wrong password
// are indistinguishable: both return ErrInvalidCredential.
func (s *AuthService) Login(input LoginInput) (*model.User, error) {
	user, err := s.userRepo.GetByUsername(input.Username)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.Authenticate(input.Password) {
		return nil, ErrInvalidCredential
	}
	return user, nil
}

// CurrentUser loads the session's user, nil when the id no longer resolves.
func (s *AuthService) CurrentUser(id uint) (*model.User, error) {
	if id == 0 {
		return nil, nil
	}
	return s.userRepo.GetByID(id)
}

func (s *AuthService) publish(ctx context.Context, activity model.Activity) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, activity); err != nil {
		log.Printf("publish %s activity failed: %v", activity.Action, err)
	}
}
