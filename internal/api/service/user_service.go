package service

import (
	"context"

	"tasktracker/internal/api/apperrors"
	"tasktracker/internal/api/models"
	"tasktracker/internal/api/repository"
	"tasktracker/internal/auth"
)

// UserService defines the interface for registration, login and
// token-to-identity resolution.
type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, error)
	Resolve(ctx context.Context, tokenString string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenManager
}

// NewUserService creates a new UserService.
func NewUserService(userRepo repository.UserRepository, tokens *auth.TokenManager) UserService {
	return &userService{userRepo: userRepo, tokens: tokens}
}

// Register hashes the password and persists a new user. A taken username is
// reported as apperrors.ErrConflict.
func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.ErrConflict
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	return s.userRepo.CreateUser(ctx, req.Username, hash)
}

// Login verifies the credentials and returns a signed access token. Unknown
// username and wrong password are indistinguishable to the caller.
func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return "", err
	}
	if user == nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		return "", apperrors.ErrUnauthorized
	}

	return s.tokens.Issue(user.Username)
}

// Resolve verifies a presented token and looks up the identity it asserts.
// Verification failures and tokens for users that no longer exist both
// return apperrors.ErrUnauthorized.
func (s *userService) Resolve(ctx context.Context, tokenString string) (*models.User, error) {
	username, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}
