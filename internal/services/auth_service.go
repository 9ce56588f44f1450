package services

import (
	"context"
	"errors"

	"foodcourt/internal/domain"
	"foodcourt/internal/infra/sessions"
	"foodcourt/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	users  repository.UserRepository
	tokens sessions.StoreInterface
}

func NewAuthService(users repository.UserRepository, tokens sessions.StoreInterface) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Register creates an account and issues a session token. The email is
// the login handle and must be unused; an empty role defaults to buyer.
func (s *AuthService) Register(ctx context.Context, name, email, password string, role domain.Role) (*domain.User, string, error) {
	if role == "" {
		role = domain.RoleBuyer
	}
	if !role.Valid() {
		return nil, "", ErrInvalidRole
	}

	existing, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if existing != nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Save(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", ErrInvalidCreds
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}

	token, err := s.tokens.Issue(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Authenticate resolves a bearer token to its account.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, sessions.ErrTokenNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}

	user, err := s.users.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidToken
	}
	return user, nil
}

func (s *AuthService) Profile(ctx context.Context, id uint64) (*domain.User, error) {
	user, err := s.users.FindByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.tokens.Revoke(ctx, token)
}
