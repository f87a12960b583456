package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"tcg-backend/models"

	"golang.org/x/crypto/bcrypt"
)

const passwordCost = 10

// AuthService registers users and exchanges credentials for session tokens.
type AuthService struct {
	users  UserRepository
	tokens *JWTManager
	cost   int
}

func NewAuthService(users UserRepository, tokens *JWTManager) *AuthService {
	return &AuthService{users: users, tokens: tokens, cost: passwordCost}
}

type SignUpInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserView is the public part of a user returned next to a token.
type UserView struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type Session struct {
	Token string   `json:"token"`
	User  UserView `json:"user"`
}

func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*Session, error) {
	email := strings.TrimSpace(in.Email)
	username := strings.TrimSpace(in.Username)
	if email == "" || in.Password == "" || username == "" {
		return nil, ErrMissingCredentials
	}

	existing, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		slog.Error("sign up lookup failed", "error", err)
		return nil, ErrInternal
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.cost)
	if err != nil {
		slog.Error("password hash failed", "error", err)
		return nil, ErrInternal
	}

	user := &models.User{Email: email, Username: username, Password: string(hash)}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailTaken) {
			return nil, ErrEmailTaken
		}
		slog.Error("sign up insert failed", "error", err)
		return nil, ErrInternal
	}
	slog.Info("user registered", "user_id", user.ID)
	return s.session(user)
}

func (s *AuthService) SignIn(ctx context.Context, in SignInInput) (*Session, error) {
	email := strings.TrimSpace(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingCredentials
	}

	user, err := s.users.FindUserByEmail(ctx, email)
	if err != nil {
		slog.Error("sign in lookup failed", "error", err)
		return nil, ErrInternal
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(user)
}

func (s *AuthService) session(user *models.User) (*Session, error) {
	token, err := s.tokens.Issue(Identity{UserID: user.ID, Email: user.Email})
	if err != nil {
		slog.Error("token issue failed", "user_id", user.ID, "error", err)
		return nil, ErrInternal
	}
	return &Session{
		Token: token,
		User:  UserView{ID: user.ID, Email: user.Email, Username: user.Username},
	}, nil
}
