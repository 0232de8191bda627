package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/utils"
)

const tokenTTL = 30 * 24 * time.Hour

type AuthService struct {
	users  UserStore
	secret []byte
}

func NewAuthService(users UserStore, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

type LoginResult struct {
	ID         string `json:"_id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	IsApproved bool   `json:"isApproved"`
	Token      string `json:"token"`
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, apperr.Validation("Please provide username and password")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Unauthenticated("Invalid credentials")
		}
		return nil, err
	}

	if user.Role == models.RoleApplicant && !user.IsApproved {
		return nil, apperr.Unauthenticated("Your account is pending approval")
	}

	if !utils.CheckPassword(user.Password, password) {
		return nil, apperr.Unauthenticated("Invalid credentials")
	}

	token, err := s.signToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		ID:         user.ID.Hex(),
		Name:       user.Name,
		Username:   user.Username,
		Role:       user.Role,
		Department: user.Department,
		IsApproved: user.IsApproved,
		Token:      token,
	}, nil
}

// CreateAdmin is the one-time bootstrap. The query-then-insert admin check
// is not atomic under races, which is acceptable for an operational setup
// step that never sees production traffic.
func (s *AuthService) CreateAdmin(ctx context.Context, name, username, password string) (*models.User, error) {
	if name == "" || username == "" || password == "" {
		return nil, apperr.Validation("Please provide name, username and password")
	}

	exists, err := s.users.AdminExists(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.Conflict("Admin already exists")
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.users.Insert(ctx, &models.User{
		Name:       name,
		Username:   username,
		Password:   hashed,
		Role:       models.RoleAdmin,
		IsApproved: true,
	})
}

func (s *AuthService) Me(ctx context.Context, userID string) (*models.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *AuthService) signToken(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
