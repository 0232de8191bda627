package services

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/utils"
)

const testSecret = "test-secret"

func withAuth(t *testing.T) (*AuthService, *fakeUserStore) {
	t.Helper()
	users := newFakeUserStore()
	return NewAuthService(users, testSecret), users
}

func seedApplicant(t *testing.T, users *fakeUserStore, approved bool) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword("abebe@42")
	require.NoError(t, err)
	user, err := users.Insert(context.Background(), &models.User{
		Name:       "Abebe Kebede",
		Username:   "abebe1234",
		Password:   hashed,
		Role:       models.RoleApplicant,
		IsApproved: approved,
	})
	require.NoError(t, err)
	return user
}

func TestLoginSucceeds(t *testing.T) {
	svc, users := withAuth(t)
	user := seedApplicant(t, users, true)

	result, err := svc.Login(context.Background(), "abebe1234", "abebe@42")
	require.NoError(t, err)
	require.Equal(t, user.ID.Hex(), result.ID)
	require.Equal(t, models.RoleApplicant, result.Role)
	require.NotEmpty(t, result.Token)

	// The token subject must resolve back to the user.
	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(result.Token, &claims, func(t *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)
	require.Equal(t, user.ID.Hex(), claims.Subject)
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc, _ := withAuth(t)

	_, err := svc.Login(context.Background(), "", "pw")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
	_, err = svc.Login(context.Background(), "user", "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := withAuth(t)

	_, err := svc.Login(context.Background(), "nobody", "pw")
	require.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
	require.EqualError(t, err, "Invalid credentials")
}

func TestLoginWrongPassword(t *testing.T) {
	svc, users := withAuth(t)
	seedApplicant(t, users, true)

	_, err := svc.Login(context.Background(), "abebe1234", "wrong")
	require.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
	require.EqualError(t, err, "Invalid credentials")
}

func TestLoginUnapprovedApplicant(t *testing.T) {
	svc, users := withAuth(t)
	seedApplicant(t, users, false)

	_, err := svc.Login(context.Background(), "abebe1234", "abebe@42")
	require.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
	require.EqualError(t, err, "Your account is pending approval")
}

func TestCreateAdminBootstrap(t *testing.T) {
	svc, _ := withAuth(t)

	admin, err := svc.CreateAdmin(context.Background(), "Admin", "admin", "s3cret")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.True(t, admin.IsApproved)
	require.NotEqual(t, "s3cret", admin.Password, "password must be hashed")

	// Admins can log in without the isApproved applicant gate.
	result, err := svc.Login(context.Background(), "admin", "s3cret")
	require.NoError(t, err)
	require.Equal(t, models.RoleAdmin, result.Role)
}

func TestCreateAdminIsOneTime(t *testing.T) {
	svc, _ := withAuth(t)

	_, err := svc.CreateAdmin(context.Background(), "Admin", "admin", "s3cret")
	require.NoError(t, err)

	_, err = svc.CreateAdmin(context.Background(), "Second", "admin2", "s3cret")
	require.True(t, apperr.IsKind(err, apperr.KindConflict))
	require.EqualError(t, err, "Admin already exists")
}

func TestCreateAdminRequiresFields(t *testing.T) {
	svc, _ := withAuth(t)

	_, err := svc.CreateAdmin(context.Background(), "", "admin", "pw")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}
