package services

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
)

func TestNextEmployeeIDEmptyCollection(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "EMP-26-0001", NextEmployeeID("", now))
}

func TestNextEmployeeIDContinuesSequence(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, "EMP-26-0008", NextEmployeeID("EMP-26-0007", now))

	// The year prefix is not part of the comparison: a last id from a
	// prior year continues its sequence instead of resetting.
	require.Equal(t, "EMP-24-0008", NextEmployeeID("EMP-24-0007", now))
}

func TestNextEmployeeIDZeroPads(t *testing.T) {
	now := time.Now()
	require.Equal(t, "EMP-25-0100", NextEmployeeID("EMP-25-0099", now))
}

func TestNextEmployeeIDMalformedLastStartsFresh(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.Equal(t, "EMP-26-0001", NextEmployeeID("garbage", now))
}

func withEmployee(t *testing.T) (*EmployeeService, *fakeEmployeeStore, *models.Employee) {
	t.Helper()
	employees := newFakeEmployeeStore()
	jobs := newFakeJobStore()
	svc := NewEmployeeService(employees, jobs)

	emp, err := employees.Insert(context.Background(), &models.Employee{
		UserID:        bson.NewObjectID(),
		ApplicationID: bson.NewObjectID(),
		JobID:         bson.NewObjectID(),
		EmployeeID:    "EMP-26-0001",
		FullName:      "Abebe Kebede",
		Email:         "abebe@example.com",
		JobTitle:      "Software Engineer",
		Department:    "Engineering",
		Status:        models.EmployeeActive,
	})
	require.NoError(t, err)
	return svc, employees, emp
}

func TestUploadPhotoRegeneratesQR(t *testing.T) {
	svc, employees, emp := withEmployee(t)

	updated, err := svc.UploadPhoto(context.Background(), emp.UserID.Hex(), "base64-photo-bytes")
	require.NoError(t, err)

	require.Equal(t, "base64-photo-bytes", updated.Photo)
	require.True(t, strings.HasPrefix(updated.QRCode, "data:image/png;base64,"))
	require.NotNil(t, updated.PhotoUploadedAt)
	require.NotNil(t, updated.QRCodeGeneratedAt)

	// Photo and QR are written together, so their timestamps match.
	require.Equal(t, *updated.PhotoUploadedAt, *updated.QRCodeGeneratedAt)

	stored := employees.emps[emp.ID.Hex()]
	require.Equal(t, updated.QRCode, stored.QRCode)
}

func TestUploadPhotoRequiresPhoto(t *testing.T) {
	svc, _, emp := withEmployee(t)

	_, err := svc.UploadPhoto(context.Background(), emp.UserID.Hex(), "")
	require.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestUploadPhotoWithoutEmployeeRecord(t *testing.T) {
	svc, _, _ := withEmployee(t)

	_, err := svc.UploadPhoto(context.Background(), bson.NewObjectID().Hex(), "photo")
	require.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestProfileReturnsEmployeeForUser(t *testing.T) {
	svc, _, emp := withEmployee(t)

	got, err := svc.Profile(context.Background(), emp.UserID.Hex())
	require.NoError(t, err)
	require.Equal(t, emp.EmployeeID, got.EmployeeID)
}

func TestEmployeeIDSequenceThroughApprovals(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < 3; i++ {
		in := validInput(f)
		in.Email = fmt.Sprintf("applicant%d@example.com", i)
		summary, err := f.svc.Apply(context.Background(), in)
		require.NoError(t, err)

		result, err := f.svc.Approve(context.Background(), summary.ID)
		require.NoError(t, err)

		want := fmt.Sprintf("EMP-%s-%04d", time.Now().Format("06"), i+1)
		require.Equal(t, want, result.EmployeeID)
	}
}
