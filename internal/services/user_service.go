package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/jiruejeta/job-portal/internal/apperr"
	"github.com/jiruejeta/job-portal/internal/models"
	"github.com/jiruejeta/job-portal/internal/repository"
)

const defaultIDRejectionReason = "ID photo rejected"

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id string) (*models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id string, upd repository.ProfileUpdate) (*models.User, error) {
	return s.users.UpdateProfile(ctx, id, upd)
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

func (s *UserService) AddDocument(ctx context.Context, id string, url, docType string) ([]models.Document, error) {
	if url == "" || docType == "" {
		return nil, apperr.Validation("Document URL and type are required")
	}
	user, err := s.users.PushDocument(ctx, id, models.Document{
		URL:        url,
		Type:       docType,
		UploadedAt: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return user.Documents, nil
}

// UploadIDPhoto stores a new badge photo. The status always drops back to
// pending, even for an active or rejected badge, and any rejection reason
// is cleared.
func (s *UserService) UploadIDPhoto(ctx context.Context, id string, photo string) (*models.User, error) {
	if photo == "" {
		return nil, apperr.Validation("Photo is required")
	}
	return s.users.SetIDPhoto(ctx, id, photo)
}

// ApproveID issues a badge id and activates the card. Fails when no photo
// has been uploaded; issue numbers are allocated under the unique index
// with a bounded number of retries.
func (s *UserService) ApproveID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.IDPhoto == "" {
		return nil, apperr.Validation("User has no ID photo to approve")
	}

	// Badge ids stay valid for five calendar years from issue.
	now := time.Now()
	expiry := now.AddDate(5, 0, 0)
	for attempt := 0; attempt < maxAllocAttempts; attempt++ {
		idNumber := fmt.Sprintf("ID-%s-%05d", now.Format("06"), rand.Intn(100000))
		updated, err := s.users.SetIDApproved(ctx, id, idNumber, now, expiry)
		if err != nil {
			if apperr.IsKind(err, apperr.KindConflict) {
				continue
			}
			return nil, err
		}
		return updated, nil
	}
	return nil, apperr.Conflict("Could not allocate a unique ID number")
}

// RejectID marks the badge photo rejected. A default reason is stored when
// the admin does not give one.
func (s *UserService) RejectID(ctx context.Context, id string, reason string) (*models.User, error) {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if reason == "" {
		reason = defaultIDRejectionReason
	}
	return s.users.SetIDRejected(ctx, id, reason)
}
