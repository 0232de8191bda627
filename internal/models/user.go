package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleAdmin     = "admin"
	RoleApplicant = "applicant"
)

const (
	IDStatusPending  = "pending"
	IDStatusActive   = "active"
	IDStatusRejected = "rejected"
)

// Document is one uploaded record on a user's profile.
type Document struct {
	URL        string    `bson:"url" json:"url"`
	Type       string    `bson:"type" json:"type"`
	UploadedAt time.Time `bson:"uploadedAt" json:"uploadedAt"`
}

// User is the system of record for identity. Applicant accounts are only
// ever created by approving an Application; the single admin is created by
// the one-time bootstrap route.
type User struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name       string        `bson:"name" json:"name"`
	Username   string        `bson:"username,omitempty" json:"username,omitempty"`
	Password   string        `bson:"password,omitempty" json:"-"`
	Email      string        `bson:"email,omitempty" json:"email,omitempty"`
	Role       string        `bson:"role" json:"role"`
	Department string        `bson:"department,omitempty" json:"department,omitempty"`
	FaydaID    string        `bson:"faydaId,omitempty" json:"faydaId,omitempty"`
	Phone      string        `bson:"phone,omitempty" json:"phone,omitempty"`
	Address    string        `bson:"address,omitempty" json:"address,omitempty"`
	Documents  []Document    `bson:"documents,omitempty" json:"documents,omitempty"`
	IsApproved bool          `bson:"isApproved" json:"isApproved"`

	// ID badge cluster, separate from employment status.
	IDPhoto           string     `bson:"idPhoto,omitempty" json:"idPhoto,omitempty"`
	IDStatus          string     `bson:"idStatus,omitempty" json:"idStatus,omitempty"`
	IDNumber          string     `bson:"idNumber,omitempty" json:"idNumber,omitempty"`
	IDIssueDate       *time.Time `bson:"idIssueDate,omitempty" json:"idIssueDate,omitempty"`
	IDExpiryDate      *time.Time `bson:"idExpiryDate,omitempty" json:"idExpiryDate,omitempty"`
	IDRejectionReason string     `bson:"idRejectionReason,omitempty" json:"idRejectionReason,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}
