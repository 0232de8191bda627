package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	EmployeeActive   = "active"
	EmployeeInactive = "inactive"
)

// Employee is a read-optimized projection of User+Job+Application data plus
// the badge fields. User stays the system of record for identity.
type Employee struct {
	ID            bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	UserID        bson.ObjectID `bson:"user_id" json:"userId"`
	ApplicationID bson.ObjectID `bson:"application_id" json:"applicationId"`
	JobID         bson.ObjectID `bson:"job_id" json:"jobId"`

	// EMP-YY-NNNN, issued sequentially.
	EmployeeID string `bson:"employee_id" json:"employeeId"`

	FullName string `bson:"fullName" json:"fullName"`
	Email    string `bson:"email" json:"email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`

	Photo           string     `bson:"photo,omitempty" json:"photo,omitempty"`
	PhotoUploadedAt *time.Time `bson:"photoUploadedAt,omitempty" json:"photoUploadedAt,omitempty"`

	JobTitle   string `bson:"jobTitle" json:"jobTitle"`
	Department string `bson:"department" json:"department"`
	Salary     string `bson:"salary,omitempty" json:"salary,omitempty"`
	Location   string `bson:"location,omitempty" json:"location,omitempty"`
	JobType    string `bson:"jobType,omitempty" json:"jobType,omitempty"`

	StartDate time.Time `bson:"startDate" json:"startDate"`
	Status    string    `bson:"status" json:"status"`

	QRCode            string     `bson:"qrCode,omitempty" json:"qrCode,omitempty"`
	QRCodeGeneratedAt *time.Time `bson:"qrCodeGeneratedAt,omitempty" json:"qrCodeGeneratedAt,omitempty"`

	CreatedAt time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`

	// Filled in by the profile/detail join, never persisted.
	Job *Job `bson:"-" json:"job,omitempty"`
}
