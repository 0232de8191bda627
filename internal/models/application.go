package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ApplicationPending  = "pending"
	ApplicationApproved = "approved"
	ApplicationRejected = "rejected"
)

// Application holds one submission per (email, job) pair. After approval it
// also carries the generated credential snapshot so an admin can show them
// to the applicant once; the admin user listing never exposes passwords.
type Application struct {
	ID                bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	ApplicantName     string        `bson:"applicantName" json:"applicantName"`
	Email             string        `bson:"email" json:"email"`
	Phone             string        `bson:"phone" json:"phone"`
	GPA               float64       `bson:"gpa" json:"gpa"`
	ExitExam          string        `bson:"exitExam" json:"exitExam"`
	JobID             bson.ObjectID `bson:"job_id" json:"jobId"`
	Status            string        `bson:"status" json:"status"`
	GeneratedUsername string        `bson:"generatedUsername,omitempty" json:"generatedUsername,omitempty"`
	GeneratedPassword string        `bson:"generatedPassword,omitempty" json:"generatedPassword,omitempty"`
	AppliedAt         time.Time     `bson:"appliedAt" json:"appliedAt"`

	// Filled in by the list/detail join, never persisted.
	Job *Job `bson:"-" json:"job,omitempty"`
}
