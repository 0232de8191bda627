package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Job struct {
	ID               bson.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title            string        `bson:"title" json:"title"`
	Department       string        `bson:"department" json:"department"`
	Description      string        `bson:"description" json:"description"`
	Requirements     string        `bson:"requirements" json:"requirements"`
	Salary           string        `bson:"salary,omitempty" json:"salary,omitempty"`
	Location         string        `bson:"location,omitempty" json:"location,omitempty"`
	JobType          string        `bson:"jobType,omitempty" json:"jobType,omitempty"`
	Benefits         string        `bson:"benefits,omitempty" json:"benefits,omitempty"`
	Responsibilities string        `bson:"responsibilities,omitempty" json:"responsibilities,omitempty"`
	Experience       string        `bson:"experience,omitempty" json:"experience,omitempty"`
	Education        string        `bson:"education,omitempty" json:"education,omitempty"`
	Skills           []string      `bson:"skills,omitempty" json:"skills,omitempty"`
	Deadline         time.Time     `bson:"deadline" json:"deadline"`
	CreatedBy        bson.ObjectID `bson:"createdBy" json:"createdBy"`
	IsActive         bool          `bson:"isActive" json:"isActive"`
	CreatedAt        time.Time     `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt        time.Time     `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
