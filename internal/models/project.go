package models

import "time"

type Project struct {
	BaseModel `bson:",inline"`

	OwnerID     string     `gorm:"column:owner_user_id;type:uuid;not null;index" bson:"ownerUserId" json:"ownerUserId"`
	Name        string     `gorm:"not null" bson:"name" json:"name"`
	Description string     `bson:"description,omitempty" json:"description,omitempty"`
	StartDate   *time.Time `bson:"startDate,omitempty" json:"startDate,omitempty"`
	EndDate     *time.Time `bson:"endDate,omitempty" json:"endDate,omitempty"`
}

// ProjectSummary is the slice of a project embedded in task listings.
type ProjectSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
