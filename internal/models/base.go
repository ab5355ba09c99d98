package models

import "time"

// BaseModel carries the identity and timestamps shared by every record.
// IDs are UUID strings assigned before insert so every store keeps the same shape.
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" bson:"_id" json:"id"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
