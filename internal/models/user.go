package models

type User struct {
	BaseModel `bson:",inline"`

	Name         string `gorm:"not null" bson:"name" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" bson:"email" json:"email"`
	PasswordHash string `gorm:"not null" bson:"passwordHash" json:"-"`
}
