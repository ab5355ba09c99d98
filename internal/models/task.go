package models

// Task belongs to a project by reference only; ownership is derived
// through the project and never stored on the task.
type Task struct {
	BaseModel `bson:",inline"`

	ProjectID   string `gorm:"type:uuid;not null;index" bson:"projectId" json:"projectId"`
	Title       string `gorm:"not null" bson:"title" json:"title"`
	Description string `bson:"description,omitempty" json:"description,omitempty"`
	Status      string `bson:"status,omitempty" json:"status,omitempty"`
	Priority    *int   `bson:"priority,omitempty" json:"priority,omitempty"`

	Project *ProjectSummary `gorm:"-" bson:"-" json:"project,omitempty"`
}
