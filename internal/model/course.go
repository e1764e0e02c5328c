package model

// Course is the root of the content hierarchy. Module order is meaningful,
// so modules carry a position and are always loaded ordered.
type Course struct {
	UUIDBase
	Title       string   `gorm:"size:255;not null" json:"title"`
	Description string   `gorm:"type:text" json:"description"`
	ImageURL    string   `gorm:"size:512" json:"imageUrl,omitempty"`
	Modules     []Module `gorm:"foreignKey:CourseID" json:"modules,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}
