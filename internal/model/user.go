package model

import (
	"time"
)

type UserRole string

const (
	Admin      UserRole = "admin"
	Instructor UserRole = "instructor"
	Student    UserRole = "student"
)

// User carries identity, credential and profile attributes. Username and
// email are stored lower-cased so the unique indexes double as the
// case-insensitive identity check.
type User struct {
	UUIDBase
	Username   string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	Email      string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"size:100;not null" json:"-"`
	Role       UserRole  `gorm:"type:varchar(20);default:'student'" json:"role"`
	FirstName  string    `gorm:"size:100;not null" json:"firstName"`
	MiddleName string    `gorm:"size:100" json:"middleName,omitempty"`
	LastName   string    `gorm:"size:100;not null" json:"lastName"`
	Gender     string    `gorm:"size:20" json:"gender,omitempty"`
	AgeRange   string    `gorm:"size:20" json:"ageRange,omitempty"`
	Country    string    `gorm:"size:100;not null" json:"country"`
	LastLogin  time.Time `json:"lastLogin"`
}

func (User) TableName() string {
	return "users"
}

// CanEdit reports whether u may mutate course content.
func (u *User) CanEdit() bool {
	if u == nil {
		return false
	}
	return u.Role == Admin || u.Role == Instructor
}
