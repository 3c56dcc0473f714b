package models

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

// Role is the closed set of user roles.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

// CourseRef marks a purchased course on the user record.
type CourseRef struct {
	CourseID string `json:"courseId"`
}

type User struct {
	Base
	Name       string                         `gorm:"not null" json:"name"`
	Email      string                         `gorm:"uniqueIndex;size:191;not null" json:"email"`
	Password   string                         `json:"-"` // bcrypt hash, empty for social logins
	Role       Role                           `gorm:"size:16;default:'user'" json:"role"`
	Avatar     datatypes.JSONType[Image]      `json:"avatar"`
	IsVerified bool                           `gorm:"default:false" json:"isVerified"`
	Courses    datatypes.JSONSlice[CourseRef] `json:"courses"`
}

// SetPassword stores the bcrypt hash of plain.
func (u *User) SetPassword(plain string, cost int) error {
	hash, err := HashPassword(plain, cost)
	if err != nil {
		return err
	}
	u.Password = hash
	return nil
}

// ComparePassword reports whether plain matches the stored hash.
func (u *User) ComparePassword(plain string) bool {
	if u.Password == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}

// HasCourse reports whether the user purchased courseID.
func (u *User) HasCourse(courseID string) bool {
	for _, ref := range u.Courses {
		if ref.CourseID == courseID {
			return true
		}
	}
	return false
}

// AddCourse records a purchase. Adding the same course twice is a no-op.
func (u *User) AddCourse(courseID string) {
	if u.HasCourse(courseID) {
		return
	}
	u.Courses = append(u.Courses, CourseRef{CourseID: courseID})
}

// Summary is the author snapshot embedded in questions, answers and reviews.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:     u.ID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
		Avatar: u.Avatar.Data(),
	}
}

// UserSummary is a denormalized copy of the author of a sub-document.
type UserSummary struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	Avatar Image  `json:"avatar"`
}

// HashPassword returns the bcrypt hash of plain.
func HashPassword(plain string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
