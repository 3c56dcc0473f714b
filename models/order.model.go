package models

import "gorm.io/datatypes"

// Order links a user to a purchased course. Orders are never updated.
type Order struct {
	Base
	CourseID    string            `gorm:"size:36;index;not null" json:"courseId"`
	UserID      string            `gorm:"size:36;index;not null" json:"userId"`
	PaymentInfo datatypes.JSONMap `json:"payment_info"`
}
