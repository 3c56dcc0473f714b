package models

type NotificationStatus string

const (
	NotificationUnread NotificationStatus = "unread"
	NotificationRead   NotificationStatus = "read"
)

type Notification struct {
	Base
	Title   string             `gorm:"not null" json:"title"`
	Message string             `gorm:"type:text;not null" json:"message"`
	Status  NotificationStatus `gorm:"size:16;default:'unread';index" json:"status"`
	UserID  string             `gorm:"size:36;index" json:"userId"`
}
