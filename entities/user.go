package entities

import "time"

type User struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	Username     string `gorm:"size:64;uniqueIndex" json:"username"`
	PasswordHash string `gorm:"size:256" json:"-"`

	Alerts []*Alert `gorm:"foreignKey:UserID"`
	Timestamp
}

type Alert struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	Task       string     `gorm:"size:512" json:"task"`
	Occurrence string     `gorm:"size:256" json:"occurrence"`
	Status     string     `gorm:"size:64;default:active" json:"status"`
	UserID     uint       `gorm:"index" json:"user_id"`
	CreatedAt  time.Time  `json:"created_at"`
	LastRead   *time.Time `json:"last_read,omitempty"`

	User *User `gorm:"foreignKey:UserID"`
}
