package models

import "time"

// UserModel is a registered account. VIP gates access to the vip tier on the
// frontend; IsAdmin gates the content management endpoints.
type UserModel struct {
	Base
	Name          string     `json:"name"`
	Email         string     `json:"email"   gorm:"size:191;uniqueIndex;not null"`
	Password      string     `json:"-"       gorm:"not null"`
	VIP           bool       `json:"vip"     gorm:"default:false"`
	IsAdmin       bool       `json:"isAdmin" gorm:"default:false"`
	LastLoginTime *time.Time `json:"lastLoginTime,omitempty"`
	LastLoginIP   string     `json:"-"`
}

func (UserModel) TableName() string { return "users" }
