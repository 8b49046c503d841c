package models

import "time"

type Users struct {
	Id        int64     `gorm:"column:id;primary_key" json:"id"`
	Username  string    `gorm:"column:username;type:varchar(32);not null;uniqueIndex:uk_username" json:"username"`
	Email     string    `gorm:"column:email;type:varchar(128);not null;default:''" json:"email"`
	Password  string    `gorm:"column:password;type:varchar(128);not null;default:''" json:"-"`
	Nickname  string    `gorm:"column:nickname;type:varchar(32);not null;default:''" json:"nickname"`
	Avatar    string    `gorm:"column:avatar;type:varchar(255);not null;default:''" json:"avatar"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Users) TableName() string {
	return "users"
}
