package models

import "gorm.io/gorm"

// User 账号信息，密码保存 bcrypt 哈希
type User struct {
	gorm.Model
	Username string `gorm:"unique;not null" json:"username"`
	Password string `json:"-"`
}
