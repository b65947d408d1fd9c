package models

import "gorm.io/gorm"

// UserProfile 旅行者档案。Preferences 和 VisitedCountries（去重后的国家列表）
// 都以 JSON 字符串整体存取
type UserProfile struct {
	gorm.Model
	UserID           string `gorm:"uniqueIndex;size:191" json:"user_id"`
	Preferences      string `json:"-"`
	VisitedCountries string `json:"-"`
}

// VisitedCountry 旅行历史，只追加不改写（去重列表在 UserProfile 里）
type VisitedCountry struct {
	gorm.Model
	UserID    string `gorm:"index;size:191" json:"user_id"`
	Country   string `json:"country"`
	VisitDate string `json:"visit_date"`
}
