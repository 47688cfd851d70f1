package model

import "time"

// ProfileModel mirrors the 'profiles' table in the commerce database. One
// row per account, created lazily on first read.
type ProfileModel struct {
	ID        int64 `gorm:"primaryKey;autoIncrement"`
	AccountID int64 `gorm:"unique;not null"` // Weak reference into the identity database.
	Name      string `gorm:"type:varchar(255)"`
	Email     string `gorm:"type:varchar(255)"`
	Phone     string `gorm:"type:varchar(20)"`
	Address   string `gorm:"type:text"`
	DarkMode  bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
