// Package model contains the GORM persistence models mirroring the database
// tables of both stores.
package model

import "time"

// AccountModel mirrors the 'accounts' table in the identity database. Its
// primary key is the numeric id that commerce tables embed as a bare value;
// no table in the commerce database declares a foreign key against it.
type AccountModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	Username        string `gorm:"type:varchar(80);unique;not null"`
	Email           string `gorm:"type:varchar(120);unique;not null"`
	PasswordHash    string `gorm:"type:varchar(255);not null"`
	FullName        string `gorm:"type:varchar(120)"`
	Phone           string `gorm:"type:varchar(20)"`
	Role            string `gorm:"type:varchar(20);not null;default:buyer"`
	ShopName        string `gorm:"type:varchar(120)"`
	ShopDescription string `gorm:"type:text"`
	Status          string `gorm:"type:varchar(20);not null;default:active"`
	CanUploadStock  bool   `gorm:"not null;default:false"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
