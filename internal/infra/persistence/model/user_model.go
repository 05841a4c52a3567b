// Package model holds the GORM persistence models. They mirror the tables
// and are mapped to domain entities by the postgres repositories.
package model

import "time"

// UserModel mirrors the 'users' table. ID is the external identity provider id.
type UserModel struct {
	ID        string `gorm:"type:varchar(64);primaryKey"`
	Email     string `gorm:"type:varchar(255);not null;default:''"`
	Name      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
