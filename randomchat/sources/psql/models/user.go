package models

import "github.com/google/uuid"

type User struct {
	ID       uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Username string    `json:"username" gorm:"type:varchar(255);uniqueIndex;not null"`
	Password string    `json:"-" gorm:"type:varchar(255);not null"`
}
