package models

import "github.com/google/uuid"

// OwnerInfo is a singleton record: at most one row exists, and saves
// overwrite it in place.
type OwnerInfo struct {
	ID    uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name  string    `json:"name" gorm:"type:varchar(255);not null"`
	DOB   string    `json:"dob" gorm:"type:varchar(255);not null"`
	Name1 string    `json:"name1" gorm:"type:varchar(255);not null"`
}
