package dao

import (
	"context"
	"errors"

	"randomchat/randomchat/sources/psql/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OwnerInfoDAO struct {
	DB *gorm.DB
}

func NewOwnerInfoDAO(db *gorm.DB) *OwnerInfoDAO {
	return &OwnerInfoDAO{DB: db}
}

// Get returns the singleton record, or (nil, nil) when none has been saved.
func (dao *OwnerInfoDAO) Get(ctx context.Context) (*models.OwnerInfo, error) {
	var info models.OwnerInfo
	err := dao.DB.WithContext(ctx).First(&info).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &info, nil
}

// Save upserts the singleton: overwrite the existing record's fields in
// place, or create the record on first save. There is no lock between the
// read and the write; the record is written rarely enough not to matter.
func (dao *OwnerInfoDAO) Save(ctx context.Context, name, dob, name1 string) (*models.OwnerInfo, error) {
	info, err := dao.Get(ctx)
	if err != nil {
		return nil, err
	}
	if info == nil {
		info = &models.OwnerInfo{ID: uuid.New(), Name: name, DOB: dob, Name1: name1}
		if err := dao.DB.WithContext(ctx).Create(info).Error; err != nil {
			return nil, err
		}
		return info, nil
	}
	info.Name = name
	info.DOB = dob
	info.Name1 = name1
	if err := dao.DB.WithContext(ctx).Save(info).Error; err != nil {
		return nil, err
	}
	return info, nil
}
