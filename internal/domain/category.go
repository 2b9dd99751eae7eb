package domain

import (
	"time"

	"gorm.io/gorm"
)

type Category struct {
	ID        uint64         `json:"categoryId" gorm:"primaryKey;autoIncrement"`
	Name      string         `json:"name" gorm:"not null;size:20"`
	Order     int            `json:"order" gorm:"column:order;not null;index"`
	OwnerID   uint64         `json:"ownerId" gorm:"not null;index"`
	CreatedAt time.Time      `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time      `json:"updatedAt" gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}
