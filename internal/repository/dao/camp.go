package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCampNotFound = errors.New("camp not found")

type Camp struct {
	ID          uint      `gorm:"primaryKey"`
	StartDate   time.Time `gorm:"not null"`
	EndDate     time.Time `gorm:"not null"`
	PackageType string    `gorm:"not null"` // "tennis_only", "stay_and_play", "luxury_stay_and_play" or "no_tennis"
	MaxPlayers  int       `gorm:"default:0"`
	CoachID     *uint     `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CampDAO struct {
	db *gorm.DB
}

func NewCampDAO(db *gorm.DB) *CampDAO {
	return &CampDAO{
		db: db,
	}
}

func (d *CampDAO) Insert(ctx context.Context, camp Camp) (Camp, error) {
	if result := d.db.WithContext(ctx).Create(&camp); result.Error != nil {
		return Camp{}, result.Error
	}

	return camp, nil
}

func (d *CampDAO) FindByID(ctx context.Context, id uint) (Camp, error) {
	var camp Camp
	if err := d.db.WithContext(ctx).First(&camp, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Camp{}, ErrCampNotFound
		}
		return Camp{}, err
	}

	return camp, nil
}

func (d *CampDAO) FindAll(ctx context.Context) ([]Camp, error) {
	var camps []Camp
	if err := d.db.WithContext(ctx).Order("start_date asc").Find(&camps).Error; err != nil {
		return nil, err
	}

	return camps, nil
}

// CountConfirmed counts the confirmed registrations holding a slot in
// the camp.
func (d *CampDAO) CountConfirmed(ctx context.Context, campID uint) (int, error) {
	var count int64
	err := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("camp_id = ? AND status = ?", campID, "confirmed").
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}
