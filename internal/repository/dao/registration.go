package dao

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fchanaud/tennis-camp-api/internal/domain"
)

var (
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrCampFull             = errors.New("camp is full")
)

type Registration struct {
	ID             uint                 `gorm:"primaryKey"`
	CampID         uint                 `gorm:"not null;index"`
	Camp           Camp                 `gorm:"foreignKey:CampID"`
	Name           string               `gorm:"not null"`
	Email          string               `gorm:"not null"`
	WhatsApp       string               `gorm:"not null"`
	Experience     string               `gorm:"not null"`
	PlayFrequency  string               `gorm:"not null"`
	BedroomType    string               `gorm:"not null"` // "shared" or "private_double"
	PolicyAccepted bool                 `gorm:"not null"`
	Status         string               `gorm:"not null;index"`
	Options        []RegistrationOption `gorm:"foreignKey:RegistrationID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type RegistrationOption struct {
	ID             uint   `gorm:"primaryKey"`
	RegistrationID uint   `gorm:"not null;index"`
	Type           string `gorm:"not null"`
	Price          int    `gorm:"not null"`
}

type RegistrationDAO struct {
	db *gorm.DB
}

func NewRegistrationDAO(db *gorm.DB) *RegistrationDAO {
	return &RegistrationDAO{
		db: db,
	}
}

// Insert creates the registration only if the camp still has a free
// slot. The camp row is locked and confirmed registrations re-counted
// inside the same transaction, so two racing submissions cannot both
// squeeze past the capacity check at insert time.
func (d *RegistrationDAO) Insert(ctx context.Context, registration Registration, options []RegistrationOption) (Registration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var camp Camp
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&camp, registration.CampID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCampNotFound
			}
			return err
		}

		capacity := camp.MaxPlayers
		if capacity <= 0 {
			capacity = domain.DefaultMaxPlayers
		}

		var confirmed int64
		if err := tx.Model(&Registration{}).
			Where("camp_id = ? AND status = ?", camp.ID, "confirmed").
			Count(&confirmed).Error; err != nil {
			return err
		}
		if int(confirmed) >= capacity {
			return ErrCampFull
		}

		return tx.Create(&registration).Error
	})
	if err != nil {
		return Registration{}, err
	}

	// Option rows are best-effort: a failed insert is logged and does
	// not fail the registration.
	for _, opt := range options {
		opt.RegistrationID = registration.ID
		if result := d.db.WithContext(ctx).Create(&opt); result.Error != nil {
			zap.L().Error("failed to insert registration option",
				zap.Uint("registration_id", registration.ID),
				zap.String("option_type", opt.Type),
				zap.Error(result.Error))
			continue
		}
		registration.Options = append(registration.Options, opt)
	}

	return registration, nil
}

func (d *RegistrationDAO) FindByID(ctx context.Context, id uint) (Registration, error) {
	var registration Registration
	err := d.db.WithContext(ctx).
		Preload("Options").
		First(&registration, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Registration{}, ErrRegistrationNotFound
		}
		return Registration{}, err
	}

	return registration, nil
}

// Update writes the mutable fields and fully replaces the option set
// (delete-all, insert-new).
func (d *RegistrationDAO) Update(ctx context.Context, registration Registration, options []RegistrationOption) (Registration, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"name":           registration.Name,
			"email":          registration.Email,
			"whats_app":      registration.WhatsApp,
			"experience":     registration.Experience,
			"play_frequency": registration.PlayFrequency,
			"bedroom_type":   registration.BedroomType,
		}
		if err := tx.Model(&Registration{}).Where("id = ?", registration.ID).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("registration_id = ?", registration.ID).Delete(&RegistrationOption{}).Error; err != nil {
			return err
		}
		for i := range options {
			options[i].RegistrationID = registration.ID
			if err := tx.Create(&options[i]).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return Registration{}, err
	}

	return d.FindByID(ctx, registration.ID)
}

func (d *RegistrationDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Registration{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRegistrationNotFound
	}

	return nil
}
