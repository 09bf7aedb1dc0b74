package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type Payment struct {
	ID                uint         `gorm:"primaryKey"`
	RegistrationID    uint         `gorm:"not null;index"`
	Registration      Registration `gorm:"foreignKey:RegistrationID"`
	Method            string       `gorm:"not null"` // "card" or "manual_transfer"
	Type              string       `gorm:"not null"` // "deposit" or "full"
	Amount            int          `gorm:"not null"`
	Currency          string       `gorm:"not null"`
	ProviderSessionID string       `gorm:"index"`
	Reference         string
	Status            string `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type PaymentDAO struct {
	db *gorm.DB
}

func NewPaymentDAO(db *gorm.DB) *PaymentDAO {
	return &PaymentDAO{
		db: db,
	}
}

func (d *PaymentDAO) Insert(ctx context.Context, payment Payment) (Payment, error) {
	if result := d.db.WithContext(ctx).Create(&payment); result.Error != nil {
		return Payment{}, result.Error
	}

	return payment, nil
}

func (d *PaymentDAO) FindByID(ctx context.Context, id uint) (Payment, error) {
	var payment Payment
	if err := d.db.WithContext(ctx).First(&payment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}
		return Payment{}, err
	}

	return payment, nil
}

func (d *PaymentDAO) FindByProviderSessionID(ctx context.Context, sessionID string) (Payment, error) {
	var payment Payment
	err := d.db.WithContext(ctx).
		Where("provider_session_id = ?", sessionID).
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Payment{}, ErrPaymentNotFound
		}
		return Payment{}, err
	}

	return payment, nil
}

func (d *PaymentDAO) FindByRegistrationID(ctx context.Context, registrationID uint) ([]Payment, error) {
	var payments []Payment
	err := d.db.WithContext(ctx).
		Where("registration_id = ?", registrationID).
		Order("created_at asc").
		Find(&payments).Error
	if err != nil {
		return nil, err
	}

	return payments, nil
}

func (d *PaymentDAO) UpdateStatus(ctx context.Context, id uint, status string) error {
	result := d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}

	return nil
}
