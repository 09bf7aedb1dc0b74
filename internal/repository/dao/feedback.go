package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrFeedbackExists = errors.New("feedback already submitted for this camp")

type Feedback struct {
	ID                  uint `gorm:"primaryKey"`
	CampID              uint `gorm:"not null;uniqueIndex:idx_feedback_camp_player"`
	PlayerID            uint `gorm:"not null;uniqueIndex:idx_feedback_camp_player"`
	CoachingRating      int  `gorm:"not null"`
	FacilitiesRating    int  `gorm:"not null"`
	AccommodationRating int  `gorm:"not null"`
	FoodRating          int  `gorm:"not null"`
	OverallRating       int  `gorm:"not null"`
	Comment             string
	PhotoURLs           []string `gorm:"serializer:json"`
	ConsentGiven        bool     `gorm:"not null"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

type FeedbackDAO struct {
	db *gorm.DB
}

func NewFeedbackDAO(db *gorm.DB) *FeedbackDAO {
	return &FeedbackDAO{
		db: db,
	}
}

func (d *FeedbackDAO) Insert(ctx context.Context, feedback Feedback) (Feedback, error) {
	result := d.db.WithContext(ctx).Create(&feedback)
	if result.Error != nil {
		var err *pgconn.PgError
		if errors.As(result.Error, &err) && err.Code == pgerrcode.UniqueViolation {
			return Feedback{}, ErrFeedbackExists
		}

		return Feedback{}, result.Error
	}

	return feedback, nil
}

func (d *FeedbackDAO) FindByCampID(ctx context.Context, campID uint) ([]Feedback, error) {
	var feedbacks []Feedback
	err := d.db.WithContext(ctx).
		Where("camp_id = ?", campID).
		Order("created_at desc").
		Find(&feedbacks).Error
	if err != nil {
		return nil, err
	}

	return feedbacks, nil
}
