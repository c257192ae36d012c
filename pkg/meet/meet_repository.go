package meet

import (
	"context"

	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

type (
	MeetRepository interface {
		Get(ctx context.Context) (*entities.MeetDate, error)
		Save(ctx context.Context, meetDate *entities.MeetDate) error
		Delete(ctx context.Context, meetDate *entities.MeetDate) error
	}

	meetRepository struct {
		db *gorm.DB
	}
)

func NewMeetRepository(db *gorm.DB) MeetRepository {
	return &meetRepository{db: db}
}

func (r *meetRepository) Get(ctx context.Context) (*entities.MeetDate, error) {
	var meetDate entities.MeetDate
	if err := r.db.WithContext(ctx).Order("id ASC").First(&meetDate).Error; err != nil {
		return nil, err
	}
	return &meetDate, nil
}

func (r *meetRepository) Save(ctx context.Context, meetDate *entities.MeetDate) error {
	return r.db.WithContext(ctx).Save(meetDate).Error
}

func (r *meetRepository) Delete(ctx context.Context, meetDate *entities.MeetDate) error {
	return r.db.WithContext(ctx).Delete(meetDate).Error
}
