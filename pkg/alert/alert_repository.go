package alert

import (
	"context"

	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

type (
	AlertRepository interface {
		CreateAlert(ctx context.Context, alert *entities.Alert) error
		GetAlertByID(ctx context.Context, id uint) (*entities.Alert, error)
		GetAlertsByUser(ctx context.Context, userID uint) ([]*entities.Alert, error)
		UpdateAlert(ctx context.Context, alert *entities.Alert) error
	}

	alertRepository struct {
		db *gorm.DB
	}
)

func NewAlertRepository(db *gorm.DB) AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) CreateAlert(ctx context.Context, alert *entities.Alert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetAlertByID(ctx context.Context, id uint) (*entities.Alert, error) {
	var alert entities.Alert
	if err := r.db.WithContext(ctx).First(&alert, id).Error; err != nil {
		return nil, err
	}
	return &alert, nil
}

func (r *alertRepository) GetAlertsByUser(ctx context.Context, userID uint) ([]*entities.Alert, error) {
	var alerts []*entities.Alert
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) UpdateAlert(ctx context.Context, alert *entities.Alert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}
