package alert

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

type (
	AlertService interface {
		CreateAlert(ctx context.Context, req domain.CreateAlertRequest, userID uint) (domain.AlertResponse, error)
		ListAlerts(ctx context.Context, userID uint) ([]domain.AlertResponse, error)
		MarkAsRead(ctx context.Context, id uint, userID uint) error
	}

	alertService struct {
		alertRepository AlertRepository
	}
)

func NewAlertService(alertRepository AlertRepository) AlertService {
	return &alertService{alertRepository: alertRepository}
}

func (s *alertService) CreateAlert(ctx context.Context, req domain.CreateAlertRequest, userID uint) (domain.AlertResponse, error) {
	task := strings.TrimSpace(req.Task)
	if task == "" {
		return domain.AlertResponse{}, domain.ErrBlankTask
	}

	alert := &entities.Alert{
		Task:       task,
		Occurrence: strings.TrimSpace(req.Occurrence),
		Status:     domain.AlertStatusActive,
		UserID:     userID,
	}
	if err := s.alertRepository.CreateAlert(ctx, alert); err != nil {
		return domain.AlertResponse{}, err
	}
	return toAlertResponse(alert), nil
}

func (s *alertService) ListAlerts(ctx context.Context, userID uint) ([]domain.AlertResponse, error) {
	alerts, err := s.alertRepository.GetAlertsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.AlertResponse, 0, len(alerts))
	for _, alert := range alerts {
		response = append(response, toAlertResponse(alert))
	}
	return response, nil
}

func (s *alertService) MarkAsRead(ctx context.Context, id uint, userID uint) error {
	alert, err := s.alertRepository.GetAlertByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrAlertNotFound
		}
		return err
	}
	// Alerts belong to exactly one user; a foreign alert reads as absent.
	if alert.UserID != userID {
		return domain.ErrAlertNotFound
	}

	now := time.Now()
	alert.LastRead = &now
	alert.Status = domain.AlertStatusRead
	return s.alertRepository.UpdateAlert(ctx, alert)
}

func toAlertResponse(alert *entities.Alert) domain.AlertResponse {
	return domain.AlertResponse{
		ID:         alert.ID,
		Task:       alert.Task,
		Occurrence: alert.Occurrence,
		Status:     alert.Status,
		CreatedAt:  alert.CreatedAt,
		LastRead:   alert.LastRead,
	}
}
