package meet

import (
	"context"
	"errors"
	"time"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type (
	MeetService interface {
		GetMeetDate(ctx context.Context) (domain.MeetDateResponse, error)
		SetMeetDate(ctx context.Context, req domain.SetMeetDateRequest) error
		ClearMeetDate(ctx context.Context) error
	}

	meetService struct {
		meetRepository MeetRepository
		// now is swappable so remaining-day math can be pinned in tests.
		now func() time.Time
	}
)

func NewMeetService(meetRepository MeetRepository) MeetService {
	return &meetService{meetRepository: meetRepository, now: time.Now}
}

func (s *meetService) GetMeetDate(ctx context.Context) (domain.MeetDateResponse, error) {
	meetDate, err := s.meetRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MeetDateResponse{MeetDate: nil, RemainingDays: 0}, nil
		}
		return domain.MeetDateResponse{}, err
	}

	target, err := time.Parse(dateLayout, meetDate.Date)
	if err != nil {
		return domain.MeetDateResponse{}, domain.ErrInvalidMeetDate
	}

	// Date-only comparison: both sides truncated to midnight, signed result.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	remaining := int(target.Sub(today).Hours() / 24)

	date := meetDate.Date
	return domain.MeetDateResponse{MeetDate: &date, RemainingDays: remaining}, nil
}

func (s *meetService) SetMeetDate(ctx context.Context, req domain.SetMeetDateRequest) error {
	if _, err := time.Parse(dateLayout, req.Date); err != nil {
		return domain.ErrInvalidMeetDate
	}

	meetDate, err := s.meetRepository.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		meetDate = &entities.MeetDate{}
	}

	meetDate.Date = req.Date
	return s.meetRepository.Save(ctx, meetDate)
}

func (s *meetService) ClearMeetDate(ctx context.Context) error {
	meetDate, err := s.meetRepository.Get(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrMeetDateNotSet
		}
		return err
	}
	return s.meetRepository.Delete(ctx, meetDate)
}
