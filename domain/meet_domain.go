package domain

import "errors"

var (
	MessageSuccessSetMeetDate   = "meet date saved successfully"
	MessageSuccessClearMeetDate = "meet date removed successfully"

	ErrMeetDateNotSet  = errors.New("no meet date has been set")
	ErrInvalidMeetDate = errors.New("date must be provided as YYYY-MM-DD")
)

type (
	SetMeetDateRequest struct {
		Date string `json:"date" validate:"required"`
	}

	MeetDateResponse struct {
		MeetDate      *string `json:"meet_date"`
		RemainingDays int     `json:"remaining_days"`
	}
)
