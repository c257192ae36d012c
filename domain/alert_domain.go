package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateAlert = "alert created successfully"
	MessageSuccessReadAlert   = "alert marked as read"

	ErrAlertNotFound = errors.New("alert not found")
	ErrBlankTask     = errors.New("task must not be blank")
)

const (
	AlertStatusActive = "active"
	AlertStatusRead   = "read"
)

type (
	CreateAlertRequest struct {
		Task       string `json:"task" validate:"required"`
		Occurrence string `json:"occurrence"`
	}

	AlertResponse struct {
		ID         uint       `json:"id"`
		Task       string     `json:"task"`
		Occurrence string     `json:"occurrence"`
		Status     string     `json:"status"`
		CreatedAt  time.Time  `json:"created_at"`
		LastRead   *time.Time `json:"last_read,omitempty"`
	}
)
