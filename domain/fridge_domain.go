package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessCreateItem     = "fridge item added successfully"
	MessageSuccessRenameItem     = "fridge item updated successfully"
	MessageSuccessRecordMovement = "fridge entry added successfully"

	ErrItemNotFound         = errors.New("fridge item not found")
	ErrItemExists           = errors.New("an item with this name and category already exists")
	ErrBlankItemField       = errors.New("name and category must not be blank")
	ErrInvalidEntryType     = errors.New("entry type must be add or used")
	ErrInvalidQuantity      = errors.New("quantity must be a positive integer")
	ErrInsufficientQuantity = errors.New("requested quantity exceeds available stock")
)

const (
	StatusAvailable   = "Available"
	StatusUnavailable = "Unavailable"

	DefaultInventoryPerPage = 8
	DefaultEntriesPerPage   = 10
)

type (
	CreateItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required"`
	}

	RenameItemRequest struct {
		Name     string `json:"name" validate:"required"`
		Category string `json:"category" validate:"required"`
	}

	RecordMovementRequest struct {
		ItemID   uint   `json:"id" validate:"required"`
		Quantity int    `json:"quantity" validate:"required"`
		Type     string `json:"type" validate:"required"`
	}

	// InventoryFilter is the aggregator's query contract: all filters are
	// optional and AND-combined; PerPage <= 0 disables slicing.
	InventoryFilter struct {
		Name     string
		Category string
		Status   string
		Page     int
		PerPage  int
	}

	// InventoryRow is one aggregated line of the inventory view. Quantity is
	// derived on every read, never stored.
	InventoryRow struct {
		ID       uint   `json:"id"`
		Name     string `json:"name"`
		Category string `json:"category"`
		Quantity int64  `json:"quantity"`
	}

	EntryResponse struct {
		ID       uint      `json:"id"`
		Type     string    `json:"type"`
		Quantity int       `json:"quantity"`
		Date     time.Time `json:"date"`
	}
)
