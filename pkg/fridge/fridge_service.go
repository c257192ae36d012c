package fridge

import (
	"context"
	"errors"
	"strings"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

type (
	FridgeService interface {
		CreateItem(ctx context.Context, req domain.CreateItemRequest) (*entities.FridgeItem, error)
		RenameItem(ctx context.Context, id uint, req domain.RenameItemRequest) (*entities.FridgeItem, error)
		GetItem(ctx context.Context, id uint) (*entities.FridgeItem, error)

		RecordMovement(ctx context.Context, req domain.RecordMovementRequest) error
		ListEntries(ctx context.Context, itemID uint, page, perPage int) ([]domain.EntryResponse, domain.Pagination, error)

		ListInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryRow, domain.Pagination, error)
	}

	fridgeService struct {
		fridgeRepository FridgeRepository
	}
)

func NewFridgeService(fridgeRepository FridgeRepository) FridgeService {
	return &fridgeService{fridgeRepository: fridgeRepository}
}

func (s *fridgeService) CreateItem(ctx context.Context, req domain.CreateItemRequest) (*entities.FridgeItem, error) {
	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return nil, domain.ErrBlankItemField
	}

	item := &entities.FridgeItem{Name: name, Category: category}
	if err := s.fridgeRepository.CreateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *fridgeService) RenameItem(ctx context.Context, id uint, req domain.RenameItemRequest) (*entities.FridgeItem, error) {
	item, err := s.fridgeRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	category := strings.TrimSpace(req.Category)
	if name == "" || category == "" {
		return nil, domain.ErrBlankItemField
	}

	if other, err := s.fridgeRepository.FindItemByNameCategory(ctx, name, category); err == nil {
		if other.ID != item.ID {
			return nil, domain.ErrItemExists
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	item.Name = name
	item.Category = category
	if err := s.fridgeRepository.UpdateItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *fridgeService) GetItem(ctx context.Context, id uint) (*entities.FridgeItem, error) {
	item, err := s.fridgeRepository.GetItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrItemNotFound
		}
		return nil, err
	}
	return item, nil
}

func (s *fridgeService) RecordMovement(ctx context.Context, req domain.RecordMovementRequest) error {
	if req.Type != entities.EntryTypeAdd && req.Type != entities.EntryTypeUsed {
		return domain.ErrInvalidEntryType
	}
	if req.Quantity <= 0 {
		return domain.ErrInvalidQuantity
	}

	if _, err := s.fridgeRepository.GetItemByID(ctx, req.ItemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrItemNotFound
		}
		return err
	}

	entry := &entities.FridgeEntry{
		ItemID:   req.ItemID,
		Type:     req.Type,
		Quantity: req.Quantity,
	}

	if req.Type == entities.EntryTypeAdd {
		return s.fridgeRepository.CreateEntry(ctx, entry)
	}

	ok, err := s.fridgeRepository.AppendIfAvailable(ctx, entry)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInsufficientQuantity
	}
	return nil
}

func (s *fridgeService) ListEntries(ctx context.Context, itemID uint, page, perPage int) ([]domain.EntryResponse, domain.Pagination, error) {
	if _, err := s.fridgeRepository.GetItemByID(ctx, itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Pagination{}, domain.ErrItemNotFound
		}
		return nil, domain.Pagination{}, err
	}

	if page < 1 {
		page = 1
	}
	entries, count, err := s.fridgeRepository.ListEntries(ctx, itemID, page, perPage)
	if err != nil {
		return nil, domain.Pagination{}, err
	}

	response := make([]domain.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		response = append(response, domain.EntryResponse{
			ID:       entry.ID,
			Type:     entry.Type,
			Quantity: entry.Quantity,
			Date:     entry.CreatedAt,
		})
	}
	return response, domain.NewPagination(page, perPage, count), nil
}

func (s *fridgeService) ListInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryRow, domain.Pagination, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	rows, count, err := s.fridgeRepository.ListInventory(ctx, filter)
	if err != nil {
		return nil, domain.Pagination{}, err
	}
	return rows, domain.NewPagination(filter.Page, filter.PerPage, count), nil
}
