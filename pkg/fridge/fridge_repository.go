package fridge

import (
	"context"
	"strings"
	"time"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"gorm.io/gorm"
)

// netQuantityExpr sums a ledger slice into a signed stock level: adds count
// positive, uses negative. Shared by the aggregator, the single-item sum and
// the guarded append so every reader agrees on the same definition.
const netQuantityExpr = "COALESCE(SUM(CASE type WHEN 'add' THEN quantity WHEN 'used' THEN -quantity ELSE 0 END), 0)"

const joinedNetQuantityExpr = "COALESCE(SUM(CASE fridge_entries.type WHEN 'add' THEN fridge_entries.quantity WHEN 'used' THEN -fridge_entries.quantity ELSE 0 END), 0)"

type (
	FridgeRepository interface {
		CreateItem(ctx context.Context, item *entities.FridgeItem) error
		GetItemByID(ctx context.Context, id uint) (*entities.FridgeItem, error)
		UpdateItem(ctx context.Context, item *entities.FridgeItem) error
		FindItemByNameCategory(ctx context.Context, name, category string) (*entities.FridgeItem, error)

		CreateEntry(ctx context.Context, entry *entities.FridgeEntry) error
		// AppendIfAvailable appends a "used" entry only when the item's net
		// quantity still covers it; reports whether the row was written.
		AppendIfAvailable(ctx context.Context, entry *entities.FridgeEntry) (bool, error)
		ListEntries(ctx context.Context, itemID uint, page, perPage int) ([]*entities.FridgeEntry, int64, error)
		NetQuantity(ctx context.Context, itemID uint) (int64, error)

		ListInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryRow, int64, error)
	}

	fridgeRepository struct {
		db *gorm.DB
	}
)

func NewFridgeRepository(db *gorm.DB) FridgeRepository {
	return &fridgeRepository{db: db}
}

func (r *fridgeRepository) CreateItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *fridgeRepository) GetItemByID(ctx context.Context, id uint) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) UpdateItem(ctx context.Context, item *entities.FridgeItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *fridgeRepository) FindItemByNameCategory(ctx context.Context, name, category string) (*entities.FridgeItem, error) {
	var item entities.FridgeItem
	if err := r.db.WithContext(ctx).
		Where("name = ? AND category = ?", name, category).
		First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *fridgeRepository) CreateEntry(ctx context.Context, entry *entities.FridgeEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *fridgeRepository) AppendIfAvailable(ctx context.Context, entry *entities.FridgeEntry) (bool, error) {
	// Check and append in one statement so two concurrent uses cannot both
	// pass a stale availability check.
	now := time.Now()
	res := r.db.WithContext(ctx).Exec(
		"INSERT INTO fridge_entries (item_id, type, quantity, created_at, updated_at) "+
			"SELECT ?, ?, ?, ?, ? "+
			"WHERE (SELECT "+netQuantityExpr+" FROM fridge_entries WHERE item_id = ?) >= ?",
		entry.ItemID, entry.Type, entry.Quantity, now, now,
		entry.ItemID, entry.Quantity,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *fridgeRepository) ListEntries(ctx context.Context, itemID uint, page, perPage int) ([]*entities.FridgeEntry, int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&entities.FridgeEntry{}).Where("item_id = ?", itemID)
	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query = query.Order("created_at DESC, id DESC")
	if perPage > 0 {
		query = query.Offset((page - 1) * perPage).Limit(perPage)
	}

	var entries []*entities.FridgeEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}

func (r *fridgeRepository) NetQuantity(ctx context.Context, itemID uint) (int64, error) {
	var net int64
	err := r.db.WithContext(ctx).Model(&entities.FridgeEntry{}).
		Where("item_id = ?", itemID).
		Select(netQuantityExpr).
		Scan(&net).Error
	return net, err
}

// inventoryQuery builds the grouped aggregation shared by the count and the
// page fetch. The LEFT JOIN keeps items with no ledger entries at quantity 0.
func (r *fridgeRepository) inventoryQuery(ctx context.Context, filter domain.InventoryFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table("fridge_items").
		Select("fridge_items.id AS id, fridge_items.name AS name, fridge_items.category AS category, " + joinedNetQuantityExpr + " AS quantity").
		Joins("LEFT JOIN fridge_entries ON fridge_entries.item_id = fridge_items.id").
		Group("fridge_items.id, fridge_items.name, fridge_items.category")

	if filter.Name != "" {
		query = query.Where("LOWER(fridge_items.name) LIKE ?", "%"+strings.ToLower(filter.Name)+"%")
	}
	if filter.Category != "" {
		query = query.Where("fridge_items.category = ?", filter.Category)
	}
	switch filter.Status {
	case domain.StatusAvailable:
		query = query.Having(joinedNetQuantityExpr + " > 0")
	case domain.StatusUnavailable:
		query = query.Having(joinedNetQuantityExpr + " <= 0")
	}
	return query
}

func (r *fridgeRepository) ListInventory(ctx context.Context, filter domain.InventoryFilter) ([]domain.InventoryRow, int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table("(?) AS inventory", r.inventoryQuery(ctx, filter)).
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	query := r.inventoryQuery(ctx, filter).
		Order("fridge_items.name ASC, fridge_items.category ASC, fridge_items.id ASC")
	if filter.PerPage > 0 {
		query = query.Offset((filter.Page - 1) * filter.PerPage).Limit(filter.PerPage)
	}

	rows := make([]domain.InventoryRow, 0)
	if err := query.Scan(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, count, nil
}
