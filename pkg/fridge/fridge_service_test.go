package fridge

import (
	"context"
	"fmt"
	"testing"

	"github.com/Naamee/distance-backend/domain"
	"github.com/Naamee/distance-backend/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (FridgeService, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entities.FridgeItem{}, &entities.FridgeEntry{}))

	return NewFridgeService(NewFridgeRepository(db)), db
}

func mustCreateItem(t *testing.T, s FridgeService, name, category string) *entities.FridgeItem {
	t.Helper()
	item, err := s.CreateItem(context.Background(), domain.CreateItemRequest{Name: name, Category: category})
	require.NoError(t, err)
	return item
}

func mustRecord(t *testing.T, s FridgeService, itemID uint, quantity int, entryType string) {
	t.Helper()
	err := s.RecordMovement(context.Background(), domain.RecordMovementRequest{
		ItemID:   itemID,
		Quantity: quantity,
		Type:     entryType,
	})
	require.NoError(t, err)
}

func TestCreateItemValidation(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	_, err := s.CreateItem(ctx, domain.CreateItemRequest{Name: "   ", Category: "Dairy"})
	assert.ErrorIs(t, err, domain.ErrBlankItemField)

	_, err = s.CreateItem(ctx, domain.CreateItemRequest{Name: "Milk", Category: ""})
	assert.ErrorIs(t, err, domain.ErrBlankItemField)

	item, err := s.CreateItem(ctx, domain.CreateItemRequest{Name: "  Milk ", Category: " Dairy "})
	require.NoError(t, err)
	assert.Equal(t, "Milk", item.Name)
	assert.Equal(t, "Dairy", item.Category)
}

func TestAggregationScenario(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	milk := mustCreateItem(t, s, "Milk", "Dairy")
	mustRecord(t, s, milk.ID, 4, entities.EntryTypeAdd)
	mustRecord(t, s, milk.ID, 2, entities.EntryTypeAdd)
	mustRecord(t, s, milk.ID, 3, entities.EntryTypeUsed)

	rows, pagination, err := s.ListInventory(ctx, domain.InventoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(3), rows[0].Quantity)
	assert.Equal(t, int64(1), pagination.TotalItems)

	err = s.RecordMovement(ctx, domain.RecordMovementRequest{
		ItemID:   milk.ID,
		Quantity: 5,
		Type:     entities.EntryTypeUsed,
	})
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)

	// The failed use must not have appended anything.
	rows, _, err = s.ListInventory(ctx, domain.InventoryFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), rows[0].Quantity)
}

func TestRecordMovementValidation(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	milk := mustCreateItem(t, s, "Milk", "Dairy")

	err := s.RecordMovement(ctx, domain.RecordMovementRequest{ItemID: milk.ID, Quantity: 1, Type: "remove"})
	assert.ErrorIs(t, err, domain.ErrInvalidEntryType)

	err = s.RecordMovement(ctx, domain.RecordMovementRequest{ItemID: milk.ID, Quantity: 0, Type: entities.EntryTypeAdd})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = s.RecordMovement(ctx, domain.RecordMovementRequest{ItemID: milk.ID, Quantity: -2, Type: entities.EntryTypeAdd})
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)

	err = s.RecordMovement(ctx, domain.RecordMovementRequest{ItemID: 999, Quantity: 1, Type: entities.EntryTypeAdd})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	// Using from an empty ledger fails even for quantity 1.
	err = s.RecordMovement(ctx, domain.RecordMovementRequest{ItemID: milk.ID, Quantity: 1, Type: entities.EntryTypeUsed})
	assert.ErrorIs(t, err, domain.ErrInsufficientQuantity)
}

func TestNetQuantityIsolatedPerItem(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	milk := mustCreateItem(t, s, "Milk", "Dairy")
	eggs := mustCreateItem(t, s, "Eggs", "Dairy")

	mustRecord(t, s, milk.ID, 10, entities.EntryTypeAdd)
	mustRecord(t, s, eggs.ID, 6, entities.EntryTypeAdd)
	mustRecord(t, s, milk.ID, 4, entities.EntryTypeUsed)

	rows, _, err := s.ListInventory(ctx, domain.InventoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	quantities := map[string]int64{}
	for _, row := range rows {
		quantities[row.Name] = row.Quantity
	}
	assert.Equal(t, int64(6), quantities["Milk"])
	assert.Equal(t, int64(6), quantities["Eggs"])
}

func TestItemWithoutEntriesAppearsAtZero(t *testing.T) {
	s, _ := newTestService(t)

	mustCreateItem(t, s, "Butter", "Dairy")

	rows, _, err := s.ListInventory(context.Background(), domain.InventoryFilter{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(0), rows[0].Quantity)
}

func TestInventoryFilters(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	milk := mustCreateItem(t, s, "Milk", "Dairy")
	cheese := mustCreateItem(t, s, "Cheese", "Dairy")
	apple := mustCreateItem(t, s, "Apple", "Fruit")

	mustRecord(t, s, milk.ID, 3, entities.EntryTypeAdd)
	mustRecord(t, s, apple.ID, 2, entities.EntryTypeAdd)
	mustRecord(t, s, cheese.ID, 1, entities.EntryTypeAdd)
	mustRecord(t, s, cheese.ID, 1, entities.EntryTypeUsed)

	// Case-insensitive substring on name.
	rows, _, err := s.ListInventory(ctx, domain.InventoryFilter{Name: "mIL"})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Milk", rows[0].Name)

	// Exact category match.
	rows, _, err = s.ListInventory(ctx, domain.InventoryFilter{Category: "Dairy"})
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	// Availability partitions are disjoint and together cover the set.
	available, _, err := s.ListInventory(ctx, domain.InventoryFilter{Status: domain.StatusAvailable})
	require.NoError(t, err)
	unavailable, _, err := s.ListInventory(ctx, domain.InventoryFilter{Status: domain.StatusUnavailable})
	require.NoError(t, err)
	assert.Len(t, available, 2)
	assert.Len(t, unavailable, 1)
	assert.Equal(t, "Cheese", unavailable[0].Name)

	seen := map[uint]bool{}
	for _, row := range append(available, unavailable...) {
		assert.False(t, seen[row.ID])
		seen[row.ID] = true
	}
	assert.Len(t, seen, 3)

	// Filters combine with AND.
	rows, _, err = s.ListInventory(ctx, domain.InventoryFilter{Category: "Dairy", Status: domain.StatusAvailable})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Milk", rows[0].Name)
}

func TestInventoryPagination(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		item := mustCreateItem(t, s, fmt.Sprintf("Item-%d", i), "Misc")
		mustRecord(t, s, item.ID, i+1, entities.EntryTypeAdd)
	}

	// Concatenating every page yields the full set, no duplicates.
	seen := map[uint]bool{}
	_, pagination, err := s.ListInventory(ctx, domain.InventoryFilter{Page: 1, PerPage: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), pagination.TotalItems)
	assert.Equal(t, int64(3), pagination.TotalPages)

	for page := 1; page <= int(pagination.TotalPages); page++ {
		rows, _, err := s.ListInventory(ctx, domain.InventoryFilter{Page: page, PerPage: 2})
		require.NoError(t, err)
		for _, row := range rows {
			assert.False(t, seen[row.ID])
			seen[row.ID] = true
		}
	}
	assert.Len(t, seen, 5)

	// PerPage 0 returns everything as a single page.
	rows, pagination, err := s.ListInventory(ctx, domain.InventoryFilter{PerPage: 0})
	require.NoError(t, err)
	assert.Len(t, rows, 5)
	assert.Equal(t, int64(1), pagination.TotalPages)
}

func TestRenameItem(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	milk := mustCreateItem(t, s, "Milk", "Dairy")
	mustCreateItem(t, s, "Cheese", "Dairy")

	_, err := s.RenameItem(ctx, 999, domain.RenameItemRequest{Name: "X", Category: "Y"})
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	_, err = s.RenameItem(ctx, milk.ID, domain.RenameItemRequest{Name: " ", Category: "Dairy"})
	assert.ErrorIs(t, err, domain.ErrBlankItemField)

	_, err = s.RenameItem(ctx, milk.ID, domain.RenameItemRequest{Name: "Cheese", Category: "Dairy"})
	assert.ErrorIs(t, err, domain.ErrItemExists)

	// Renaming an item onto its own pair is a no-op, not a conflict.
	_, err = s.RenameItem(ctx, milk.ID, domain.RenameItemRequest{Name: "Milk", Category: "Dairy"})
	require.NoError(t, err)

	renamed, err := s.RenameItem(ctx, milk.ID, domain.RenameItemRequest{Name: "Oat Milk", Category: "Dairy"})
	require.NoError(t, err)
	assert.Equal(t, "Oat Milk", renamed.Name)
}

func TestListEntries(t *testing.T) {
	s, _ := newTestService(t)
	ctx := context.Background()

	milk := mustCreateItem(t, s, "Milk", "Dairy")
	mustRecord(t, s, milk.ID, 4, entities.EntryTypeAdd)
	mustRecord(t, s, milk.ID, 2, entities.EntryTypeAdd)
	mustRecord(t, s, milk.ID, 3, entities.EntryTypeUsed)

	_, _, err := s.ListEntries(ctx, 999, 1, 10)
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	entries, pagination, err := s.ListEntries(ctx, milk.ID, 1, 10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, int64(3), pagination.TotalItems)

	// Most recent first.
	assert.Equal(t, entities.EntryTypeUsed, entries[0].Type)
	assert.Equal(t, 3, entries[0].Quantity)

	// Page slices cover the set without overlap.
	first, _, err := s.ListEntries(ctx, milk.ID, 1, 2)
	require.NoError(t, err)
	second, pagination, err := s.ListEntries(ctx, milk.ID, 2, 2)
	require.NoError(t, err)
	assert.Len(t, first, 2)
	assert.Len(t, second, 1)
	assert.Equal(t, int64(2), pagination.TotalPages)
}
