package entities

const (
	EntryTypeAdd  = "add"
	EntryTypeUsed = "used"
)

type FridgeItem struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:256;index" json:"name"`
	Category string `gorm:"size:128" json:"category"`

	Entries []*FridgeEntry `gorm:"foreignKey:ItemID"`
	Timestamp
}

// FridgeEntry is an immutable ledger event; rows are only ever appended.
type FridgeEntry struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	ItemID   uint   `gorm:"index" json:"item_id"`
	Type     string `gorm:"size:16" json:"type"`
	Quantity int    `json:"quantity"`

	Item *FridgeItem `gorm:"foreignKey:ItemID"`
	Timestamp
}
