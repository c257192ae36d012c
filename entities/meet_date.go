package entities

// MeetDate holds at most one row system-wide.
type MeetDate struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Date string `gorm:"size:10" json:"date"` // YYYY-MM-DD

	Timestamp
}
