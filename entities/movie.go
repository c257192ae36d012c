package entities

type Movie struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:256;index" json:"name"`

	Timestamp
}
