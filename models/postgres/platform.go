package postgres

/*
 * 'Platform' defines a gaming platform. No other entity references it.
 */
type Platform struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:80;not null"`
	Manufacturer string `gorm:"size:120;not null"`
	ReleaseYear  int    `gorm:"not null"`
}
