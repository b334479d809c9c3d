package postgres

/*
 * 'Review' defines a reader review for a Game.
 */
type Review struct {
	ID           uint   `gorm:"primaryKey"`
	GameID       uint   `gorm:"not null;index:idx_reviews_game"`
	Rating       int    `gorm:"not null"`
	ReviewText   string `gorm:"type:text"`
	ReviewerName string `gorm:"size:120;not null"`

	// Relationship with the reviewed game
	Game Game `gorm:"foreignKey:GameID"`
}
