package postgres

import (
	"time"
)

/*
 * 'Game' defines a catalog entry. It references Developer and is
 * referenced by Review; deleting a game that still has reviews is
 * restricted.
 */
type Game struct {
	ID          uint      `gorm:"primaryKey"`
	Title       string    `gorm:"size:120;not null"`
	Genre       string    `gorm:"size:80;not null"`
	ReleaseDate time.Time `gorm:"not null"`
	DeveloperID uint      `gorm:"not null;index:idx_games_developer"`

	// Relationships
	Developer Developer `gorm:"foreignKey:DeveloperID"`
	Reviews   []Review  `gorm:"foreignKey:GameID;constraint:OnDelete:RESTRICT"`
}

// ReleaseDateString formats the release date the way the add/edit
// forms submit it.
func (g Game) ReleaseDateString() string {
	return g.ReleaseDate.Format("2006-01-02")
}
