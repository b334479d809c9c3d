package postgres

/*
 * 'Developer' defines a game studio. It is referenced by Game through
 * DeveloperID; deleting a developer that still has games is restricted.
 */
type Developer struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:120;not null"`
	Founded      int    `gorm:"not null"`
	Headquarters string `gorm:"size:120;not null"`

	// Relationship with the games published by this developer
	Games []Game `gorm:"foreignKey:DeveloperID;constraint:OnDelete:RESTRICT"`
}
