package postgres

/*
 * 'User' contains the blueprint definition of an application user.
 * Only used for session authentication, it references nothing else.
 */
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"size:80;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
}
