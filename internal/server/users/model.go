package users

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves this package.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
