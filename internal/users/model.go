package users

import "time"

// User is a registered account. HashedPassword never leaves the process
// through JSON.
type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"createdAt"`
}
