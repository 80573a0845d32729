package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds the raw credential exactly as received at registration;
// there is no hashing step anywhere in the system (known gap, kept on purpose).
type User struct {
	ID        int64
	FullName  string
	Email     string
	Password  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
