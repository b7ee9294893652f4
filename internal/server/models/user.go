package models

import "time"

// User is a registered credential. PasswordDigest is the encoded salt+hash;
// the plaintext password is never stored.
type User struct {
	ID             string
	UserName       string
	PasswordDigest string
	CreatedAt      time.Time
}
