package models

// User represents a user account. The username is the sole identity key.
//
// The password is stored exactly as submitted. Login never compares it
// (see the auth handler), so there is no hash to keep.
type User struct {
	Username string `json:"username" validate:"required,max=255"`
	Password string `json:"password" validate:"max=255"`
}
