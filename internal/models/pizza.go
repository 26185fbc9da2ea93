package models

// Pizza represents a single pizza on the menu. The ID is assigned by the
// store on insert and is immutable afterwards.
type Pizza struct {
	ID          int    `json:"id"`
	Name        string `json:"name" validate:"required,max=255"`
	Description string `json:"description" validate:"max=255"`
}
