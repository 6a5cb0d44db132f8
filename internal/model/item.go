package model

// Item is one entry on the shopping list.
// IsEditing is UI state and never leaves the process.
type Item struct {
	ID        string `json:"id,omitempty" yaml:"id,omitempty"`
	Name      string `json:"name" yaml:"name"`
	Checked   bool   `json:"checked" yaml:"checked"`
	IsEditing bool   `json:"-" yaml:"-"`
}
