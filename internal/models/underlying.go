package models

// Underlying is static reference data: the base instrument options are
// written against (an index or stock).
type Underlying struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
