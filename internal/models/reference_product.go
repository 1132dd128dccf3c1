package models

// ReferenceProduct is a catalog entry returned by the product index. Its
// Content holds the indexed text, which includes the product price.
type ReferenceProduct struct {
	Content string  `json:"content"`
	Score   float32 `json:"score"`
}
