package models

// Comment is a standard review comment identified by its BB number.
type Comment struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
