package models

// Lead is a card on the kanban pipeline board.
type Lead struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Phone string  `json:"phone,omitempty"`
	Value float64 `json:"value,omitempty"`
	Note  string  `json:"note,omitempty"`
}

// Column is one stage bucket holding an ordered list of leads.
type Column struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Leads []Lead `json:"leads"`
}

// Board is the whole pipeline: columns are unordered stage buckets,
// lead order inside a column is significant.
type Board struct {
	ID      string   `json:"id"`
	Columns []Column `json:"columns"`
}
