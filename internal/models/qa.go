package models

import "time"

// ManualChunk is one indexed passage of the engineering manual.
type ManualChunk struct {
	ID        int64     `db:"id" json:"id"`
	Section   string    `db:"section" json:"section"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// QASource cites a manual passage that informed an answer.
type QASource struct {
	Section    string  `json:"section"`
	Snippet    string  `json:"snippet"`
	Similarity float64 `json:"similarity"`
}

// QAResult is the answer to a manual question with its citations.
type QAResult struct {
	Question string     `json:"question"`
	Answer   string     `json:"answer"`
	Sources  []QASource `json:"sources"`
	Cached   bool       `json:"cached"`
}
