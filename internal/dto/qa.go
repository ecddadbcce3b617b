package dto

// QARequest captures POST /qa/query payload.
type QARequest struct {
	Question string `json:"question" validate:"required,min=3,max=2000"`
}

// IngestRequest captures POST /manual/ingest payload. Text is split into
// paragraph chunks before indexing.
type IngestRequest struct {
	Section string `json:"section" validate:"required,max=128"`
	Text    string `json:"text" validate:"required"`
	Replace bool   `json:"replace"`
}

// IngestResponse reports how many chunks were queued for indexing.
type IngestResponse struct {
	Section string `json:"section"`
	Chunks  int    `json:"chunks"`
}
