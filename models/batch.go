package models

// BatchResult aggregates success and failure counts for one import run. It is
// transient: returned to the caller and discarded, never persisted.
type BatchResult struct {
	Success int64 `json:"success"`
	Failed  int64 `json:"failed"`
}
