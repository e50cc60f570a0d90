// Package models holds the plain data types passed between the snippet
// repository, service and CLI layers.
package models

// Snippet is one row of the snippets table.
type Snippet struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
	Hidden  bool   `json:"hidden,omitempty"`
}

// PutResult is what a store operation reports back: the pair that was
// written and whether the keyword was new.
type PutResult struct {
	Keyword string `json:"keyword"`
	Message string `json:"message"`
	Created bool   `json:"created"`
}
