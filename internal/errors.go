package internal

import "fmt"

// StorageError represents errors accessing the session database
type StorageError struct {
	Op  string // "open", "query", "insert", "scan"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ExportError represents errors producing a transcript export
type ExportError struct {
	Format string
	Err    error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export error [%s]: %v", e.Format, e.Err)
}

func (e *ExportError) Unwrap() error {
	return e.Err
}

// LLMError represents a failed round trip to the advisor model
type LLMError struct {
	Status int    // HTTP status from the upstream API, 0 if unreachable
	Detail string // short upstream detail, not shown to end users
	Err    error
}

func (e *LLMError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("llm error: upstream status %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("llm error: %v", e.Err)
}

func (e *LLMError) Unwrap() error {
	return e.Err
}
