package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout indicates the data source did not answer within the load timeout.
	ErrTimeout = errors.New("case data load timed out")

	// ErrNotArray indicates the payload was valid JSON but not an array of cases.
	ErrNotArray = errors.New("case data is not a JSON array")
)

// Kind classifies why a load failed.
type Kind string

const (
	KindNetwork Kind = "network"
	KindStatus  Kind = "status"
	KindParse   Kind = "parse"
)

// LoadError is the only failure the loader reports.
type LoadError struct {
	Source     string
	Kind       Kind
	StatusCode int // set for KindStatus
	Err        error
}

func (e *LoadError) Error() string {
	switch e.Kind {
	case KindStatus:
		return fmt.Sprintf("loading cases from %s: HTTP error status %d", e.Source, e.StatusCode)
	case KindParse:
		return fmt.Sprintf("loading cases from %s: malformed payload: %v", e.Source, e.Err)
	default:
		return fmt.Sprintf("loading cases from %s: %v", e.Source, e.Err)
	}
}

func (e *LoadError) Unwrap() error { return e.Err }
