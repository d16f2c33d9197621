package errors

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// BuildError represents a problem found while building the example dataset
type BuildError struct {
	File     string
	Line     int
	Message  string
	Severity ErrorSeverity
}

// ErrorSeverity represents the severity of an error
type ErrorSeverity int

const (
	ErrorSeverityInfo ErrorSeverity = iota
	ErrorSeverityWarning
	ErrorSeverityError
	ErrorSeverityFatal
)

// String returns the string representation of the severity
func (s ErrorSeverity) String() string {
	switch s {
	case ErrorSeverityInfo:
		return "info"
	case ErrorSeverityWarning:
		return "warning"
	case ErrorSeverityError:
		return "error"
	case ErrorSeverityFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Error implements the error interface
func (be *BuildError) Error() string {
	if be.Line > 0 {
		return fmt.Sprintf("%s:%d: %s: %s", be.File, be.Line, be.Severity, be.Message)
	}

	return fmt.Sprintf("%s: %s: %s", be.File, be.Severity, be.Message)
}

// ErrorCollector collects build diagnostics from concurrent workers
type ErrorCollector struct {
	buildErrors []BuildError
	mutex       sync.RWMutex
}

// NewErrorCollector creates a new error collector
func NewErrorCollector() *ErrorCollector {
	return &ErrorCollector{
		buildErrors: make([]BuildError, 0),
	}
}

// Add adds a build error to the collector
func (ec *ErrorCollector) Add(err BuildError) {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()
	ec.buildErrors = append(ec.buildErrors, err)
}

// GetErrors returns all collected build errors ordered by file
func (ec *ErrorCollector) GetErrors() []BuildError {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	result := make([]BuildError, len(ec.buildErrors))
	copy(result, ec.buildErrors)
	sort.SliceStable(result, func(i, j int) bool { return result[i].File < result[j].File })

	return result
}

// HasErrors returns true if anything at error severity or above was collected
func (ec *ErrorCollector) HasErrors() bool {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()
	for _, err := range ec.buildErrors {
		if err.Severity >= ErrorSeverityError {
			return true
		}
	}

	return false
}

// Err folds the collected errors into one, or returns nil when there are none
// at error severity.
func (ec *ErrorCollector) Err() error {
	if !ec.HasErrors() {
		return nil
	}

	var msgs []string
	for _, err := range ec.GetErrors() {
		if err.Severity >= ErrorSeverityError {
			msgs = append(msgs, err.Error())
		}
	}

	return &ShowcaseError{
		Type:    ErrorTypeBuild,
		Code:    ErrCodeBuildFailed,
		Message: strings.Join(msgs, "; "),
	}
}
