package contract

import (
	"errors"
	"fmt"

	"github.com/huangsam/votetab/schema"
)

// DataLoadError indicates the survey source was unreadable, malformed or
// missing a required column. It aborts the pipeline before any table is
// produced and carries the failing source identifier.
type DataLoadError struct {
	Source string // Path or identifier of the failing dataset
	Reason string // Short human-readable reason
	Err    error  // Underlying error, if any
}

// Error implements the error interface.
func (e *DataLoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot load survey data from %q: %s: %v", e.Source, e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot load survey data from %q: %s", e.Source, e.Reason)
}

// Unwrap returns the underlying error.
func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// NewDataLoadError builds a DataLoadError for the given source.
func NewDataLoadError(source, reason string, err error) *DataLoadError {
	return &DataLoadError{Source: source, Reason: reason, Err: err}
}

// IsDataLoadError reports whether err is (or wraps) a DataLoadError.
func IsDataLoadError(err error) bool {
	var dle *DataLoadError
	return errors.As(err, &dle)
}

// UnorderedComparisonError indicates an ordering operation was applied to a
// categorical column that lacks a defined total order. Callers must assert a
// column's orderedness at the boundary before comparing its values.
type UnorderedComparisonError struct {
	Column schema.ColumnName
}

// Error implements the error interface.
func (e *UnorderedComparisonError) Error() string {
	return fmt.Sprintf("column %q is not ordered: ordering comparisons are undefined for it", e.Column)
}

// NewUnorderedComparisonError builds an UnorderedComparisonError for the column.
func NewUnorderedComparisonError(col schema.ColumnName) *UnorderedComparisonError {
	return &UnorderedComparisonError{Column: col}
}

// IsUnorderedComparisonError reports whether err is (or wraps) an UnorderedComparisonError.
func IsUnorderedComparisonError(err error) bool {
	var uce *UnorderedComparisonError
	return errors.As(err, &uce)
}
