package domain

import (
	"fmt"
	"strings"
)

// ImportRow is one account reference read from an import file. Line is the
// 1-based line in the source file; the header is line 1.
type ImportRow struct {
	Line    int
	Handle  string
	Options FollowOptions
}

type ImportFailure struct {
	Line   int
	Handle string
	Err    error
}

func (f ImportFailure) Error() string {
	handle := f.Handle
	if handle == "" {
		handle = "(empty)"
	}
	return fmt.Sprintf("line %d: %s: %v", f.Line, handle, f.Err)
}

func (f ImportFailure) Unwrap() error {
	return f.Err
}

// ImportReport tallies a batch import. Rows are either applied, skipped as
// already satisfied or duplicate, or recorded as failures.
type ImportReport struct {
	Rows       int
	Applied    int
	Skipped    int
	Duplicates int
	Removed    int
	Pending    []Handle
	Failures   []ImportFailure
}

func (r *ImportReport) Fail(row ImportRow, err error) {
	r.Failures = append(r.Failures, ImportFailure{Line: row.Line, Handle: strings.TrimSpace(row.Handle), Err: err})
}

// Err is nil when every row succeeded, and wraps ErrImportIncomplete
// otherwise.
func (r ImportReport) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %d of %d rows failed", ErrImportIncomplete, len(r.Failures), r.Rows)
}
