package dataset

import (
	"errors"
	"fmt"
	"strings"

	"campusboard/pkg/contracts/domain"
)

// ErrNotFound reports a missing workbook. Callers decide whether to fall
// back to synthesis or abort.
var ErrNotFound = errors.New("workbook not found")

// ErrWriteBlocked reports a cache write refused by the safety configuration
// (read-only mode, creation disabled, or overwrite disabled). It is
// informational: generation still succeeded.
var ErrWriteBlocked = errors.New("workbook write blocked by configuration")

// SchemaError reports every required column missing from a loaded workbook.
type SchemaError struct {
	Domain  domain.Domain
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("workbook for %s is missing required columns: %s",
		e.Domain, strings.Join(e.Missing, ", "))
}

// validateColumns checks the header for every required column and reports
// all missing names at once. Matching is exact and case-sensitive.
func validateColumns(d domain.Domain, t Table, required []string) error {
	var missing []string
	for _, col := range required {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{Domain: d, Missing: missing}
	}
	return nil
}
