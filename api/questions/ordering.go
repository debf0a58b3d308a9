package questions

import (
	"fmt"

	"github.com/waterlily/backend/api/custom_errors"
)

// nextOrderIndex returns the order value for a question appended after the
// current maximum. Surveys with no questions have maxOrder 0, so the first
// question lands on 1.
func nextOrderIndex(maxOrder int32) int32 {
	return maxOrder + 1
}

// validateReorderSet checks that the submitted id list is exactly the
// survey's current question-id set. A reorder that omits questions or lists
// one twice would leave duplicate or dangling order values behind, so it is
// rejected before any row is touched.
func validateReorderSet(current, submitted []int64) error {
	want := make(map[int64]bool, len(current))
	for _, id := range current {
		want[id] = true
	}

	seen := make(map[int64]bool, len(submitted))
	for _, id := range submitted {
		if !want[id] {
			return fmt.Errorf("question %d does not belong to this survey: %w", id, custom_errors.ErrNotFound)
		}
		if seen[id] {
			return fmt.Errorf("question %d listed more than once: %w", id, custom_errors.ErrValidation)
		}
		seen[id] = true
	}

	if len(seen) != len(current) {
		return fmt.Errorf("reorder must list every question in the survey: %w", custom_errors.ErrValidation)
	}

	return nil
}
