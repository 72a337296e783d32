package cli

import (
	"fmt"
	"sort"
	"strings"
)

// fieldErrorsError flattens a form's field -> message map into one error the
// shell can print.
func fieldErrorsError(fields map[string]string) error {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fields[k])
	}
	return fmt.Errorf("invalid input: %s", strings.Join(parts, " "))
}
