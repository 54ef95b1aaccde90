package options

import (
	"fmt"
	"time"
)

const layoutISO = "2006-01-02"

// ValidateDate checks a user-entered date flag. Empty is fine, most
// records have no deadline yet.
func ValidateDate(flag, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(layoutISO, value); err != nil {
		return fmt.Errorf("--%s must look like 2006-01-02, got %q", flag, value)
	}
	return nil
}
