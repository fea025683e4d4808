package eventform

import (
	"fmt"
	"time"
)

// LoadLocation resolves the fixed display timezone the whole form uses.
// A failure here is a configuration fault: callers must treat it as fatal
// at startup rather than fold it into validation errors.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("event form timezone %q: %w", name, err)
	}
	return loc, nil
}
