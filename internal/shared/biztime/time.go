// Package biztime centralizes time access. Persisted and serialized times are
// UTC; the configured business timezone only affects local rendering.
package biztime

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

// Init loads tz (DefaultTimezone when empty) and installs it as time.Local so
// log lines and CLI output read in operator time.
func Init(tz string) error {
	if tz == "" {
		tz = DefaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return fmt.Errorf("invalid timezone %q: %w", tz, err)
	}
	time.Local = loc
	return nil
}

func NowUTC() time.Time {
	return time.Now().UTC()
}
