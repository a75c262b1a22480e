// Package time contains time related helpers
package time

import (
	"time"

	"unwrapped/internal/platform/logger"
)

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// Location resolves an IANA zone name. When the zone database is not
// present it warns and falls back to a fixed UTC-5 offset, losing DST
func Location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		logger.Named("time").Warn().
			Str("tz", name).Err(err).
			Msg("zone database unavailable, using fixed offset")
		return time.FixedZone("CST", -5*60*60)
	}
	return loc
}
