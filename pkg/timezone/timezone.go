package timezone

import (
	"fmt"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ZoneInfo describes a resolved location at a given instant
type ZoneInfo struct {
	DisplayText string
	Name        string
	Offset      int
}

// Resolve loads the IANA zone by name. Empty and "Local" select time.Local,
// "UTC" selects time.UTC. The embedded tz database makes the result
// independent of the host's zoneinfo files.
func Resolve(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	switch strings.ToLower(name) {
	case "", "local":
		return time.Local, nil
	case "utc":
		return time.UTC, nil
	}

	location, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Msg("failed to load timezone")
		return nil, errors.Wrapf(err, "failed to load timezone '%s'", name)
	}
	return location, nil
}

// Describe returns offset information for loc at the instant now
func Describe(loc *time.Location, now time.Time) ZoneInfo {
	_, offset := now.In(loc).Zone()

	// Convert offset from seconds to minutes
	offsetMinutes := offset / 60

	hours := offsetMinutes / 60
	minutes := offsetMinutes % 60
	sign := "+"
	if offsetMinutes < 0 {
		sign = "-"
		hours = -hours
		minutes = -minutes
	}

	return ZoneInfo{
		DisplayText: fmt.Sprintf("(UTC %s%02d:%02d) %s", sign, hours, minutes, loc.String()),
		Name:        loc.String(),
		Offset:      offsetMinutes,
	}
}
