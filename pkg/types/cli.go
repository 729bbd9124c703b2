package types

import (
	"time"

	"github.com/araddon/dateparse"
)

type CLI struct {
	ConfigPath string
	LogPath    string
	LogLevel   string
	Timezone   string
	Now        string
	// Decimals is negative when the flag was not given
	Decimals int
}

// ParseTime parses a user supplied instant in loc
func ParseTime(value string, loc *time.Location) (time.Time, error) {
	return dateparse.ParseIn(value, loc)
}
