package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/Slach/dashboard-kit/pkg/types"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const mainPackage = "github.com/Slach/dashboard-kit/"

// prettyWriter converts zerolog JSON events into single text lines
type prettyWriter struct {
	Out io.Writer
}

func (w *prettyWriter) Write(p []byte) (int, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(bytes.TrimSpace(p), &m); err != nil {
		return w.Out.Write(p)
	}

	var ts, level, message, caller string
	_ = json.Unmarshal(m["time"], &ts)
	_ = json.Unmarshal(m["level"], &level)
	_ = json.Unmarshal(m["message"], &message)
	_ = json.Unmarshal(m["caller"], &caller)

	keys := make([]string, 0, len(m))
	for k := range m {
		if k == "time" || k == "level" || k == "message" || k == "caller" {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var out strings.Builder
	if ts != "" {
		out.WriteString(ts + " ")
	}
	if level != "" {
		out.WriteString(strings.ToUpper(level) + " ")
	}
	if caller != "" {
		out.WriteString(caller + " > ")
	}
	out.WriteString(message)

	for _, k := range keys {
		var s string
		if err := json.Unmarshal(m[k], &s); err == nil {
			out.WriteString(" " + k + "=" + s)
			continue
		}
		var iv interface{}
		if err := json.Unmarshal(m[k], &iv); err == nil {
			out.WriteString(" " + k + "=" + fmt.Sprint(iv))
			continue
		}
		out.WriteString(" " + k + "=" + string(m[k]))
	}
	out.WriteString("\n")

	if _, err := w.Out.Write([]byte(out.String())); err != nil {
		return 0, err
	}
	return len(p), nil
}

func InitConsoleStdErrLog() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.ErrorStackMarshaler = func(err error) interface{} {
		if stackErr, ok := err.(interface{ StackTrace() errors.StackTrace }); ok {
			if st := stackErr.StackTrace(); len(st) > 0 {
				return strings.TrimPrefix(fmt.Sprintf("%+v", st[0]), mainPackage)
			}
		}
		return nil
	}
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return strings.TrimPrefix(file, mainPackage) + ":" + strconv.Itoa(line)
	}

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().
		Timestamp().
		Caller().
		Logger().
		Level(zerolog.WarnLevel)
}

// SetLevel changes the global logger level, empty keeps the current one
func SetLevel(level string) error {
	if level == "" {
		return nil
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return errors.Wrapf(err, "invalid log level %q", level)
	}
	log.Logger = log.Logger.Level(lvl)
	return nil
}

// InitLogFile redirects logging into the file named by --log
func InitLogFile(cliInstance *types.CLI, version string) error {
	if cliInstance == nil || cliInstance.LogPath == "" {
		return nil
	}
	logPath := cliInstance.LogPath

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return errors.Wrap(err, "failed to create log directory")
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrap(err, "failed to open log file")
	}

	log.Logger = zerolog.New(zerolog.SyncWriter(&prettyWriter{Out: logFile})).
		With().
		Timestamp().
		Caller().
		Str("version", version).
		Logger().
		Level(log.Logger.GetLevel())
	return nil
}
