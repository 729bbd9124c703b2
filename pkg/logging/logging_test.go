package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Slach/dashboard-kit/pkg/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrettyWriter(t *testing.T) {
	var buf bytes.Buffer
	w := &prettyWriter{Out: &buf}

	in := []byte(`{"level":"info","time":"1700000000000","message":"formatted","value":"12.5K","decimals":1}` + "\n")
	n, err := w.Write(in)
	require.NoError(t, err)
	assert.Equal(t, len(in), n)
	assert.Equal(t, "1700000000000 INFO formatted decimals=1 value=12.5K\n", buf.String())
}

func TestPrettyWriterPassesThroughNonJSON(t *testing.T) {
	var buf bytes.Buffer
	w := &prettyWriter{Out: &buf}
	_, err := w.Write([]byte("plain line\n"))
	require.NoError(t, err)
	assert.Equal(t, "plain line\n", buf.String())
}

func TestSetLevel(t *testing.T) {
	InitConsoleStdErrLog()
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())

	require.NoError(t, SetLevel("DEBUG"))
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())

	require.NoError(t, SetLevel(""))
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())

	assert.Error(t, SetLevel("loud"))
}

func TestInitLogFile(t *testing.T) {
	InitConsoleStdErrLog()
	require.NoError(t, InitLogFile(nil, "test"))

	path := filepath.Join(t.TempDir(), "nested", "dashboard-kit.log")
	require.NoError(t, InitLogFile(&types.CLI{LogPath: path}, "test"))
	log.Warn().Str("dashboard", "overview").Msg("unknown metric")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARN")
	assert.Contains(t, string(data), "unknown metric")
	assert.Contains(t, string(data), "dashboard=overview")
	assert.Contains(t, string(data), "version=test")

	InitConsoleStdErrLog()
}
