package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	loc, err := Resolve("")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Resolve("Local")
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)

	loc, err = Resolve("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC, loc)

	loc, err = Resolve("Europe/Berlin")
	require.NoError(t, err)
	assert.Equal(t, "Europe/Berlin", loc.String())

	_, err = Resolve("Mars/Olympus_Mons")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
}

func TestDescribe(t *testing.T) {
	winter := time.Date(2025, 12, 7, 12, 0, 0, 0, time.UTC)
	summer := time.Date(2025, 7, 7, 12, 0, 0, 0, time.UTC)

	berlin, err := Resolve("Europe/Berlin")
	require.NoError(t, err)

	info := Describe(berlin, winter)
	assert.Equal(t, "(UTC +01:00) Europe/Berlin", info.DisplayText)
	assert.Equal(t, 60, info.Offset)
	assert.Equal(t, 120, Describe(berlin, summer).Offset)

	stJohns := time.FixedZone("NST", -(3*60*60 + 30*60))
	assert.Equal(t, "(UTC -03:30) NST", Describe(stJohns, winter).DisplayText)
}
