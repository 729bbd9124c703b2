package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"kpi", "value"})
	table.AddRow("Daily Active Users", "12.5K")
	table.AddRow("D7 Retention", "42.3%")
	assert.Equal(t, 2, table.Len())

	require.NoError(t, table.Render())
	out := buf.String()
	assert.Contains(t, out, "Daily Active Users")
	assert.Contains(t, out, "12.5K")
	assert.Contains(t, out, "42.3%")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(&bytes.Buffer{}))
}
