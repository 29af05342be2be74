package reporter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tag-range-reporter/pkg/vcs"
)

func TestJSONReporter_Report(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, (&JSONReporter{}).Report(&buf, sampleSection()))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	assert.Equal(t, "github", got["provider"])
	assert.Equal(t, "v1.0.0", got["from"])
	assert.EqualValues(t, 2, got["commit_count"])
	assert.Len(t, got["commits"], 2)
	assert.Len(t, got["changes"], 3)
	assert.Contains(t, got["prompt"], "Write release notes for v1.1.0.")
	assert.NotContains(t, got, "available_tags")
}

func TestJSONReporter_NoCommits(t *testing.T) {
	s := sampleSection()
	s.Result = vcs.CompareResult{}
	s.AvailableTags = "v1.0.0"

	var buf bytes.Buffer
	require.NoError(t, (&JSONReporter{}).Report(&buf, s))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "v1.0.0", got["available_tags"])
	assert.NotContains(t, got, "prompt")
}

func TestNew(t *testing.T) {
	assert.IsType(t, &JSONReporter{}, New("json"))
	assert.IsType(t, &TextReporter{}, New("text"))
	assert.IsType(t, &TextReporter{}, New(""))
}
