package rangeplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tag-range-reporter/pkg/tags"
)

func TestSingle(t *testing.T) {
	assert.Equal(t, []tags.Range{{From: "v1.0.0", To: "v1.2.0"}}, Single("v1.0.0", "v1.2.0"))
}

func TestSteps(t *testing.T) {
	all := []string{"v1.3.0", "v1.0.0", "v1.2.0", "v1.1.0"}
	want := []tags.Range{
		{From: "v1.0.0", To: "v1.1.0"},
		{From: "v1.1.0", To: "v1.2.0"},
		{From: "v1.2.0", To: "v1.3.0"},
	}

	t.Run("ascending endpoints", func(t *testing.T) {
		got, err := Steps(all, "v1.0.0", "v1.3.0")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("reversed endpoints walk the same way", func(t *testing.T) {
		got, err := Steps(all, "v1.3.0", "v1.0.0")
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("inner sub range", func(t *testing.T) {
		got, err := Steps(all, "v1.1.0", "v1.2.0")
		require.NoError(t, err)
		assert.Equal(t, []tags.Range{{From: "v1.1.0", To: "v1.2.0"}}, got)
	})
}

func TestSteps_Insufficient(t *testing.T) {
	all := []string{"v1.0.0", "v1.1.0"}

	tests := []struct {
		name     string
		from, to string
	}{
		{"same endpoint", "v1.0.0", "v1.0.0"},
		{"unknown from", "v0.9.0", "v1.1.0"},
		{"unknown to", "v1.0.0", "v9.0.0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Steps(all, tt.from, tt.to)
			assert.ErrorIs(t, err, ErrInsufficientTags)
		})
	}
}

func TestPlan(t *testing.T) {
	all := []string{"v1.0.0", "v1.1.0", "v1.2.0"}
	resolved := tags.Range{From: "v1.0.0", To: "v1.2.0"}

	single, err := Plan(all, resolved, false)
	require.NoError(t, err)
	assert.Equal(t, []tags.Range{resolved}, single)

	steps, err := Plan(all, resolved, true)
	require.NoError(t, err)
	assert.Equal(t, []tags.Range{
		{From: "v1.0.0", To: "v1.1.0"},
		{From: "v1.1.0", To: "v1.2.0"},
	}, steps)
}
