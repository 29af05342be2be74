package tags

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComparisonKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"v1.2.0", "1.2.0"},
		{"V1.2.0", "1.2.0"},
		{"1.2.0", "1.2.0"},
		{"vv1.0", "v1.0"},
		{"", ""},
		{"release-1", "release-1"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ComparisonKey(tt.in))
		})
	}
}

func TestComparisonKey_Idempotent(t *testing.T) {
	for _, in := range []string{"v1.2.0", "1.2.0", "2.0"} {
		once := ComparisonKey(in)
		assert.Equal(t, once, ComparisonKey(once), in)
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{"equal", "1.2.3", "1.2.3", 0},
		{"numeric not lexical", "1.10.0", "1.9.0", 1},
		{"prefix is less", "1.0", "1.0.1", -1},
		{"leading zeros", "1.02", "1.2", 0},
		{"mixed segment lexical", "1.0-rc1", "1.0-rc2", -1},
		{"long numbers", "1.100000000000000000000", "1.99999999999999999999", 1},
		{"major wins", "2.0.0", "10.0.0", -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompareVersions(tt.a, tt.b))
			assert.Equal(t, -tt.want, CompareVersions(tt.b, tt.a))
		})
	}
}

func TestSortAscending(t *testing.T) {
	in := []string{"v2.0.0", "v1.10.0", "1.2.0", "v1.9.1", "V1.0.0"}
	got := SortAscending(in)

	assert.Equal(t, []string{"V1.0.0", "1.2.0", "v1.9.1", "v1.10.0", "v2.0.0"}, got)
	assert.Equal(t, []string{"v2.0.0", "v1.10.0", "1.2.0", "v1.9.1", "V1.0.0"}, in, "input must not be mutated")
}

func TestSortAscending_StableForEqualKeys(t *testing.T) {
	in := []string{"v1.1", "1.0", "v1.0", "V1.0", "1.0"}
	got := SortAscending(in)

	assert.Equal(t, []string{"1.0", "v1.0", "V1.0", "1.0", "v1.1"}, got)
	assert.Equal(t, got, SortAscending(got), "sorting twice must be idempotent")
}
