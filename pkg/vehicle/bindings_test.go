package vehicle

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heldKeys(keys ...string) func(string) bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return func(k string) bool { return set[k] }
}

func TestDefaultLayoutSnapshot(t *testing.T) {
	tests := []struct {
		name string
		held []string
		want Input
	}{
		{name: "nothing", want: Input{}},
		{name: "arrow left", held: []string{"ArrowLeft"}, want: Input{Left: true}},
		{name: "a", held: []string{"A"}, want: Input{Left: true}},
		{name: "arrow right", held: []string{"ArrowRight"}, want: Input{Right: true}},
		{name: "d", held: []string{"D"}, want: Input{Right: true}},
		{name: "arrow up", held: []string{"ArrowUp"}, want: Input{Accelerate: true}},
		{name: "w", held: []string{"W"}, want: Input{Accelerate: true}},
		{name: "arrow down", held: []string{"ArrowDown"}, want: Input{Decelerate: true}},
		{name: "s", held: []string{"S"}, want: Input{Decelerate: true}},
		{name: "space", held: []string{"Space"}, want: Input{Boost: true}},
		{
			name: "boosting into a left hander",
			held: []string{"ArrowUp", "Space", "A"},
			want: Input{Left: true, Accelerate: true, Boost: true},
		},
		{name: "unbound key", held: []string{"Q"}, want: Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultLayout.Snapshot(heldKeys(tt.held...)))
		})
	}
}

func TestMapBindings(t *testing.T) {
	lower := func(k string) (string, error) { return strings.ToLower(k), nil }

	b, err := MapBindings(DefaultLayout, lower)
	require.NoError(t, err)
	assert.Equal(t, []string{"arrowleft", "a"}, b.Left)
	assert.Equal(t, []string{"space"}, b.Boost)
	assert.Equal(t, Input{Decelerate: true}, b.Snapshot(heldKeys("s")))

	errUnknown := errors.New("unknown key")
	reject := func(k string) (string, error) {
		if k == "W" {
			return "", errUnknown
		}
		return k, nil
	}
	_, err = MapBindings(DefaultLayout, reject)
	assert.ErrorIs(t, err, errUnknown)
	assert.ErrorContains(t, err, "W")
}
