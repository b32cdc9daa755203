package sequence

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  map[string]any
		want Options
	}{
		{
			name: "empty",
			raw:  map[string]any{},
			want: Options{},
		},
		{
			name: "text content",
			raw:  map[string]any{"content": "*", "duplicate": 5},
			want: Options{Content: Ptr(Text("*")), Duplicate: Ptr(5)},
		},
		{
			name: "frames from yaml list",
			raw:  map[string]any{"content": []any{"a", "b"}},
			want: Options{Content: Ptr(Frames("a", "b"))},
		},
		{
			name: "frames from string slice",
			raw:  map[string]any{"content": []string{"a"}},
			want: Options{Content: Ptr(Frames("a"))},
		},
		{
			name: "delay in milliseconds",
			raw:  map[string]any{"delay": 120},
			want: Options{Delay: Ptr(120 * time.Millisecond)},
		},
		{
			name: "delay as float from json",
			raw:  map[string]any{"delay": float64(80)},
			want: Options{Delay: Ptr(80 * time.Millisecond)},
		},
		{
			name: "delay as duration string",
			raw:  map[string]any{"delay": "1.5s"},
			want: Options{Delay: Ptr(1500 * time.Millisecond)},
		},
		{
			name: "null loop",
			raw:  map[string]any{"loop": nil, "selector": "#x"},
			want: Options{Selector: Ptr("#x")},
		},
		{
			name: "loop",
			raw:  map[string]any{"loop": int64(2)},
			want: Options{Loop: Ptr(2)},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := DecodeOptions(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeOptionsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     map[string]any
		wantKey string
	}{
		{"unknown key", map[string]any{"colour": "red"}, "colour"},
		{"first unknown in sorted order", map[string]any{"zeta": 1, "alpha": 2, "delay": 5}, "alpha"},
		{"misspelled option", map[string]any{"dely": 5}, "dely"},
		{"selector not string", map[string]any{"selector": 3}, "selector"},
		{"content wrong type", map[string]any{"content": 3}, "content"},
		{"frame wrong type", map[string]any{"content": []any{"a", 2}}, "content"},
		{"duplicate fractional", map[string]any{"duplicate": 2.5}, "duplicate"},
		{"delay bad string", map[string]any{"delay": "soon"}, "delay"},
		{"delay wrong type", map[string]any{"delay": true}, "delay"},
		{"loop wrong type", map[string]any{"loop": "twice"}, "loop"},
		{"loop beyond int range", map[string]any{"loop": uint64(math.MaxUint64)}, "loop"},
		{"loop huge uint", map[string]any{"loop": uint(math.MaxUint)}, "loop"},
		{"loop huge float", map[string]any{"loop": 1e19}, "loop"},
		{"duplicate negative huge float", map[string]any{"duplicate": -1e30}, "duplicate"},
		{"delay huge float", map[string]any{"delay": math.MaxFloat64}, "delay"},
		{"delay overflows duration", map[string]any{"delay": int64(math.MaxInt64 / 1000)}, "delay"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := DecodeOptions(tt.raw)
			var cfgErr *ConfigurationError
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.wantKey, cfgErr.Key)
			assert.Contains(t, err.Error(), "configuration error: "+tt.wantKey)
		})
	}
}

func TestToIntBounds(t *testing.T) {
	t.Parallel()

	n, ok := toInt(uint64(math.MaxInt))
	assert.True(t, ok)
	assert.Equal(t, math.MaxInt, n)

	n, ok = toInt(int64(math.MinInt))
	assert.True(t, ok)
	assert.Equal(t, math.MinInt, n)

	_, ok = toInt(uint64(math.MaxInt) + 1)
	assert.False(t, ok)

	n, ok = toInt(float64(-(1 << 53)))
	assert.True(t, ok)
	assert.Equal(t, -(1 << 53), n)

	_, ok = toInt(-float64(math.MinInt))
	assert.False(t, ok)
}

func TestResolveOverridesDefaults(t *testing.T) {
	t.Parallel()

	warns := &warnRecorder{}
	s := Options{
		Selector:  Ptr("p"),
		Duplicate: Ptr(5),
		Delay:     Ptr(50 * time.Millisecond),
		Loop:      Ptr(4),
	}.resolve(warns)

	assert.Equal(t, Settings{
		Selector:  "p",
		Content:   Text("."),
		Duplicate: 5,
		Delay:     50 * time.Millisecond,
		Loop:      4,
	}, s)
	assert.True(t, s.Bounded())
	assert.Empty(t, warns.msgs)
}

func TestOptionsMerge(t *testing.T) {
	t.Parallel()

	base := Options{Selector: Ptr("#a"), Duplicate: Ptr(2), Loop: Ptr(1)}
	got := base.Merge(Options{Duplicate: Ptr(4), Delay: Ptr(time.Second)})

	assert.Equal(t, Options{
		Selector:  Ptr("#a"),
		Duplicate: Ptr(4),
		Delay:     Ptr(time.Second),
		Loop:      Ptr(1),
	}, got)
	assert.Equal(t, 2, *base.Duplicate)
	assert.Equal(t, base, base.Merge(Options{}))
}

func TestContent(t *testing.T) {
	t.Parallel()

	text := Text("ab")
	assert.Equal(t, KindText, text.Kind())
	assert.False(t, text.IsSequence())
	assert.Equal(t, "ab", text.Text())
	assert.Nil(t, text.Frames())
	assert.Equal(t, 0, text.Len())
	assert.Equal(t, "ab", text.String())

	src := []string{"1", "2"}
	frames := Frames(src...)
	src[0] = "changed"
	assert.Equal(t, KindFrames, frames.Kind())
	assert.Equal(t, "1", frames.Frame(0))
	assert.Equal(t, "", frames.Frame(2))
	assert.Equal(t, "", frames.Frame(-1))
	assert.Equal(t, 2, frames.Len())
	assert.Equal(t, "[1 2]", frames.String())

	out := frames.Frames()
	out[1] = "mutated"
	assert.Equal(t, "2", frames.Frame(1))

	assert.Equal(t, "frames", KindFrames.String())
	assert.Equal(t, "paused", StatePaused.String())
}

func TestPresets(t *testing.T) {
	t.Parallel()

	names := PresetNames()
	require.NotEmpty(t, names)
	assert.IsNonDecreasing(t, names)

	for _, name := range names {
		c, ok := Preset(name)
		require.True(t, ok, name)
		if c.IsSequence() {
			assert.NotZero(t, c.Len(), name)
		} else {
			assert.NotEmpty(t, c.Text(), name)
		}
	}

	line, _ := Preset("line")
	assert.Equal(t, []string{"-", "\\", "|", "/"}, line.Frames())

	_, ok := Preset("nope")
	assert.False(t, ok)
}
