package sequence

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Default values for Settings.
const (
	DefaultSelector  = ".sequence-runner"
	DefaultText      = "."
	DefaultDuplicate = 3
	DefaultDelay     = 500 * time.Millisecond

	// MinDelay is the shortest tick interval a runner accepts.
	MinDelay = time.Millisecond
)

// Option keys accepted by DecodeOptions.
const (
	KeySelector  = "selector"
	KeyContent   = "content"
	KeyDuplicate = "duplicate"
	KeyDelay     = "delay"
	KeyLoop      = "loop"
)

var knownKeys = map[string]bool{
	KeySelector:  true,
	KeyContent:   true,
	KeyDuplicate: true,
	KeyDelay:     true,
	KeyLoop:      true,
}

// ConfigurationError reports an option that could not be accepted. It is
// the only error a runner's configuration can produce.
type ConfigurationError struct {
	Key    string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s: %s", e.Key, e.Reason)
}

// Options is a partial runner configuration. Nil fields take their default.
type Options struct {
	Selector  *string
	Content   *Content
	Duplicate *int
	Delay     *time.Duration
	// Loop caps the number of full cycles. Nil, zero, or negative loops
	// forever.
	Loop *int
}

// Ptr returns a pointer to v, for filling Options literals.
func Ptr[T any](v T) *T {
	return &v
}

// Merge returns o with every option set in over replacing its own.
func (o Options) Merge(over Options) Options {
	if over.Selector != nil {
		o.Selector = over.Selector
	}
	if over.Content != nil {
		o.Content = over.Content
	}
	if over.Duplicate != nil {
		o.Duplicate = over.Duplicate
	}
	if over.Delay != nil {
		o.Delay = over.Delay
	}
	if over.Loop != nil {
		o.Loop = over.Loop
	}
	return o
}

// Settings is the merged configuration a runner uses.
type Settings struct {
	Selector  string
	Content   Content
	Duplicate int
	Delay     time.Duration
	// Loop is 0 when unbounded.
	Loop int
}

// DefaultSettings returns the settings used when no option is supplied.
func DefaultSettings() Settings {
	return Settings{
		Selector:  DefaultSelector,
		Content:   Text(DefaultText),
		Duplicate: DefaultDuplicate,
		Delay:     DefaultDelay,
	}
}

// Bounded reports whether the runner pauses itself after Loop cycles.
func (s Settings) Bounded() bool {
	return s.Loop > 0
}

// resolve merges o over the defaults. Adjustments that are not errors are
// reported to warn.
func (o Options) resolve(warn Logger) Settings {
	s := DefaultSettings()
	if o.Selector != nil {
		s.Selector = *o.Selector
	}
	if o.Content != nil {
		s.Content = *o.Content
	}
	if o.Duplicate != nil {
		s.Duplicate = *o.Duplicate
	}
	if o.Delay != nil {
		s.Delay = *o.Delay
	}
	if o.Loop != nil && *o.Loop > 0 {
		s.Loop = *o.Loop
	}

	if s.Content.IsSequence() {
		if o.Duplicate != nil {
			warn.Warn("duplicate is ignored when content is a frame sequence",
				"duplicate", *o.Duplicate, "frames", s.Content.Len())
		}
		s.Duplicate = s.Content.Len()
	}

	if s.Delay < MinDelay {
		warn.Warn("delay raised to minimum", "delay", s.Delay, "min", MinDelay)
		s.Delay = MinDelay
	}

	return s
}

// DecodeOptions converts a loosely typed option map, such as one decoded
// from YAML or JSON, into Options. Every key must be a known option; the
// first unknown key (in sorted order) is reported as a *ConfigurationError.
// Values of the wrong type are reported the same way.
func DecodeOptions(raw map[string]any) (Options, error) {
	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !knownKeys[k] {
			return Options{}, &ConfigurationError{Key: k, Reason: "unrecognized option"}
		}
	}

	var opts Options
	for _, k := range keys {
		v := raw[k]
		switch k {
		case KeySelector:
			s, ok := v.(string)
			if !ok {
				return Options{}, typeError(k, "a string", v)
			}
			opts.Selector = &s

		case KeyContent:
			c, err := decodeContent(v)
			if err != nil {
				return Options{}, err
			}
			opts.Content = &c

		case KeyDuplicate:
			n, ok := toInt(v)
			if !ok {
				return Options{}, typeError(k, "an integer", v)
			}
			opts.Duplicate = &n

		case KeyDelay:
			d, err := decodeDelay(v)
			if err != nil {
				return Options{}, err
			}
			opts.Delay = &d

		case KeyLoop:
			if v == nil {
				continue
			}
			n, ok := toInt(v)
			if !ok {
				return Options{}, typeError(k, "an integer or null", v)
			}
			opts.Loop = &n
		}
	}

	return opts, nil
}

func typeError(key, want string, got any) error {
	return &ConfigurationError{Key: key, Reason: fmt.Sprintf("must be %s, got %T", want, got)}
}

func decodeContent(v any) (Content, error) {
	switch val := v.(type) {
	case string:
		return Text(val), nil
	case Content:
		return val, nil
	case []string:
		return Frames(val...), nil
	case []any:
		frames := make([]string, len(val))
		for i, item := range val {
			s, ok := item.(string)
			if !ok {
				return Content{}, &ConfigurationError{
					Key:    KeyContent,
					Reason: fmt.Sprintf("frame %d must be a string, got %T", i, item),
				}
			}
			frames[i] = s
		}
		return Frames(frames...), nil
	default:
		return Content{}, typeError(KeyContent, "a string or a list of strings", v)
	}
}

// decodeDelay accepts milliseconds as a number, a time.Duration, or a
// duration string such as "250ms".
func decodeDelay(v any) (time.Duration, error) {
	switch val := v.(type) {
	case time.Duration:
		return val, nil
	case string:
		d, err := time.ParseDuration(val)
		if err != nil {
			return 0, &ConfigurationError{Key: KeyDelay, Reason: err.Error()}
		}
		return d, nil
	}
	if ms, ok := toInt(v); ok {
		if int64(ms) > math.MaxInt64/int64(time.Millisecond) || int64(ms) < math.MinInt64/int64(time.Millisecond) {
			return 0, &ConfigurationError{Key: KeyDelay, Reason: fmt.Sprintf("%d milliseconds is out of range", ms)}
		}
		return time.Duration(ms) * time.Millisecond, nil
	}
	return 0, typeError(KeyDelay, "milliseconds or a duration string", v)
}

// toInt converts an integral number to int. Values that do not fit are
// rejected rather than wrapped.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int8:
		return int(n), true
	case int16:
		return int(n), true
	case int32:
		return int(n), true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint8:
		return int(n), true
	case uint16:
		return int(n), true
	case uint32:
		if uint64(n) > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	}
	return 0, false
}

func floatToInt(f float64) (int, bool) {
	if f != math.Trunc(f) || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, false
	}
	// -float64(math.MinInt) is 2^(bits-1), the first value past MaxInt.
	if f < float64(math.MinInt) || f >= -float64(math.MinInt) {
		return 0, false
	}
	return int(f), true
}
