package sequence

import "strings"

// Kind tells how a Content is played.
type Kind int

const (
	// KindText accumulates the same text once per tick within a cycle.
	KindText Kind = iota
	// KindFrames shows one frame per tick, replacing the previous one.
	KindFrames
)

// String returns the kind name used in logs and config errors.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindFrames:
		return "frames"
	default:
		return "unknown"
	}
}

// Content is either a repeatable text (scalar mode) or an ordered list of
// frames (sequence mode). The zero value is an empty text.
type Content struct {
	kind   Kind
	text   string
	frames []string
}

// Text returns scalar content.
func Text(s string) Content {
	return Content{kind: KindText, text: s}
}

// Frames returns sequence content. The slice is copied.
func Frames(frames ...string) Content {
	cp := make([]string, len(frames))
	copy(cp, frames)
	return Content{kind: KindFrames, frames: cp}
}

// Kind returns the content mode.
func (c Content) Kind() Kind {
	return c.kind
}

// IsSequence reports whether c holds frames.
func (c Content) IsSequence() bool {
	return c.kind == KindFrames
}

// Text returns the scalar text, or "" for frames.
func (c Content) Text() string {
	return c.text
}

// Frames returns a copy of the frames, or nil for scalar content.
func (c Content) Frames() []string {
	if c.kind != KindFrames {
		return nil
	}
	cp := make([]string, len(c.frames))
	copy(cp, c.frames)
	return cp
}

// Frame returns frame i, or "" when i is out of range.
func (c Content) Frame(i int) string {
	if i < 0 || i >= len(c.frames) {
		return ""
	}
	return c.frames[i]
}

// Len returns the number of frames. Scalar content has none.
func (c Content) Len() int {
	return len(c.frames)
}

func (c Content) String() string {
	if c.kind == KindFrames {
		return "[" + strings.Join(c.frames, " ") + "]"
	}
	return c.text
}
