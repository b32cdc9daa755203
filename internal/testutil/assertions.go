package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Snapshotter is anything that reports element contents in document order,
// such as a target.Page.
type Snapshotter interface {
	Snapshot() []string
}

// AssertContents asserts the displayed content of every element.
func AssertContents(t *testing.T, page Snapshotter, want ...string) {
	t.Helper()
	assert.Equal(t, want, page.Snapshot(), "element contents mismatch")
}

// AssertBlank asserts that every element is empty.
func AssertBlank(t *testing.T, page Snapshotter) {
	t.Helper()
	for i, got := range page.Snapshot() {
		assert.Empty(t, got, "element %d should be blank", i)
	}
}
