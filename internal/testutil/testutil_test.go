package testutil

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticPage []string

func (p staticPage) Snapshot() []string { return p }

func TestWriteConfig(t *testing.T) {
	path := WriteConfig(t, "elements: []\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "elements: []\n", string(data))
}

func TestAssertions(t *testing.T) {
	AssertContents(t, staticPage{"a", ""}, "a", "")
	AssertBlank(t, staticPage{"", ""})
}
