package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thruflo/seqrun/internal/sequence"
	"github.com/thruflo/seqrun/internal/testutil"
)

func TestValidate_SampleConfig(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	path := testutil.WriteConfig(t, testutil.SampleConfig)
	require.NoError(t, runValidate(&out, &errOut, path))

	assert.Contains(t, out.String(), path+": ok (3 elements, 2 runners)")
	assert.Contains(t, out.String(),
		`runner 0: selector=".sequence-runner" targets=1 text=. duplicate=3 delay=200ms loop=2`)
	assert.Contains(t, out.String(),
		`runner 1: selector="#spin" targets=1 frames=[- \ | /] duplicate=4 delay=100ms loop=forever`)
	assert.Empty(t, errOut.String())
}

func TestValidate_DuplicateWithFramesWarns(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	path := testutil.WriteConfig(t, testutil.SampleConfigDuplicateWithFrames)
	require.NoError(t, runValidate(&out, &errOut, path))

	assert.Contains(t, out.String(), "duplicate=2")
	assert.Contains(t, errOut.String(), "WARN: duplicate is ignored when content is a frame sequence | runner=0 duplicate=9 frames=2")
}

func TestValidate_UnknownKey(t *testing.T) {
	t.Parallel()

	var out, errOut bytes.Buffer
	err := runValidate(&out, &errOut, testutil.WriteConfig(t, testutil.SampleConfigUnknownRunnerKey))

	var cfgErr *sequence.ConfigurationError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "dealy", cfgErr.Key)
	assert.Empty(t, out.String())
}

func TestValidateCmd_RequiresFile(t *testing.T) {
	t.Parallel()

	_, _, err := execute(t, "validate")
	assert.ErrorContains(t, err, "accepts 1 arg(s)")
}
