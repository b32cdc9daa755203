// Package testutil provides shared test utilities for seqrun.
//
// # Fixtures
//
// The fixtures.go file provides sample config files:
//
//   - SampleConfig - two runners over three elements
//   - SampleConfigUnknownRunnerKey, SampleConfigUnknownTopLevelKey - invalid files
//   - SampleConfigDuplicateWithFrames - triggers the duplicate warning
//
// # Environment Helpers
//
//   - WriteTestFile(t, base, path, content) - writes a file in a test dir
//   - WriteConfig(t, body) - writes seqrun.yaml into a temp dir
//
// # Timeouts
//
//   - ContextWithTestDeadline(t, fallback) - context bounded by the test deadline
//   - ShortOperationContext(t) - the same with DefaultShortTimeout
//
// # Assertions
//
//   - AssertContents(t, page, want...) - every element's content in order
//   - AssertBlank(t, page) - every element empty
//
// Deterministic timing comes from schedule.Manual rather than this package.
package testutil
