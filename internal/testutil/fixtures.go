package testutil

// SampleConfig is a complete config with two runners over three elements.
const SampleConfig = `log_level: info
elements:
  - "h1#title"
  - "span#dots.sequence-runner"
  - "span#spin.spinner"
runners:
  - selector: ".sequence-runner"
    content: "."
    duplicate: 3
    delay: 200
    loop: 2
  - selector: "#spin"
    content: ["-", "\\", "|", "/"]
    delay: 100ms
`

// SampleConfigUnknownRunnerKey has a misspelled runner option.
const SampleConfigUnknownRunnerKey = `runners:
  - selector: "#a"
    dealy: 100
elements:
  - "#a"
`

// SampleConfigUnknownTopLevelKey has a top-level key seqrun does not know.
const SampleConfigUnknownTopLevelKey = `elements: ["#a"]
theme: dark
`

// SampleConfigDuplicateWithFrames supplies duplicate next to frames.
const SampleConfigDuplicateWithFrames = `elements: ["span.sequence-runner"]
runners:
  - content: ["a", "b"]
    duplicate: 9
`
