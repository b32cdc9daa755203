package sequence

import "sort"

var presets = map[string]Content{
	"dots":    Text("."),
	"line":    Frames("-", "\\", "|", "/"),
	"braille": Frames("⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"),
	"bounce":  Frames("[=   ]", "[ =  ]", "[  = ]", "[   =]", "[  = ]", "[ =  ]"),
	"arrows":  Frames("←", "↖", "↑", "↗", "→", "↘", "↓", "↙"),
	"pulse":   Frames("<b>*</b>", "<b>**</b>", "<b>***</b>", "<b>**</b>"),
}

// Preset returns built-in content by name.
func Preset(name string) (Content, bool) {
	c, ok := presets[name]
	return c, ok
}

// PresetNames returns the built-in preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
