package target

import (
	"fmt"
	"strings"
)

// compound is one simple selector group such as "span.dots#status".
type compound struct {
	tag     string // "" or "*" matches any tag
	ids     []string
	classes []string
}

// parseSelector splits a comma separated selector list. Combinators are
// not supported; the page is flat.
func parseSelector(selector string) ([]compound, error) {
	parts := strings.Split(selector, ",")
	out := make([]compound, 0, len(parts))
	for _, part := range parts {
		c, err := parseCompound(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseCompound(s string) (compound, error) {
	var c compound
	if s == "" {
		return c, fmt.Errorf("empty selector")
	}

	i := 0
	if s[0] == '*' {
		c.tag = "*"
		i = 1
	} else {
		j := scanIdent(s, 0)
		c.tag = strings.ToLower(s[:j])
		i = j
	}

	for i < len(s) {
		marker := s[i]
		if marker != '#' && marker != '.' {
			return compound{}, fmt.Errorf("unsupported selector syntax at %q", s[i:])
		}
		j := scanIdent(s, i+1)
		if j == i+1 {
			return compound{}, fmt.Errorf("missing name after %q", string(marker))
		}
		name := s[i+1 : j]
		if marker == '#' {
			c.ids = append(c.ids, name)
		} else {
			c.classes = append(c.classes, name)
		}
		i = j
	}

	if c.tag == "" && len(c.ids) == 0 && len(c.classes) == 0 {
		return compound{}, fmt.Errorf("empty selector")
	}
	return c, nil
}

func scanIdent(s string, from int) int {
	i := from
	for i < len(s) && isIdentByte(s[i]) {
		i++
	}
	return i
}

func isIdentByte(b byte) bool {
	return b == '-' || b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') ||
		b >= 0x80
}

func (c compound) matches(n *Node) bool {
	if c.tag != "" && c.tag != "*" && c.tag != n.Tag {
		return false
	}
	for _, id := range c.ids {
		if id != n.ID {
			return false
		}
	}
	for _, class := range c.classes {
		if !n.HasClass(class) {
			return false
		}
	}
	return true
}
