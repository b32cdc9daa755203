// Package target holds the element tree runners render into.
//
// A Page is a flat, ordered list of Nodes addressed with a subset of CSS
// selectors: tag names, "*", "#id" and ".class", combined into compounds
// ("span.dots#a") and joined with commas. Nodes store raw markup; nothing is
// escaped or parsed.
package target

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/thruflo/seqrun/internal/sequence"
)

// DefaultTag is used by ParseElement when the notation names no tag.
const DefaultTag = "span"

// Node is a single render target.
type Node struct {
	ID      string
	Tag     string
	Classes []string

	mu      sync.Mutex
	content string
	page    *Page
}

// NewNode creates a detached node.
func NewNode(tag, id string, classes ...string) *Node {
	if tag == "" {
		tag = DefaultTag
	}
	return &Node{
		ID:      id,
		Tag:     strings.ToLower(tag),
		Classes: classes,
	}
}

// ParseElement builds a node from selector notation, for example
// "span#status.sequence-runner". The tag defaults to span.
func ParseElement(notation string) (*Node, error) {
	c, err := parseCompound(strings.TrimSpace(notation))
	if err != nil {
		return nil, fmt.Errorf("invalid element %q: %w", notation, err)
	}
	if c.tag == "*" {
		return nil, fmt.Errorf("invalid element %q: wildcard tag", notation)
	}
	if len(c.ids) > 1 {
		return nil, fmt.Errorf("invalid element %q: more than one id", notation)
	}

	var id string
	if len(c.ids) == 1 {
		id = c.ids[0]
	}
	return NewNode(c.tag, id, c.classes...), nil
}

// SetContent implements sequence.Element.
func (n *Node) SetContent(markup string) {
	n.mu.Lock()
	n.content = markup
	page := n.page
	n.mu.Unlock()

	if page != nil {
		page.notify(n)
	}
}

// Content returns the displayed markup.
func (n *Node) Content() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.content
}

// HasClass reports whether the node carries class.
func (n *Node) HasClass(class string) bool {
	for _, c := range n.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// String returns the node in selector notation.
func (n *Node) String() string {
	var sb strings.Builder
	sb.WriteString(n.Tag)
	if n.ID != "" {
		sb.WriteString("#")
		sb.WriteString(n.ID)
	}
	for _, c := range n.Classes {
		sb.WriteString(".")
		sb.WriteString(c)
	}
	return sb.String()
}

// Label returns "#id" when the node has an id, otherwise its notation.
func (n *Node) Label() string {
	if n.ID != "" {
		return "#" + n.ID
	}
	return n.String()
}

// Page is an ordered set of nodes. It implements sequence.Document.
type Page struct {
	mu       sync.RWMutex
	nodes    []*Node
	watchers map[int]func(*Node)
	nextID   int
}

// NewPage creates a page holding nodes in document order.
func NewPage(nodes ...*Node) (*Page, error) {
	p := &Page{watchers: make(map[int]func(*Node))}
	if err := p.Add(nodes...); err != nil {
		return nil, err
	}
	return p, nil
}

// Add appends nodes. Ids must be unique within the page and a node can
// belong to one page only.
func (p *Page) Add(nodes ...*Node) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for _, n := range nodes {
		if n.ID != "" {
			for _, existing := range p.nodes {
				if existing.ID == n.ID {
					return fmt.Errorf("duplicate element id %q", n.ID)
				}
			}
		}
		n.mu.Lock()
		if n.page != nil {
			n.mu.Unlock()
			return fmt.Errorf("element %s already attached", n)
		}
		n.page = p
		n.mu.Unlock()
		p.nodes = append(p.nodes, n)
	}
	return nil
}

// Find returns the nodes matching selector in document order. An invalid
// selector matches nothing.
func (p *Page) Find(selector string) []*Node {
	groups, err := parseSelector(selector)
	if err != nil {
		return nil
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var out []*Node
	for _, n := range p.nodes {
		for _, g := range groups {
			if g.matches(n) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// Query implements sequence.Document.
func (p *Page) Query(selector string) []sequence.Element {
	nodes := p.Find(selector)
	out := make([]sequence.Element, len(nodes))
	for i, n := range nodes {
		out[i] = n
	}
	return out
}

// Nodes returns all nodes in document order.
func (p *Page) Nodes() []*Node {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]*Node, len(p.nodes))
	copy(out, p.nodes)
	return out
}

// Snapshot returns the content of every node in document order.
func (p *Page) Snapshot() []string {
	nodes := p.Nodes()
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.Content()
	}
	return out
}

// Watch registers fn to be called after any node's content is written.
// fn runs on the writer's goroutine and must not block. The returned
// function removes the watcher.
func (p *Page) Watch(fn func(*Node)) func() {
	p.mu.Lock()
	id := p.nextID
	p.nextID++
	p.watchers[id] = fn
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.watchers, id)
		p.mu.Unlock()
	}
}

func (p *Page) notify(n *Node) {
	p.mu.RLock()
	ids := make([]int, 0, len(p.watchers))
	for id := range p.watchers {
		ids = append(ids, id)
	}
	fns := make([]func(*Node), 0, len(ids))
	sort.Ints(ids)
	for _, id := range ids {
		fns = append(fns, p.watchers[id])
	}
	p.mu.RUnlock()

	for _, fn := range fns {
		fn(n)
	}
}
