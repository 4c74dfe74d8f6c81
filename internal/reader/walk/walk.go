// Package walk traverses a screen tree depth-first and collects spoken text.
package walk

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"dojoreader/internal/ui"
)

// Walk visits root and every descendant in pre-order, dispatching each node
// to v. A panic inside one subtree is logged and swallowed so the remaining
// siblings are still visited; partial results beat total failure here.
func Walk(root ui.Node, v ui.Visitor) {
	if root == nil {
		return
	}

	walkSafe(root, v)
}

func walkSafe(node ui.Node, v ui.Visitor) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("node", fmt.Sprintf("%T", node)).
				WithField("panic", r).
				Warn("skipping subtree after traversal panic")
		}
	}()

	node.Visit(v)

	if _, unknown := node.(*ui.Unknown); unknown {
		return
	}
	if parent, ok := node.(ui.Parent); ok {
		for _, child := range parent.ChildNodes() {
			if child == nil {
				continue
			}
			walkSafe(child, v)
		}
	}
}

// textCollector gathers all visible text in visit order, deduplicated on the
// first occurrence. Input widgets and media are left to their own extractors.
type textCollector struct {
	ui.NopVisitor
	seen  map[string]struct{}
	texts []string
}

func newTextCollector() *textCollector {
	return &textCollector{seen: make(map[string]struct{})}
}

func (c *textCollector) add(text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if _, dup := c.seen[text]; dup {
		return
	}
	c.seen[text] = struct{}{}
	c.texts = append(c.texts, text)
}

func (c *textCollector) VisitText(n *ui.Text) {
	c.add(n.Content)
}

func (c *textCollector) VisitRichText(n *ui.RichText) {
	c.add(strings.Join(n.Spans, " "))
}

func (c *textCollector) VisitListTile(n *ui.ListTile) {
	c.add(n.Title)
	c.add(n.Subtitle)
}

func (c *textCollector) VisitTable(n *ui.Table) {
	c.add(strings.Join(n.Headers, ", "))
	for _, row := range n.Rows {
		c.add(strings.Join(row, ", "))
	}
}

// CollectText returns every distinct piece of static text under root in
// first-occurrence order.
func CollectText(root ui.Node) []string {
	collector := newTextCollector()
	Walk(root, collector)
	return collector.texts
}

// interactiveCollector gathers pressable and toggleable elements.
type interactiveCollector struct {
	ui.NopVisitor
	seen  map[string]struct{}
	items []string
}

func (c *interactiveCollector) add(desc string) {
	if desc == "" {
		return
	}
	if _, dup := c.seen[desc]; dup {
		return
	}
	c.seen[desc] = struct{}{}
	c.items = append(c.items, desc)
}

func (c *interactiveCollector) VisitButton(n *ui.Button) {
	label := strings.TrimSpace(n.Label)
	if label == "" {
		return
	}
	if !n.Enabled {
		c.add(fmt.Sprintf("Knop: %s, uitgeschakeld", label))
		return
	}
	c.add("Knop: " + label)
}

func (c *interactiveCollector) VisitIconButton(n *ui.IconButton) {
	tooltip := strings.TrimSpace(n.Tooltip)
	if tooltip == "" {
		return
	}
	c.add("Knop: " + tooltip)
}

func (c *interactiveCollector) VisitSwitch(n *ui.Switch) {
	label := strings.TrimSpace(n.Label)
	if label == "" {
		label = "schakelaar"
	}
	state := "uit"
	if n.On {
		state = "aan"
	}
	c.add(fmt.Sprintf("%s, schakelaar staat %s", label, state))
}

// CollectInteractive returns spoken descriptions of buttons and switches
// under root, deduplicated, in first-occurrence order.
func CollectInteractive(root ui.Node) []string {
	collector := &interactiveCollector{seen: make(map[string]struct{})}
	Walk(root, collector)
	return collector.items
}
