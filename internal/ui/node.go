// Package ui models the mounted screen tree that the reader walks.
//
// The node set is closed: every kind the extraction pipeline understands is a
// concrete type here, dispatched through Visitor. Anything else arrives as
// Unknown and is skipped by consumers.
package ui

// Node is a single element of a screen tree.
type Node interface {
	Visit(v Visitor)
}

// Parent is implemented by nodes that hold child nodes a walker may descend
// into. Unknown deliberately does not implement it.
type Parent interface {
	Node
	ChildNodes() []Node
}

// Visitor dispatches on the concrete node kind. A new node type does not
// compile until every visitor handles it.
type Visitor interface {
	VisitText(*Text)
	VisitRichText(*RichText)
	VisitButton(*Button)
	VisitIconButton(*IconButton)
	VisitTextField(*TextField)
	VisitFormField(*FormField)
	VisitImage(*Image)
	VisitVideo(*Video)
	VisitMediaGallery(*MediaGallery)
	VisitListTile(*ListTile)
	VisitCard(*Card)
	VisitSwitch(*Switch)
	VisitTable(*Table)
	VisitContainer(*Container)
	VisitUnknown(*Unknown)
}

// Text is a plain text leaf.
type Text struct {
	Content string
}

func (n *Text) Visit(v Visitor) { v.VisitText(n) }

// RichText carries styled spans; only their concatenated text matters here.
type RichText struct {
	Spans []string
}

func (n *RichText) Visit(v Visitor) { v.VisitRichText(n) }

// Button is any pressable element with a text label.
type Button struct {
	Label   string
	Enabled bool
}

func (n *Button) Visit(v Visitor) { v.VisitButton(n) }

// IconButton is a pressable icon; the tooltip is its only spoken text.
type IconButton struct {
	Tooltip string
}

func (n *IconButton) Visit(v Visitor) { v.VisitIconButton(n) }

// TextField is a free-form text input.
type TextField struct {
	Label     string
	Hint      string
	Value     string
	Required  bool
	Password  bool
	Multiline bool
}

func (n *TextField) Visit(v Visitor) { v.VisitTextField(n) }

// FormField is a validated form input, distinct from a bare TextField.
type FormField struct {
	Label    string
	Hint     string
	Value    string
	Required bool
	Password bool
}

func (n *FormField) Visit(v Visitor) { v.VisitFormField(n) }

// Image is a displayed picture, network or asset backed.
type Image struct {
	URL string
	Alt string
}

func (n *Image) Visit(v Visitor) { v.VisitImage(n) }

// Video is an embedded video player.
type Video struct {
	URL     string
	Caption string
}

func (n *Video) Visit(v Visitor) { v.VisitVideo(n) }

// MediaGallery groups a list of media URLs shown together.
type MediaGallery struct {
	URLs []string
}

func (n *MediaGallery) Visit(v Visitor) { v.VisitMediaGallery(n) }

// ListTile is a list row with a title and optional subtitle.
type ListTile struct {
	Title    string
	Subtitle string
}

func (n *ListTile) Visit(v Visitor) { v.VisitListTile(n) }

// Card wraps child content in a visual card.
type Card struct {
	Children []Node
}

func (n *Card) Visit(v Visitor)    { v.VisitCard(n) }
func (n *Card) ChildNodes() []Node { return n.Children }

// Switch is a boolean toggle.
type Switch struct {
	Label string
	On    bool
}

func (n *Switch) Visit(v Visitor) { v.VisitSwitch(n) }

// Table is tabular data with a header row.
type Table struct {
	Headers []string
	Rows    [][]string
}

func (n *Table) Visit(v Visitor) { v.VisitTable(n) }

// ContainerKind names the layout role of a Container.
type ContainerKind string

const (
	ContainerColumn   ContainerKind = "column"
	ContainerRow      ContainerKind = "row"
	ContainerStack    ContainerKind = "stack"
	ContainerPadding  ContainerKind = "padding"
	ContainerCenter   ContainerKind = "center"
	ContainerExpanded ContainerKind = "expanded"
	ContainerScroll   ContainerKind = "scroll"
)

// Container is a pure layout node; it contributes no text of its own.
type Container struct {
	Kind     ContainerKind
	Children []Node
}

func (n *Container) Visit(v Visitor)    { v.VisitContainer(n) }
func (n *Container) ChildNodes() []Node { return n.Children }

// Unknown stands in for node kinds outside the closed set. Walkers skip it
// and never descend; the tree is externally defined and may contain anything.
type Unknown struct {
	Kind     string
	Children []Node
}

func (n *Unknown) Visit(v Visitor) { v.VisitUnknown(n) }

// NopVisitor implements Visitor with no-ops so concrete visitors can embed it
// and override only the kinds they care about.
type NopVisitor struct{}

func (NopVisitor) VisitText(*Text)                 {}
func (NopVisitor) VisitRichText(*RichText)         {}
func (NopVisitor) VisitButton(*Button)             {}
func (NopVisitor) VisitIconButton(*IconButton)     {}
func (NopVisitor) VisitTextField(*TextField)       {}
func (NopVisitor) VisitFormField(*FormField)       {}
func (NopVisitor) VisitImage(*Image)               {}
func (NopVisitor) VisitVideo(*Video)               {}
func (NopVisitor) VisitMediaGallery(*MediaGallery) {}
func (NopVisitor) VisitListTile(*ListTile)         {}
func (NopVisitor) VisitCard(*Card)                 {}
func (NopVisitor) VisitSwitch(*Switch)             {}
func (NopVisitor) VisitTable(*Table)               {}
func (NopVisitor) VisitContainer(*Container)       {}
func (NopVisitor) VisitUnknown(*Unknown)           {}
