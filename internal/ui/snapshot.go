package ui

import (
	"encoding/json"
	"fmt"
	"os"
)

// Snapshot is a recorded screen: the route it was captured on, whether an
// overlay (dialog, bottom sheet, menu) was showing, and the mounted tree.
type Snapshot struct {
	Route   string
	Overlay bool
	Tree    Node
}

type snapshotFile struct {
	Route   string       `json:"route"`
	Overlay bool         `json:"overlay"`
	Tree    snapshotNode `json:"tree"`
}

// snapshotNode is the wire shape of a node; Kind selects which fields apply.
type snapshotNode struct {
	Kind      string         `json:"kind"`
	Text      string         `json:"text,omitempty"`
	Spans     []string       `json:"spans,omitempty"`
	Label     string         `json:"label,omitempty"`
	Hint      string         `json:"hint,omitempty"`
	Value     string         `json:"value,omitempty"`
	Required  bool           `json:"required,omitempty"`
	Password  bool           `json:"password,omitempty"`
	Multiline bool           `json:"multiline,omitempty"`
	Enabled   *bool          `json:"enabled,omitempty"`
	On        bool           `json:"on,omitempty"`
	Tooltip   string         `json:"tooltip,omitempty"`
	URL       string         `json:"url,omitempty"`
	URLs      []string       `json:"urls,omitempty"`
	Alt       string         `json:"alt,omitempty"`
	Caption   string         `json:"caption,omitempty"`
	Title     string         `json:"title,omitempty"`
	Subtitle  string         `json:"subtitle,omitempty"`
	Headers   []string       `json:"headers,omitempty"`
	Rows      [][]string     `json:"rows,omitempty"`
	Children  []snapshotNode `json:"children,omitempty"`
}

// ParseSnapshot decodes a recorded screen snapshot.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	var file snapshotFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot JSON: %w", err)
	}

	return &Snapshot{
		Route:   file.Route,
		Overlay: file.Overlay,
		Tree:    file.Tree.toNode(),
	}, nil
}

// LoadSnapshot reads and decodes a snapshot file from disk.
func LoadSnapshot(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %w", err)
	}
	return ParseSnapshot(data)
}

func (sn snapshotNode) toNode() Node {
	children := func() []Node {
		if len(sn.Children) == 0 {
			return nil
		}
		nodes := make([]Node, 0, len(sn.Children))
		for _, child := range sn.Children {
			nodes = append(nodes, child.toNode())
		}
		return nodes
	}

	switch sn.Kind {
	case "text":
		return &Text{Content: sn.Text}
	case "richtext":
		return &RichText{Spans: sn.Spans}
	case "button":
		enabled := true
		if sn.Enabled != nil {
			enabled = *sn.Enabled
		}
		return &Button{Label: sn.Label, Enabled: enabled}
	case "iconbutton":
		return &IconButton{Tooltip: sn.Tooltip}
	case "textfield":
		return &TextField{
			Label:     sn.Label,
			Hint:      sn.Hint,
			Value:     sn.Value,
			Required:  sn.Required,
			Password:  sn.Password,
			Multiline: sn.Multiline,
		}
	case "formfield":
		return &FormField{
			Label:    sn.Label,
			Hint:     sn.Hint,
			Value:    sn.Value,
			Required: sn.Required,
			Password: sn.Password,
		}
	case "image":
		return &Image{URL: sn.URL, Alt: sn.Alt}
	case "video":
		return &Video{URL: sn.URL, Caption: sn.Caption}
	case "gallery":
		return &MediaGallery{URLs: sn.URLs}
	case "listtile":
		return &ListTile{Title: sn.Title, Subtitle: sn.Subtitle}
	case "card":
		return &Card{Children: children()}
	case "switch":
		return &Switch{Label: sn.Label, On: sn.On}
	case "table":
		return &Table{Headers: sn.Headers, Rows: sn.Rows}
	case "column", "row", "stack", "padding", "center", "expanded", "scroll":
		return &Container{Kind: ContainerKind(sn.Kind), Children: children()}
	default:
		// Unrecognized kinds stay in the tree but are never read.
		return &Unknown{Kind: sn.Kind, Children: children()}
	}
}
