// Package fields extracts editable text inputs from a screen tree, infers
// their semantic role from label and hint text, and formats them for speech.
package fields

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"dojoreader/internal/reader/walk"
	"dojoreader/internal/ui"
)

// Kind distinguishes bare text inputs from validated form inputs.
type Kind string

const (
	KindTextField Kind = "textField"
	KindFormField Kind = "formField"
)

// Info is a transient record of one mounted input widget. It is rebuilt on
// every walk and never stored.
type Info struct {
	Label    string
	Hint     string
	Value    string
	Kind     Kind
	Required bool
	Password bool
}

// Role is a semantic category inferred from label/hint keywords.
type Role string

const (
	RoleName    Role = "name"
	RoleAuth    Role = "auth"
	RoleContent Role = "content"
	RoleOther   Role = "other"
)

// NoFieldsFound is the sentinel spoken when a reader ran but matched nothing.
// It is deliberately non-empty so callers can tell "found nothing" apart from
// "was not invoked".
const NoFieldsFound = "Geen invoervelden gevonden"

// roleKeywords maps each role to the label/hint substrings that select it,
// in Dutch and English. The table is data, not control flow, so the policy
// can be tested and extended on its own.
var roleKeywords = map[Role][]string{
	RoleName: {
		"naam", "name", "gebruikersnaam", "username", "weergavenaam",
	},
	RoleAuth: {
		"wachtwoord", "password", "e-mail", "email", "inloggen", "login",
	},
	RoleContent: {
		"titel", "title", "inhoud", "content", "bericht", "message",
		"beschrijving", "description", "omschrijving", "tekst", "text",
	},
}

// roleOrder fixes the classification precedence: auth keywords outrank name
// keywords ("gebruikersnaam" on a login screen is still an auth field).
var roleOrder = []Role{RoleAuth, RoleName, RoleContent}

// Classify infers the role of a field from its label and hint.
func Classify(info Info) Role {
	if info.Password {
		return RoleAuth
	}

	haystack := strings.ToLower(info.Label + " " + info.Hint)
	for _, role := range roleOrder {
		for _, kw := range roleKeywords[role] {
			if strings.Contains(haystack, kw) {
				return role
			}
		}
	}
	return RoleOther
}

// Predicate filters collected fields by role.
type Predicate func(Info) bool

// Any matches every field.
func Any(Info) bool { return true }

// ByRole matches fields classified as one of the given roles.
func ByRole(roles ...Role) Predicate {
	return func(info Info) bool {
		got := Classify(info)
		for _, role := range roles {
			if got == role {
				return true
			}
		}
		return false
	}
}

type fieldCollector struct {
	ui.NopVisitor
	infos []Info
}

func (c *fieldCollector) VisitTextField(n *ui.TextField) {
	c.infos = append(c.infos, Info{
		Label:    n.Label,
		Hint:     n.Hint,
		Value:    n.Value,
		Kind:     KindTextField,
		Required: n.Required,
		Password: n.Password,
	})
}

func (c *fieldCollector) VisitFormField(n *ui.FormField) {
	c.infos = append(c.infos, Info{
		Label:    n.Label,
		Hint:     n.Hint,
		Value:    n.Value,
		Kind:     KindFormField,
		Required: n.Required,
		Password: n.Password,
	})
}

// Collect walks root and returns every input field in visit order.
func Collect(root ui.Node) []Info {
	collector := &fieldCollector{}
	walk.Walk(root, collector)
	return collector.infos
}

// Read collects the fields under root matching pred and formats them as one
// period-joined speech fragment. An empty match yields NoFieldsFound, never
// the empty string.
func Read(root ui.Node, pred Predicate) string {
	var parts []string
	for _, info := range Collect(root) {
		if !pred(info) {
			continue
		}
		parts = append(parts, Format(info))
	}

	if len(parts) == 0 {
		return NoFieldsFound
	}
	return strings.Join(parts, ". ")
}

// Format renders one field as a spoken "label, state" description. Password
// values are never spoken; only their character count is announced.
func Format(info Info) string {
	var prefix []string
	if label := strings.TrimSpace(info.Label); label != "" {
		prefix = append(prefix, label)
	} else if hint := strings.TrimSpace(info.Hint); hint != "" && !info.Password {
		prefix = append(prefix, hint)
	}
	if info.Required {
		prefix = append(prefix, "(verplicht)")
	}
	if info.Password {
		prefix = append(prefix, "wachtwoord veld")
	}

	head := strings.Join(prefix, " ")

	if info.Password {
		if info.Value == "" {
			return head + ", is leeg"
		}
		return fmt.Sprintf("%s, ingevuld met %d karakters", head, utf8.RuneCountInString(info.Value))
	}

	if head == "" {
		head = "invoerveld"
	}
	if strings.TrimSpace(info.Value) == "" {
		return head + " is leeg"
	}
	return head + " bevat: " + info.Value
}
