// Package screen classifies the current navigation state into one of a fixed
// set of screen categories that select a content-assembly strategy.
package screen

import "strings"

// Type is the closed set of screen categories.
type Type string

const (
	TypeOverlay        Type = "overlay"
	TypeForm           Type = "form"
	TypeAuth           Type = "auth"
	TypeHome           Type = "home"
	TypeProfile        Type = "profile"
	TypeForum          Type = "forum"
	TypeForumDetail    Type = "forumDetail"
	TypeCreatePost     Type = "createPost"
	TypeEditPost       Type = "editPost"
	TypeCreateKata     Type = "createKata"
	TypeEditKata       Type = "editKata"
	TypeFavorites      Type = "favorites"
	TypeUserManagement Type = "userManagement"
	TypeAvatar         Type = "avatarSelection"
	TypeAccessibility  Type = "accessibility"
	TypeGeneric        Type = "generic"
)

func (t Type) String() string {
	return string(t)
}

// All lists every screen type in a stable order.
func All() []Type {
	return []Type{
		TypeOverlay, TypeForm, TypeAuth, TypeHome, TypeProfile,
		TypeForum, TypeForumDetail, TypeCreatePost, TypeEditPost,
		TypeCreateKata, TypeEditKata, TypeFavorites, TypeUserManagement,
		TypeAvatar, TypeAccessibility, TypeGeneric,
	}
}

// exactRoutes maps a normalized route path to its screen type. Parameterized
// detail routes match by prefix below, not here.
var exactRoutes = map[string]Type{
	"/":                TypeHome,
	"/home":            TypeHome,
	"/forum":           TypeForum,
	"/favorites":       TypeFavorites,
	"/profile":         TypeProfile,
	"/login":           TypeAuth,
	"/register":        TypeAuth,
	"/auth":            TypeAuth,
	"/create-post":     TypeCreatePost,
	"/edit-post":       TypeEditPost,
	"/create-kata":     TypeCreateKata,
	"/edit-kata":       TypeEditKata,
	"/user-management": TypeUserManagement,
	"/avatar":          TypeAvatar,
	"/accessibility":   TypeAccessibility,
}

// substringRule resolves routes that carry identifiers or unusual spellings.
// Rules are checked in order; the first whose keywords all occur wins.
type substringRule struct {
	keywords []string
	screen   Type
}

var substringRules = []substringRule{
	{[]string{"forum", "detail"}, TypeForumDetail},
	{[]string{"forum/"}, TypeForumDetail},
	{[]string{"post/"}, TypeForumDetail},
	{[]string{"create", "kata"}, TypeCreateKata},
	{[]string{"edit", "kata"}, TypeEditKata},
	{[]string{"create", "post"}, TypeCreatePost},
	{[]string{"edit", "post"}, TypeEditPost},
	{[]string{"login"}, TypeAuth},
	{[]string{"wachtwoord"}, TypeAuth},
	{[]string{"password"}, TypeAuth},
	{[]string{"avatar"}, TypeAvatar},
	{[]string{"beheer"}, TypeUserManagement},
	{[]string{"form"}, TypeForm},
	{[]string{"forum"}, TypeForum},
	{[]string{"kata"}, TypeHome},
	{[]string{"favoriet"}, TypeFavorites},
	{[]string{"profiel"}, TypeProfile},
}

// Classify assigns a screen type to the current navigation state. An active
// overlay wins over the underlying route: it interrupts the page beneath it
// and must be read first. Classification is total and never errors.
func Classify(route string, overlayShowing bool) Type {
	if overlayShowing {
		return TypeOverlay
	}

	normalized := normalizeRoute(route)
	if t, ok := exactRoutes[normalized]; ok {
		return t
	}

	for _, rule := range substringRules {
		if containsAll(normalized, rule.keywords) {
			return rule.screen
		}
	}

	return TypeGeneric
}

func normalizeRoute(route string) string {
	route = strings.ToLower(strings.TrimSpace(route))
	if route == "" {
		return "/"
	}
	if !strings.HasPrefix(route, "/") {
		route = "/" + route
	}
	if len(route) > 1 {
		route = strings.TrimSuffix(route, "/")
	}
	return route
}

func containsAll(route string, keywords []string) bool {
	for _, kw := range keywords {
		if !strings.Contains(route, kw) {
			return false
		}
	}
	return true
}
