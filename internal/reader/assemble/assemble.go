// Package assemble turns a classified screen into one spoken description by
// running a fixed per-screen sequence of extractors and joining whatever
// they produce. Failure handling is two-tier: a stage that panics or finds
// nothing contributes nothing, and a pipeline that produces nothing at all
// yields the canned fallback sentence. The result is never empty.
package assemble

import (
	"strings"

	"github.com/sirupsen/logrus"

	"dojoreader/internal/community"
	"dojoreader/internal/reader/fallback"
	"dojoreader/internal/reader/fields"
	"dojoreader/internal/reader/media"
	"dojoreader/internal/reader/screen"
	"dojoreader/internal/reader/walk"
	"dojoreader/internal/ui"
)

// Context carries everything one assembly run may read. Tree and Store may
// both be nil; every stage tolerates that. A MaxMedia of zero means the
// default cap.
type Context struct {
	Screen   screen.Type
	Route    string
	Tree     ui.Node
	Store    *community.Store
	MaxMedia int
}

type stage struct {
	name string
	run  func(Context) string
}

// pageNames provides the spoken page announcement per screen. The "Pagina:"
// prefix is structural; the post-processor strips it before speech.
var pageNames = map[screen.Type]string{
	screen.TypeHome:           "Pagina: Home, kata overzicht",
	screen.TypeForum:          "Pagina: Forum",
	screen.TypeForumDetail:    "Pagina: Forum bericht",
	screen.TypeCreatePost:     "Pagina: Nieuw bericht",
	screen.TypeEditPost:       "Pagina: Bericht bewerken",
	screen.TypeCreateKata:     "Pagina: Nieuwe kata",
	screen.TypeEditKata:       "Pagina: Kata bewerken",
	screen.TypeAuth:           "Pagina: Inloggen",
	screen.TypeProfile:        "Pagina: Profiel",
	screen.TypeFavorites:      "Pagina: Favorieten",
	screen.TypeUserManagement: "Pagina: Gebruikersbeheer",
	screen.TypeAvatar:         "Pagina: Avatar kiezen",
	screen.TypeAccessibility:  "Pagina: Toegankelijkheid",
	screen.TypeForm:           "Pagina: Formulier",
	screen.TypeOverlay:        "Er is een venster geopend",
}

func pageInfo(ctx Context) string {
	if ctx.Tree == nil {
		// Nothing is mounted; announcing the page would claim more than
		// we know. The pipeline fallback covers this.
		return ""
	}
	return pageNames[ctx.Screen]
}

func bodyText(ctx Context) string {
	return strings.Join(walk.CollectText(ctx.Tree), ". ")
}

func interactive(ctx Context) string {
	return strings.Join(walk.CollectInteractive(ctx.Tree), ". ")
}

func mediaItems(ctx Context) string {
	return media.DescribeTreeMax(ctx.Tree, ctx.MaxMedia)
}

// fieldStage reads form fields matching pred. The sentinel for "ran but
// found nothing" is spoken as-is on form screens: hearing that a form has no
// fields is information, silence is not.
func fieldStage(pred fields.Predicate) func(Context) string {
	return func(ctx Context) string {
		return fields.Read(ctx.Tree, pred)
	}
}

func kataCount(ctx Context) string {
	if ctx.Store == nil {
		return ""
	}
	return ctx.Store.KataSummary()
}

func postCount(ctx Context) string {
	if ctx.Store == nil {
		return ""
	}
	return ctx.Store.PostSummary()
}

func favoriteCount(ctx Context) string {
	if ctx.Store == nil {
		return ""
	}
	return ctx.Store.FavoriteSummary()
}

func greeting(ctx Context) string {
	if ctx.Store == nil {
		return ""
	}
	return ctx.Store.Greeting()
}

var (
	contentFields = fieldStage(fields.ByRole(fields.RoleContent, fields.RoleName, fields.RoleOther))
	authFields    = fieldStage(fields.ByRole(fields.RoleAuth, fields.RoleName))
	profileFields = fieldStage(fields.ByRole(fields.RoleName, fields.RoleAuth))
	anyFields     = fieldStage(fields.Any)
)

// pipelines fixes the extractor order per screen type: page info first, then
// body text, then forms, interactive elements, media and data counts.
var pipelines = map[screen.Type][]stage{
	screen.TypeHome: {
		{"page", pageInfo},
		{"greeting", greeting},
		{"kataCount", kataCount},
		{"body", bodyText},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeForum: {
		{"page", pageInfo},
		{"postCount", postCount},
		{"body", bodyText},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeForumDetail: {
		{"page", pageInfo},
		{"body", bodyText},
		{"media", mediaItems},
		{"interactive", interactive},
	},
	screen.TypeCreatePost: {
		{"page", pageInfo},
		{"fields", contentFields},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeEditPost: {
		{"page", pageInfo},
		{"fields", contentFields},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeCreateKata: {
		{"page", pageInfo},
		{"fields", contentFields},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeEditKata: {
		{"page", pageInfo},
		{"fields", contentFields},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeAuth: {
		{"page", pageInfo},
		{"body", bodyText},
		{"fields", authFields},
		{"interactive", interactive},
	},
	screen.TypeProfile: {
		{"page", pageInfo},
		{"greeting", greeting},
		{"body", bodyText},
		{"fields", profileFields},
		{"interactive", interactive},
	},
	screen.TypeFavorites: {
		{"page", pageInfo},
		{"favoriteCount", favoriteCount},
		{"body", bodyText},
		{"interactive", interactive},
		{"media", mediaItems},
	},
	screen.TypeUserManagement: {
		{"page", pageInfo},
		{"body", bodyText},
		{"interactive", interactive},
	},
	screen.TypeAvatar: {
		{"page", pageInfo},
		{"body", bodyText},
		{"media", mediaItems},
		{"interactive", interactive},
	},
	screen.TypeAccessibility: {
		{"page", pageInfo},
		{"body", bodyText},
		{"interactive", interactive},
	},
	screen.TypeForm: {
		{"page", pageInfo},
		{"body", bodyText},
		{"anyFields", anyFields},
		{"interactive", interactive},
	},
	screen.TypeOverlay: {
		{"page", pageInfo},
		{"body", bodyText},
		{"anyFields", anyFields},
		{"interactive", interactive},
	},
}

// optionalFields reads all fields but swallows the sentinel: on a generic
// screen a missing form is the normal case, not worth announcing.
func optionalFields(ctx Context) string {
	out := fields.Read(ctx.Tree, fields.Any)
	if out == fields.NoFieldsFound {
		return ""
	}
	return out
}

var genericPipeline = []stage{
	{"body", bodyText},
	{"optionalFields", optionalFields},
	{"interactive", interactive},
	{"media", mediaItems},
}

// Describe runs the pipeline for ctx.Screen and joins the non-empty stage
// results with periods. It never panics and never returns "".
func Describe(ctx Context) string {
	stages, ok := pipelines[ctx.Screen]
	if !ok {
		stages = genericPipeline
	}

	var parts []string
	for _, s := range stages {
		result := runStage(ctx, s)
		if strings.TrimSpace(result) == "" {
			continue
		}
		parts = append(parts, result)
	}

	if len(parts) == 0 {
		return fallback.Sentence(ctx.Screen)
	}
	return strings.Join(parts, ". ")
}

// runStage isolates one extractor; a panic costs that stage its output and
// nothing else.
func runStage(ctx Context, s stage) (result string) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("stage", s.name).
				WithField("screen", ctx.Screen.String()).
				WithField("panic", r).
				Warn("extractor stage failed, continuing without it")
			result = ""
		}
	}()
	return s.run(ctx)
}
