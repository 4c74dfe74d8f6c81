// Package fallback supplies canned Dutch sentences for screens whose content
// extraction failed or came back empty. Lookup is total and never fails.
package fallback

import "dojoreader/internal/reader/screen"

var sentences = map[screen.Type]string{
	screen.TypeHome:           "Home pagina geladen. Hier vind je het overzicht van alle katas.",
	screen.TypeForum:          "Forum pagina geladen. Hier kun je berichten van de community lezen en plaatsen.",
	screen.TypeForumDetail:    "Forum bericht geopend. Hier lees je het bericht en de reacties.",
	screen.TypeCreatePost:     "Nieuw bericht pagina geladen. Vul een titel en inhoud in om te plaatsen.",
	screen.TypeEditPost:       "Bericht bewerken pagina geladen. Pas de titel of inhoud aan.",
	screen.TypeCreateKata:     "Nieuwe kata pagina geladen. Vul de gegevens van de kata in.",
	screen.TypeEditKata:       "Kata bewerken pagina geladen. Pas de gegevens van de kata aan.",
	screen.TypeAuth:           "Inlogpagina geladen. Vul je e-mailadres en wachtwoord in.",
	screen.TypeProfile:        "Profiel pagina geladen. Hier beheer je je account gegevens.",
	screen.TypeFavorites:      "Favorieten pagina geladen. Hier vind je je opgeslagen katas.",
	screen.TypeUserManagement: "Gebruikersbeheer pagina geladen. Hier beheer je de leden.",
	screen.TypeAvatar:         "Avatar selectie geladen. Kies een profielfoto.",
	screen.TypeAccessibility:  "Toegankelijkheid instellingen geladen. Pas de voorlees instellingen aan.",
	screen.TypeForm:           "Formulier geladen. Vul de velden in en bevestig.",
	screen.TypeOverlay:        "Er is een venster geopend. Sluit het venster om verder te gaan.",
}

const generic = "Pagina geladen. Gebruik de navigatie om verder te gaan."

// Sentence returns the canned description for a screen type. Unknown types
// get the generic sentence.
func Sentence(t screen.Type) string {
	if s, ok := sentences[t]; ok {
		return s
	}
	return generic
}
