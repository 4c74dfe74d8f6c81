package dutch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPostProcessNormalizesWhitespace(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Karate is traditioneel.", PostProcess("  Karate \n\t is   traditioneel.  "))
}

func TestPostProcessStripsStructuralLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Forum. Opslaan.", PostProcess("Pagina: Forum. Knop: Opslaan"))
	require.Equal(t, "Naam.", PostProcess("Veld: Naam"))
}

func TestPostProcessStripsFillerPhrases(t *testing.T) {
	t.Parallel()

	require.Equal(t, "forum pagina.", PostProcess("Dit is de forum pagina"))
	require.Equal(t, "overzicht.", PostProcess("dit is het overzicht"))
}

func TestPostProcessCollapsesRepeatedPunctuation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Klaar!", PostProcess("Klaar!!!"))
	require.Equal(t, "Einde.", PostProcess("Einde..."))
	require.Equal(t, "Eerste. Tweede.", PostProcess("Eerste. . Tweede"))
}

func TestPostProcessInsertsSpaceAfterPunctuation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Een. Twee, drie.", PostProcess("Een.Twee,drie"))
}

func TestPostProcessExpandsAbbreviations(t *testing.T) {
	t.Parallel()

	require.Equal(t, "T T S staat aan.", PostProcess("TTS staat aan"))
	require.Equal(t, "Dokter Jansen.", PostProcess("Dr. Jansen"))
	require.Equal(t, "De heer De Vries.", PostProcess("Dhr. De Vries"))
	require.Equal(t, "bijvoorbeeld deze kata.", PostProcess("bijv. deze kata"))
}

func TestPostProcessGuaranteesTerminalPunctuation(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Zonder einde.", PostProcess("Zonder einde"))
	require.Equal(t, "Met einde!", PostProcess("Met einde!"))
	require.Equal(t, "Vraag?", PostProcess("Vraag?"))
}

func TestPostProcessEmptyInput(t *testing.T) {
	t.Parallel()

	require.Empty(t, PostProcess(""))
	require.Empty(t, PostProcess("   \n  "))
	require.Empty(t, PostProcess("..."))
}

func TestPostProcessIdempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"Pagina: Forum. Knop: Opslaan. Dit is de forum pagina",
		"TTS staat aan!! Dr. Jansen.Bel   nu",
		"Karate is traditioneel. Naam bevat: Jan",
		"  veel    ruimte  ",
		"Dit is de pagina waar je alles vindt. bijv. katas",
	}

	for _, input := range inputs {
		once := PostProcess(input)
		twice := PostProcess(once)
		require.Equal(t, once, twice, "input %q", input)
	}
}
