package text

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	message.SetString(lang, "agenda.text.no_speakers", "Keine Vortragenden")
	message.SetString(lang, "agenda.text.no_talks", "Keine Vorträge an diesem Tag.")
}
