package text

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "agenda.text.no_speakers", "No speakers")
	message.SetString(lang, "agenda.text.no_talks", "No talks on this day.")
}
