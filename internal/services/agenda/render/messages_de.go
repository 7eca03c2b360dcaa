package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	message.SetString(lang, "changelog.first_schedule", "Wir haben unseren ersten Zeitplan veröffentlicht!")
	message.SetString(lang, "changelog.by_speakers", "von %s")
	message.SetString(lang, "changelog.new_talks.one", "Wir haben eine neue Session: %s.")
	message.SetString(lang, "changelog.new_talks.many", "Wir haben neue Sessions!")
	message.SetString(lang, "changelog.canceled_talks.one", "Wir mussten leider eine Session absagen: %s.")
	message.SetString(lang, "changelog.canceled_talks.many", "Leider mussten wir diese Sessions absagen:")
	message.SetString(lang, "changelog.moved_talks.one", "Wir haben eine Session verschoben: %s.")
	message.SetString(lang, "changelog.moved_talks.many", "Wir mussten einige Sessions verschieben:")
}
