package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.German

	message.SetString(lang, "web.nav.schedule", "Zeitplan")
	message.SetString(lang, "web.nav.changelog", "Änderungen")

	message.SetString(lang, "web.changelog.title", "Zeitplan-Änderungen")
	message.SetString(lang, "web.changelog.empty", "Es wurde noch kein Zeitplan veröffentlicht.")

	message.SetString(lang, "web.schedule.version_label", "Version %s, veröffentlicht am %s")
	message.SetString(lang, "web.schedule.versions", "Versionen:")
	message.SetString(lang, "web.schedule.exports", "Downloads:")
	message.SetString(lang, "web.schedule.no_talks", "Keine Vorträge an diesem Tag.")

	message.SetString(lang, "web.error.page_title_not_found", "Seite nicht gefunden")
	message.SetString(lang, "web.error.page_title_server_error", "Etwas ist schiefgelaufen")
	message.SetString(lang, "web.error.title_not_found", "Seite nicht gefunden")
	message.SetString(lang, "web.error.title_server_error", "Etwas ist schiefgelaufen")
	message.SetString(lang, "web.error.message_not_found", "Die gesuchte Seite existiert nicht.")
	message.SetString(lang, "web.error.message_server_error", "Bitte versuche es gleich noch einmal.")
}
