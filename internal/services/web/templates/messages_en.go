package templates

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "web.nav.schedule", "Schedule")
	message.SetString(lang, "web.nav.changelog", "Changelog")

	message.SetString(lang, "web.changelog.title", "Schedule changes")
	message.SetString(lang, "web.changelog.empty", "No schedule has been released yet.")

	message.SetString(lang, "web.schedule.version_label", "Version %s, released %s")
	message.SetString(lang, "web.schedule.versions", "Versions:")
	message.SetString(lang, "web.schedule.exports", "Downloads:")
	message.SetString(lang, "web.schedule.no_talks", "No talks on this day.")

	message.SetString(lang, "web.error.page_title_not_found", "Page not found")
	message.SetString(lang, "web.error.page_title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.title_not_found", "Page not found")
	message.SetString(lang, "web.error.title_server_error", "Something went wrong")
	message.SetString(lang, "web.error.message_not_found", "The page you are looking for does not exist.")
	message.SetString(lang, "web.error.message_server_error", "Please try again in a moment.")
}
