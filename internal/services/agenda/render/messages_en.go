package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func init() {
	lang := language.English

	message.SetString(lang, "changelog.first_schedule", "We released our first schedule!")
	message.SetString(lang, "changelog.by_speakers", "by %s")
	message.SetString(lang, "changelog.new_talks.one", "We have a new session: %s.")
	message.SetString(lang, "changelog.new_talks.many", "We have new sessions!")
	message.SetString(lang, "changelog.canceled_talks.one", "We sadly had to cancel a session: %s.")
	message.SetString(lang, "changelog.canceled_talks.many", "Sadly, we had to cancel sessions:")
	message.SetString(lang, "changelog.moved_talks.one", "We have moved a session around: %s.")
	message.SetString(lang, "changelog.moved_talks.many", "We had to move some sessions around:")
}
