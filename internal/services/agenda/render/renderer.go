// Package render turns a published schedule change set into a localized
// changelog fragment. It is pure presentation: the change set arrives fully
// computed from the upstream diff engine and is never mutated here.
package render

import (
	"fmt"
	"html"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/callboard/callboard/internal/services/agenda/changelog"
)

const (
	// noChangesPlaceholder is shown when a version shipped without changes.
	noChangesPlaceholder = "–"

	deltaArrow = " → "

	defaultOpenQuote  = "“"
	defaultCloseQuote = "”"
	defaultTimeFormat = "2006-01-02 15:04"
)

// Localizer is the minimal message-printer contract required by the renderer.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// RichText renders publisher-authored free text into safe HTML. The
// implementation owns sanitization; the renderer never interprets markup.
type RichText interface {
	RenderHTML(source string) (string, error)
}

// Options carries locale-dependent presentation inputs supplied by the caller.
type Options struct {
	// OpenQuote and CloseQuote wrap session titles. They are configuration
	// because quotation glyphs differ per locale („…“ in German, “…” in
	// English).
	OpenQuote  string
	CloseQuote string
	// TimeFormat lays out start times inside move deltas.
	TimeFormat string
	// RichText renders the free-text version comment. When nil the comment
	// is HTML-escaped verbatim.
	RichText RichText
}

func (o Options) withDefaults() Options {
	if o.OpenQuote == "" {
		o.OpenQuote = defaultOpenQuote
	}
	if o.CloseQuote == "" {
		o.CloseQuote = defaultCloseQuote
	}
	if strings.TrimSpace(o.TimeFormat) == "" {
		o.TimeFormat = defaultTimeFormat
	}
	return o
}

// IntroKind classifies the changelog introduction line.
type IntroKind string

const (
	// IntroComment shows the publisher's free-text comment.
	IntroComment IntroKind = "comment"
	// IntroFirstSchedule shows the fixed first-release message.
	IntroFirstSchedule IntroKind = "first_schedule"
	// IntroNoChanges shows the placeholder for an empty re-release.
	IntroNoChanges IntroKind = "no_changes"
	// IntroNone omits the introduction line entirely.
	IntroNone IntroKind = "none"
)

// Intro is the resolved introduction line of a changelog block.
type Intro struct {
	Kind IntroKind
	HTML string
}

// SectionKind identifies one structured changelog section.
type SectionKind string

const (
	SectionNewTalks      SectionKind = "new"
	SectionCanceledTalks SectionKind = "canceled"
	SectionMovedTalks    SectionKind = "moved"
)

// Section is one structured change section. A singular section carries the
// whole sentence in LeadHTML; a plural section carries a lead sentence plus
// one ItemsHTML entry per talk, in input order.
type Section struct {
	Kind     SectionKind
	Singular bool
	LeadHTML string
	Items    []string
}

// Output is the rendered changelog block, ready for template embedding.
type Output struct {
	Intro    Intro
	Sections []Section
}

// Render maps a change set to a changelog fragment. It returns an error only
// for contract violations (malformed change set) or a failing rich-text
// collaborator; rendering itself cannot fail.
func Render(loc Localizer, opts Options, set changelog.ChangeSet) (Output, error) {
	if err := set.Validate(); err != nil {
		return Output{}, fmt.Errorf("render changelog: %w", err)
	}
	opts = opts.withDefaults()

	intro, err := renderIntro(loc, opts, set)
	if err != nil {
		return Output{}, err
	}

	out := Output{Intro: intro}
	if set.Count > 0 {
		out.Sections = renderSections(loc, opts, set)
	}
	return out, nil
}

// renderIntro resolves the introduction line. First matching branch wins:
// comment, then first release, then the no-changes placeholder.
func renderIntro(loc Localizer, opts Options, set changelog.ChangeSet) (Intro, error) {
	if comment := strings.TrimSpace(set.Comment); comment != "" {
		rendered, err := renderComment(opts, comment)
		if err != nil {
			return Intro{}, fmt.Errorf("render version comment: %w", err)
		}
		return Intro{Kind: IntroComment, HTML: rendered}, nil
	}
	if set.Action == changelog.ActionCreate {
		return Intro{
			Kind: IntroFirstSchedule,
			HTML: localize(loc, "changelog.first_schedule"),
		}, nil
	}
	if set.Count == 0 {
		return Intro{Kind: IntroNoChanges, HTML: noChangesPlaceholder}, nil
	}
	return Intro{Kind: IntroNone}, nil
}

func renderComment(opts Options, comment string) (string, error) {
	if opts.RichText == nil {
		return "<p>" + html.EscapeString(comment) + "</p>", nil
	}
	return opts.RichText.RenderHTML(comment)
}

func renderSections(loc Localizer, opts Options, set changelog.ChangeSet) []Section {
	sections := make([]Section, 0, 3)
	if section, ok := newTalksSection(loc, opts, set.NewTalks); ok {
		sections = append(sections, section)
	}
	if section, ok := canceledTalksSection(loc, opts, set.CanceledTalks); ok {
		sections = append(sections, section)
	}
	if section, ok := movedTalksSection(loc, opts, set.MovedTalks); ok {
		sections = append(sections, section)
	}
	return sections
}

func newTalksSection(loc Localizer, opts Options, talks []changelog.TalkChange) (Section, bool) {
	if len(talks) == 0 {
		return Section{}, false
	}
	items := make([]string, 0, len(talks))
	for _, talk := range talks {
		items = append(items, newTalkItem(loc, opts, talk))
	}
	if len(talks) == 1 {
		return Section{
			Kind:     SectionNewTalks,
			Singular: true,
			LeadHTML: localize(loc, "changelog.new_talks.one", items[0]),
		}, true
	}
	return Section{
		Kind:     SectionNewTalks,
		LeadHTML: localize(loc, "changelog.new_talks.many"),
		Items:    items,
	}, true
}

func canceledTalksSection(loc Localizer, opts Options, talks []changelog.TalkChange) (Section, bool) {
	if len(talks) == 0 {
		return Section{}, false
	}
	items := make([]string, 0, len(talks))
	for _, talk := range talks {
		items = append(items, canceledTalkItem(loc, opts, talk))
	}
	if len(talks) == 1 {
		return Section{
			Kind:     SectionCanceledTalks,
			Singular: true,
			LeadHTML: localize(loc, "changelog.canceled_talks.one", items[0]),
		}, true
	}
	return Section{
		Kind:     SectionCanceledTalks,
		LeadHTML: localize(loc, "changelog.canceled_talks.many"),
		Items:    items,
	}, true
}

func movedTalksSection(loc Localizer, opts Options, talks []changelog.TalkChange) (Section, bool) {
	if len(talks) == 0 {
		return Section{}, false
	}
	items := make([]string, 0, len(talks))
	for _, talk := range talks {
		items = append(items, movedTalkItem(loc, opts, talk))
	}
	if len(talks) == 1 {
		return Section{
			Kind:     SectionMovedTalks,
			Singular: true,
			LeadHTML: localize(loc, "changelog.moved_talks.one", items[0]),
		}, true
	}
	return Section{
		Kind:     SectionMovedTalks,
		LeadHTML: localize(loc, "changelog.moved_talks.many"),
		Items:    items,
	}, true
}

// newTalkItem renders a linked, quoted title with an optional speaker suffix.
func newTalkItem(loc Localizer, opts Options, talk changelog.TalkChange) string {
	return linkedTitle(opts, talk.Submission) + speakerSuffix(loc, talk.Submission)
}

// canceledTalkItem renders an unlinked, quoted title with an optional
// speaker suffix. Canceled talks no longer have a public page to link to.
func canceledTalkItem(loc Localizer, opts Options, talk changelog.TalkChange) string {
	return quotedTitle(opts, talk.Submission.Title) + speakerSuffix(loc, talk.Submission)
}

// movedTalkItem renders a linked, quoted title followed by the old→new delta.
func movedTalkItem(loc Localizer, opts Options, talk changelog.TalkChange) string {
	return linkedTitle(opts, talk.Submission) + " (" + html.EscapeString(moveDelta(opts, talk)) + ")"
}

// moveDelta formats the before/after segment of a moved talk. Precedence:
// start-only, room-only, then the combined form. A talk with nothing
// populated degrades to empty segments instead of failing.
func moveDelta(opts Options, talk changelog.TalkChange) string {
	oldStart := formatStart(opts, talk.OldStart)
	newStart := formatStart(opts, talk.NewStart)

	switch {
	case !talk.RoomChanged() && talk.StartChanged():
		return oldStart + deltaArrow + newStart
	case talk.RoomChanged() && !talk.StartChanged():
		return talk.OldRoom + deltaArrow + talk.NewRoom
	default:
		return joinSegments(oldStart, talk.OldRoom) + deltaArrow + joinSegments(newStart, talk.NewRoom)
	}
}

func formatStart(opts Options, start time.Time) string {
	if start.IsZero() {
		return ""
	}
	return start.Format(opts.TimeFormat)
}

func joinSegments(segments ...string) string {
	filled := make([]string, 0, len(segments))
	for _, segment := range segments {
		if strings.TrimSpace(segment) != "" {
			filled = append(filled, segment)
		}
	}
	return strings.Join(filled, ", ")
}

func quotedTitle(opts Options, title string) string {
	return opts.OpenQuote + html.EscapeString(title) + opts.CloseQuote
}

func linkedTitle(opts Options, submission changelog.Submission) string {
	quoted := quotedTitle(opts, submission.Title)
	url := strings.TrimSpace(submission.PublicURL)
	if url == "" {
		return quoted
	}
	return `<a href="` + html.EscapeString(url) + `">` + quoted + `</a>`
}

// speakerSuffix returns a localized " by <names>" suffix, or nothing for a
// talk without speakers.
func speakerSuffix(loc Localizer, submission changelog.Submission) string {
	if !submission.HasSpeakers() {
		return ""
	}
	names := strings.TrimSpace(submission.DisplaySpeakerNames)
	if names == "" {
		names = strings.Join(submission.Speakers, ", ")
	}
	return " " + localize(loc, "changelog.by_speakers", html.EscapeString(names))
}

func localize(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if asString, ok := key.(string); ok {
			return asString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}
