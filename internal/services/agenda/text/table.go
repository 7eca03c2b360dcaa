package text

import (
	"strings"
	"time"

	"github.com/callboard/callboard/internal/services/agenda/schedule"
)

const (
	defaultColWidth = 20
	rowStep         = 5 * time.Minute
	tickStep        = 30 * time.Minute
)

// Table renders the schedule as a per-day timetable with default column width.
func Table(loc Localizer, sched schedule.Schedule) string {
	return TableWidth(loc, sched, defaultColWidth)
}

// TableWidth renders the schedule as a per-day timetable. Each room is one
// column of colWidth cells; rows advance in five-minute steps with tick
// marks every half hour.
func TableWidth(loc Localizer, sched schedule.Schedule, colWidth int) string {
	if colWidth < 8 {
		colWidth = defaultColWidth
	}
	var b strings.Builder
	for _, day := range sched.Days {
		b.WriteString("\n")
		b.WriteString(dateStyle.Render(day.Start.Format("2006-01-02")))
		b.WriteString("\n")
		table := dayTable(day, colWidth)
		if table == "" {
			b.WriteString(localize(loc, "agenda.text.no_talks"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(table)
		b.WriteString("\n")
	}
	return b.String()
}

// placedTalk tracks one talk's card lines while its column is being drawn.
type placedTalk struct {
	talk schedule.Talk
	card []string
	next int
}

func (p *placedTalk) nextCardLine(colWidth int) string {
	if p.next < len(p.card) {
		line := p.card[p.next]
		p.next++
		return line
	}
	return strings.Repeat(" ", colWidth)
}

func dayTable(day schedule.Day, colWidth int) string {
	if len(day.Talks()) == 0 {
		return ""
	}

	rooms := make([]string, 0, len(day.Rooms))
	talksByRoom := make(map[string][]*placedTalk, len(day.Rooms))
	for _, room := range day.Rooms {
		rooms = append(rooms, room.Name)
		placed := make([]*placedTalk, 0, len(room.Talks))
		for _, talk := range room.Talks {
			placed = append(placed, &placedTalk{talk: talk, card: buildCard(talk, colWidth)})
		}
		talksByRoom[room.Name] = placed
	}

	first, last := day.Bounds()
	row := first.Truncate(rowStep)
	if row.Before(first) {
		row = row.Add(rowStep)
	}

	var lines []string
	header := make([]string, 0, len(rooms))
	for _, room := range rooms {
		header = append(header, padRight(room, colWidth-2))
	}
	lines = append(lines, "        | "+strings.Join(header, " | "))

	for !row.After(last) {
		lines = append(lines, rowLine(row, rooms, talksByRoom, colWidth))
		row = row.Add(rowStep)
	}
	return strings.Join(lines, "\n")
}

type rowEvents struct {
	starting *placedTalk
	running  *placedTalk
	ending   *placedTalk
}

func eventsAt(row time.Time, placed []*placedTalk) rowEvents {
	var events rowEvents
	for _, p := range placed {
		switch {
		case p.talk.Start.Equal(row):
			events.starting = p
		case p.talk.End.Equal(row):
			events.ending = p
		case p.talk.Start.Before(row) && row.Before(p.talk.End):
			events.running = p
		}
	}
	return events
}

// rowLine draws one five-minute row: the time gutter, then every room
// column separated by box-drawing junctions.
func rowLine(row time.Time, rooms []string, talksByRoom map[string][]*placedTalk, colWidth int) string {
	isTick := row.Truncate(tickStep).Equal(row)
	fill := " "
	gutter := "        "
	if isTick {
		fill = "-"
		gutter = row.Format("15:04") + " --"
	}

	events := make([]rowEvents, len(rooms))
	for idx, room := range rooms {
		events[idx] = eventsAt(row, talksByRoom[room])
	}

	var parts []string
	parts = append(parts, gutter)

	// Left edge of the first room column.
	firstEvents := events[0]
	switch {
	case firstEvents.starting != nil || firstEvents.ending != nil:
		parts = append(parts, corner(firstEvents.ending != nil, firstEvents.starting != nil, false, true)+strings.Repeat(lineLR, colWidth))
	case firstEvents.running != nil:
		parts = append(parts, lineUD+firstEvents.running.nextCardLine(colWidth))
	default:
		parts = append(parts, strings.Repeat(fill, colWidth+1))
	}

	// Junction plus column content for every following room.
	for idx := 1; idx < len(rooms); idx++ {
		left, right := events[idx-1], events[idx]
		parts = append(parts, junction(left, right, fill))
		switch {
		case right.running != nil:
			parts = append(parts, right.running.nextCardLine(colWidth))
		case right.starting != nil || right.ending != nil:
			parts = append(parts, strings.Repeat(lineLR, colWidth))
		default:
			parts = append(parts, strings.Repeat(fill, colWidth))
		}
	}

	// Right edge of the last room column.
	lastEvents := events[len(events)-1]
	switch {
	case lastEvents.starting != nil || lastEvents.ending != nil:
		parts = append(parts, corner(lastEvents.ending != nil, lastEvents.starting != nil, true, false))
	case lastEvents.running != nil:
		parts = append(parts, lineUD)
	default:
		parts = append(parts, fill)
	}

	return strings.Join(parts, "")
}

func junction(left, right rowEvents, fill string) string {
	leftBoundary := left.starting != nil || left.ending != nil
	rightBoundary := right.starting != nil || right.ending != nil
	switch {
	case left.running != nil && rightBoundary:
		return "├"
	case right.running != nil && leftBoundary:
		return "┤"
	case leftBoundary || rightBoundary:
		return corner(
			left.ending != nil || right.ending != nil,
			left.starting != nil || right.starting != nil,
			leftBoundary,
			rightBoundary,
		)
	case left.running != nil || right.running != nil:
		return lineUD
	default:
		return fill
	}
}

// buildCard lays out the text block shown inside a talk's timetable box.
// The card is one line per five-minute row of the talk's duration, minus
// the top and bottom borders.
func buildCard(talk schedule.Talk, colWidth int) []string {
	textWidth := colWidth - 4
	empty := strings.Repeat(" ", colWidth)

	title := talk.Title
	if !talk.HasSubmission() {
		title = talk.Description
	}
	titleLines := wrapText(title, textWidth)
	height := int(talk.Duration()/rowStep) - 1

	maxTitleLines := height - 4
	if height <= 5 {
		maxTitleLines = 1
	}
	if maxTitleLines < 1 {
		maxTitleLines = 1
	}
	if len(titleLines) > maxTitleLines {
		remainder := titleLines[maxTitleLines:]
		titleLines = titleLines[:maxTitleLines]
		last := titleLines[len(titleLines)-1] + " " + strings.Join(remainder, " ")
		lastRunes := []rune(last)
		if len(lastRunes) > textWidth-1 {
			lastRunes = lastRunes[:textWidth-1]
		}
		titleLines[len(titleLines)-1] = string(lastRunes) + "…"
	}

	heightAfterTitle := height - len(titleLines)
	joinSpeakerAndLocale := heightAfterTitle <= 3 && talk.HasSubmission()
	speaker := ""
	if talk.HasSubmission() {
		speaker = talk.DisplaySpeakerNames
	}
	cutoff := textWidth
	if joinSpeakerAndLocale {
		cutoff = textWidth - 4
	}
	if speakerRunes := []rune(speaker); len(speakerRunes) > cutoff {
		speaker = string(speakerRunes[:cutoff-1]) + "…"
	}

	var lines []string
	if height > 4 {
		lines = append(lines, empty)
	}
	for _, line := range titleLines {
		lines = append(lines, "  "+titleStyle.Render(padRight(line, textWidth))+"  ")
	}
	if heightAfterTitle > 2 {
		lines = append(lines, empty)
	}
	switch {
	case speaker != "" && joinSpeakerAndLocale:
		lines = append(lines, "  "+speakerStyle.Render(padRight(speaker, textWidth-4))+"  "+localeStyle.Render(padRight(talk.ContentLocale, 2))+"  ")
	case speaker != "":
		lines = append(lines, "  "+speakerStyle.Render(padRight(speaker, textWidth))+"  ")
		if heightAfterTitle > 4 {
			lines = append(lines, empty)
		}
		lines = append(lines, strings.Repeat(" ", textWidth-2)+"  "+localeStyle.Render(talk.ContentLocale)+"  ")
	case talk.HasSubmission():
		lines = append(lines, strings.Repeat(" ", textWidth-2)+"  "+localeStyle.Render(talk.ContentLocale)+"  ")
	}
	for len(lines) < height+1 {
		lines = append(lines, empty)
	}
	return lines
}
