package text

// Box-drawing primitives for the timetable grid.
const (
	lineLR = "─"
	lineUD = "│"
)

// corner picks the box-drawing glyph joining grid lines in the given
// directions. Callers pass which of the four neighbouring cells carry a
// line into this junction.
func corner(up, down, left, right bool) string {
	switch {
	case up && down && left && right:
		return "┼"
	case up && down && right:
		return "├"
	case up && down && left:
		return "┤"
	case down && left && right:
		return "┬"
	case up && left && right:
		return "┴"
	case down && right:
		return "┌"
	case down && left:
		return "┐"
	case up && right:
		return "└"
	case up && left:
		return "┘"
	case left || right:
		return lineLR
	case up || down:
		return lineUD
	default:
		return " "
	}
}
