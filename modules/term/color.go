package term

import (
	"github.com/mgutz/ansi"
)

// Paint colors s with an mgutz/ansi style such as "green+b". LevelNone returns
// s unchanged.
func (v Level) Paint(s, style string) string {
	if v == LevelNone {
		return s
	}
	return ansi.Color(s, style)
}

func (v Level) Red(s string) string {
	return v.Paint(s, "red+b")
}

func (v Level) Green(s string) string {
	return v.Paint(s, "green+b")
}

func (v Level) Yellow(s string) string {
	return v.Paint(s, "yellow")
}
