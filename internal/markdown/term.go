package markdown

import (
	"strings"

	"github.com/fatih/color"
)

// Palette styles rendered fragments for one side of the conversation.
// User and assistant messages use distinct code styling, mirroring the
// two-party asymmetry of the chat view.
type Palette struct {
	code   *color.Color
	bold   *color.Color
	italic *color.Color
}

func UserPalette() Palette {
	return Palette{
		code:   color.New(color.FgHiWhite, color.BgBlack),
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

func AssistantPalette() Palette {
	return Palette{
		code:   color.New(color.FgBlack, color.BgHiWhite),
		bold:   color.New(color.Bold),
		italic: color.New(color.Italic),
	}
}

// Sprint renders fragments to a terminal string. Code blocks are set apart
// on their own indented lines; inline spans flow with the surrounding text.
func (p Palette) Sprint(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		if f.CodeBlock {
			b.WriteByte('\n')
			for _, line := range strings.Split(f.Code, "\n") {
				b.WriteString("    ")
				b.WriteString(p.code.Sprint(line))
				b.WriteByte('\n')
			}
			continue
		}
		for _, s := range f.Spans {
			switch s.Style {
			case StyleLineBreak:
				b.WriteByte('\n')
			case StyleCode:
				b.WriteString(p.code.Sprint(s.Text))
			case StyleBold:
				b.WriteString(p.bold.Sprint(s.Text))
			case StyleItalic:
				b.WriteString(p.italic.Sprint(s.Text))
			default:
				b.WriteString(s.Text)
			}
		}
	}
	return b.String()
}
