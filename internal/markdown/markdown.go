// Package markdown implements the deliberately minimal inline formatter used
// for chat transcripts. It is an order-sensitive text transform, not a
// markdown parser: fenced code blocks are split out first and rendered
// literally, then inline code, bold, italic and line breaks are substituted
// exactly once, left to right, on the remaining plain text. Unmatched
// delimiters stay in the output as literal text.
package markdown

import (
	"regexp"
	"strings"
)

// Style classifies one rendered span of a text fragment.
type Style int

const (
	StylePlain Style = iota
	StyleCode
	StyleBold
	StyleItalic
	StyleLineBreak
)

// Span is one styled run of text. LineBreak spans carry no text.
type Span struct {
	Style Style
	Text  string
}

// Fragment is either a literal fenced code block or a run of inline spans.
type Fragment struct {
	CodeBlock bool
	Code      string
	Spans     []Span
}

var (
	fencedRe     = regexp.MustCompile("(?s)```(.*?)```")
	inlineCodeRe = regexp.MustCompile("`([^`]+)`")
	boldStarRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	boldUnderRe  = regexp.MustCompile(`__(.*?)__`)
	italStarRe   = regexp.MustCompile(`\*(.*?)\*`)
	italUnderRe  = regexp.MustCompile(`_(.*?)_`)
)

// Render transforms text into an ordered list of display fragments.
// It never fails; text with no matching delimiters comes back unmodified
// as a single plain fragment.
func Render(text string) []Fragment {
	var frags []Fragment
	last := 0
	for _, loc := range fencedRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			frags = append(frags, textFragment(text[last:loc[0]]))
		}
		frags = append(frags, Fragment{
			CodeBlock: true,
			Code:      strings.TrimSpace(text[loc[2]:loc[3]]),
		})
		last = loc[1]
	}
	if last < len(text) {
		frags = append(frags, textFragment(text[last:]))
	}
	return frags
}

// textFragment applies the inline substitutions in their fixed order.
// Each pass only touches spans that are still plain, so styled content is
// never reprocessed.
func textFragment(seg string) Fragment {
	spans := []Span{{Style: StylePlain, Text: seg}}
	spans = applyStyle(spans, inlineCodeRe, StyleCode)
	spans = applyStyle(spans, boldStarRe, StyleBold)
	spans = applyStyle(spans, boldUnderRe, StyleBold)
	spans = applyStyle(spans, italStarRe, StyleItalic)
	spans = applyStyle(spans, italUnderRe, StyleItalic)
	spans = breakLines(spans)
	return Fragment{Spans: spans}
}

func applyStyle(spans []Span, re *regexp.Regexp, style Style) []Span {
	var out []Span
	for _, s := range spans {
		if s.Style != StylePlain {
			out = append(out, s)
			continue
		}
		last := 0
		for _, loc := range re.FindAllStringSubmatchIndex(s.Text, -1) {
			if loc[0] > last {
				out = append(out, Span{Style: StylePlain, Text: s.Text[last:loc[0]]})
			}
			out = append(out, Span{Style: style, Text: s.Text[loc[2]:loc[3]]})
			last = loc[1]
		}
		if last < len(s.Text) {
			out = append(out, Span{Style: StylePlain, Text: s.Text[last:]})
		}
	}
	return out
}

func breakLines(spans []Span) []Span {
	var out []Span
	for _, s := range spans {
		if s.Style != StylePlain || !strings.Contains(s.Text, "\n") {
			out = append(out, s)
			continue
		}
		for i, part := range strings.Split(s.Text, "\n") {
			if i > 0 {
				out = append(out, Span{Style: StyleLineBreak})
			}
			if part != "" {
				out = append(out, Span{Style: StylePlain, Text: part})
			}
		}
	}
	return out
}

// Plain flattens fragments back to unstyled text, mainly for logging and
// tests.
func Plain(frags []Fragment) string {
	var b strings.Builder
	for _, f := range frags {
		if f.CodeBlock {
			b.WriteString(f.Code)
			continue
		}
		for _, s := range f.Spans {
			if s.Style == StyleLineBreak {
				b.WriteByte('\n')
				continue
			}
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
