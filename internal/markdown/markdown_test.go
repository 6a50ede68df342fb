package markdown

import (
	"reflect"
	"testing"

	"github.com/fatih/color"
)

func TestRenderMixedMarkup(t *testing.T) {
	frags := Render("Hello **world** and `code` and ```block``` text")

	if len(frags) != 3 {
		t.Fatalf("want 3 fragments, got %d: %+v", len(frags), frags)
	}

	want := []Span{
		{Style: StylePlain, Text: "Hello "},
		{Style: StyleBold, Text: "world"},
		{Style: StylePlain, Text: " and "},
		{Style: StyleCode, Text: "code"},
		{Style: StylePlain, Text: " and "},
	}
	if !reflect.DeepEqual(frags[0].Spans, want) {
		t.Fatalf("unexpected spans: %+v", frags[0].Spans)
	}

	if !frags[1].CodeBlock || frags[1].Code != "block" {
		t.Fatalf("unexpected code block fragment: %+v", frags[1])
	}

	if frags[2].CodeBlock || !reflect.DeepEqual(frags[2].Spans, []Span{{Style: StylePlain, Text: " text"}}) {
		t.Fatalf("unexpected trailing fragment: %+v", frags[2])
	}
}

func TestRenderUnmatchedDelimitersLeftAlone(t *testing.T) {
	for _, in := range []string{"*oops", "say `this", "```still open"} {
		frags := Render(in)
		if got := Plain(frags); got != in {
			t.Fatalf("Render(%q) altered text: %q", in, got)
		}
		for _, f := range frags {
			if f.CodeBlock {
				t.Fatalf("Render(%q) produced a code block: %+v", in, frags)
			}
			for _, s := range f.Spans {
				if s.Style != StylePlain {
					t.Fatalf("Render(%q) produced styled span %+v", in, s)
				}
			}
		}
	}
}

func TestRenderEmphasisVariants(t *testing.T) {
	frags := Render("a *b* and __c__ and _d_")
	want := []Span{
		{Style: StylePlain, Text: "a "},
		{Style: StyleItalic, Text: "b"},
		{Style: StylePlain, Text: " and "},
		{Style: StyleBold, Text: "c"},
		{Style: StylePlain, Text: " and "},
		{Style: StyleItalic, Text: "d"},
	}
	if len(frags) != 1 || !reflect.DeepEqual(frags[0].Spans, want) {
		t.Fatalf("unexpected spans: %+v", frags)
	}
}

func TestRenderCodeWinsOverEmphasis(t *testing.T) {
	// Inline code is substituted first, so markup inside it stays literal.
	frags := Render("`a **b** c`")
	want := []Span{{Style: StyleCode, Text: "a **b** c"}}
	if len(frags) != 1 || !reflect.DeepEqual(frags[0].Spans, want) {
		t.Fatalf("unexpected spans: %+v", frags)
	}
}

func TestRenderLineBreaks(t *testing.T) {
	frags := Render("one\ntwo\n\nthree")
	want := []Span{
		{Style: StylePlain, Text: "one"},
		{Style: StyleLineBreak},
		{Style: StylePlain, Text: "two"},
		{Style: StyleLineBreak},
		{Style: StyleLineBreak},
		{Style: StylePlain, Text: "three"},
	}
	if len(frags) != 1 || !reflect.DeepEqual(frags[0].Spans, want) {
		t.Fatalf("unexpected spans: %+v", frags)
	}
}

func TestRenderCodeBlockTrimsAndPreservesOrder(t *testing.T) {
	frags := Render("before ```\nfirst\n``` middle ```second``` after")
	if len(frags) != 5 {
		t.Fatalf("want 5 fragments, got %d: %+v", len(frags), frags)
	}
	if !frags[1].CodeBlock || frags[1].Code != "first" {
		t.Fatalf("first block not trimmed: %+v", frags[1])
	}
	if !frags[3].CodeBlock || frags[3].Code != "second" {
		t.Fatalf("second block wrong: %+v", frags[3])
	}
	if frags[0].CodeBlock || frags[2].CodeBlock || frags[4].CodeBlock {
		t.Fatalf("text fragments misclassified: %+v", frags)
	}
}

func TestRenderEmptyInput(t *testing.T) {
	if frags := Render(""); len(frags) != 0 {
		t.Fatalf("Render(\"\") = %+v, want no fragments", frags)
	}
}

func TestSprintPalettes(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = prev }()

	frags := Render("hi\n```\nx := 1\ny := 2\n```")
	out := UserPalette().Sprint(frags)
	want := "hi\n\n    x := 1\n    y := 2\n"
	if out != want {
		t.Fatalf("Sprint = %q, want %q", out, want)
	}
	if a := AssistantPalette().Sprint(frags); a != want {
		t.Fatalf("assistant palette text content diverged: %q", a)
	}
}
