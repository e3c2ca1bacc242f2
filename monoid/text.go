package monoid

import (
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// TextSummary is a summary for text fragments.
//
// It is additive, so a tree of summaries reports bytes, lines and display width
// for any range of fragments.
//
// Widths are measured per fragment. If a grapheme cluster spans the boundary
// between two fragments, e.g. "e" followed by a combining accent "\u0301",
// AddText reports the sum of both widths, which may be larger than the width of
// Summarize on the concatenated text. Clients should split text at grapheme
// boundaries if they need exact widths.
type TextSummary struct {
	Bytes int // length in bytes
	Lines int // number of newline characters
	Width int // display width in fixed-width ‘en’s
}

var setupGraphemes sync.Once

// Summarize measures a text fragment, using a Latin context to determine
// display width.
func Summarize(s string) TextSummary {
	return SummarizeIn(s, uax11.LatinContext)
}

// SummarizeIn measures a text fragment. Display width is determined by
// splitting s into grapheme clusters and measuring them with respect to context
// (see package uax11). context may be nil, in which case a Latin context is used.
func SummarizeIn(s string, context *uax11.Context) TextSummary {
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(func() {
		grapheme.SetupGraphemeClasses()
	})
	return TextSummary{
		Bytes: len(s),
		Lines: strings.Count(s, "\n"),
		Width: uax11.StringWidth(grapheme.StringFromString(s), context),
	}
}

// AddText combines two text summaries. Bytes and lines are always exact,
// width is exact only for fragments split at grapheme boundaries.
func AddText(left, right TextSummary) TextSummary {
	return TextSummary{
		Bytes: left.Bytes + right.Bytes,
		Lines: left.Lines + right.Lines,
		Width: left.Width + right.Width,
	}
}
