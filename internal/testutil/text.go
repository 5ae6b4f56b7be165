package testutil

import (
	"regexp"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rivo/uniseg"
)

// MixedText is a multilingual paragraph that uses CRLF, CR and LF.
const MixedText = "\n" +
	"      Это пример параграфа с пробелами и юникодом.\r\n\n" +
	"    Он содержит строки на русском языке, немного английского, и даже: こんにちは世界！\r\n" +
	"    Here's a sentence with normal ASCII characters, leading spaces, and symbols: @$%&.\r\n" +
	"            مرحبا بك في عالم الترميز الموحد.\n" +
	"    👩‍💻 naïve über é     ​\r"

// Corpus is a set of texts for property tests.
var Corpus = []string{
	"",
	"\r",
	"\n",
	"\r\n",
	"\n\r",
	"\r\r\n\n",
	"no newline at all",
	"line1\r\nline2\rline3",
	"line1\nline2\nline3",
	"already\nfine\n",
	"a\r\rb",
	"emoji😀\r\ntext",
	"👩‍💻\r\n👨‍🔧\r👩‍🔬\n",
	"a\u0301\r\nb\u0323\r",
	"مرحبا\r\nبالعالم\rمرحبا\nبكم",
	"a\u3000b\r\nc\u200Bd\r",
	"separators\u2028are\u2029not newlines\r\n",
	MixedText,
}

// LargeText returns MixedText repeated n times.
func LargeText(n int) string {
	return strings.Repeat(MixedText, n)
}

var anyNewline = regexp.MustCompile("\r\n|\r|\n")

// SplitLines splits s by CRLF, CR and LF.
func SplitLines(s string) []string {
	return anyNewline.Split(s, -1)
}

// StripNewlines removes all CR and LF from s.
func StripNewlines(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

// Graphemes returns grapheme clusters in s.
func Graphemes(s string) []string {
	var gs []string
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		gs = append(gs, g.Str())
	}
	return gs
}

// AssertEquivalent checks that output has the same lines as input and uses only newline as a newline.
func AssertEquivalent(t testing.TB, input, output, newline string) {
	t.Helper()

	if diff := cmp.Diff(SplitLines(input), strings.Split(output, newline)); diff != "" {
		t.Errorf("lines are different\n%s", diff)
	}

	if diff := cmp.Diff(StripNewlines(input), StripNewlines(output)); diff != "" {
		t.Errorf("content is different\n%s", diff)
	}

	rest := strings.ReplaceAll(output, newline, "")
	if strings.ContainsAny(rest, "\r\n") {
		t.Errorf("output contains a newline other than %q: %q", newline, output)
	}

	inLines := SplitLines(input)
	outLines := strings.Split(output, newline)
	for i := 0; i < len(inLines) && i < len(outLines); i++ {
		if diff := cmp.Diff(Graphemes(inLines[i]), Graphemes(outLines[i])); diff != "" {
			t.Errorf("grapheme clusters in line %d are different\n%s", i+1, diff)
		}
	}
}
