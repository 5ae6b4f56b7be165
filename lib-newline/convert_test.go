package newline_test

import (
	"strings"
	"testing"

	"github.com/macrat/newline/internal/testutil"
	"github.com/macrat/newline/lib-newline"
)

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Name     string
		Input    string
		Target   newline.Style
		Output   string
		Borrowed bool
	}{
		{"unix/mixed", "line1\r\nline2\rline3", newline.Unix, "line1\nline2\nline3", false},
		{"unix/lf-only", "line1\nline2\nline3", newline.Unix, "line1\nline2\nline3", true},
		{"unix/crlf", "line1\r\nline2\r\nline3", newline.Unix, "line1\nline2\nline3", false},
		{"unix/cr", "line1\rline2\rline3", newline.Unix, "line1\nline2\nline3", false},
		{"unix/all-patterns", "line1\rline2\r\nline3\nline4\r", newline.Unix, "line1\nline2\nline3\nline4\n", false},
		{"unix/empty", "", newline.Unix, "", true},
		{"unix/already-fine", "already\nfine\n", newline.Unix, "already\nfine\n", true},
		{"unix/no-newline", "no newline", newline.Unix, "no newline", true},
		{"unix/trailing-crlf", "line\r\n", newline.Unix, "line\n", false},
		{"unix/trailing-cr", "line\r", newline.Unix, "line\n", false},
		{"unix/double-cr", "a\r\rb", newline.Unix, "a\n\nb", false},
		{"unix/lf-cr", "a\n\rb", newline.Unix, "a\n\nb", false},
		{"unix/only-cr", "\r", newline.Unix, "\n", false},
		{"unix/emoji", "emoji😀\r\ntext", newline.Unix, "emoji😀\ntext", false},
		{"unix/accents", "élève\r\nüber\rcoöperate\nnaïve", newline.Unix, "élève\nüber\ncoöperate\nnaïve", false},
		{"unix/rtl", "مرحبا\r\nبالعالم\rمرحبا\nبكم", newline.Unix, "مرحبا\nبالعالم\nمرحبا\nبكم", false},
		{"unix/combining", "a\u0301\r\nb\u0323\r", newline.Unix, "a\u0301\nb\u0323\n", false},
		{"unix/zwj-emoji", "👩‍💻\r\n👨‍🔧\r👩\n", newline.Unix, "👩‍💻\n👨‍🔧\n👩\n", false},
		{"unix/fullwidth", "a\u3000b\r\nc\u200Bd\r", newline.Unix, "a\u3000b\nc\u200Bd\n", false},
		{"unix/separators", "a\u2028b\u2029c", newline.Unix, "a\u2028b\u2029c", true},

		{"dos/lf", "line1\nline2\nline3", newline.DOS, "line1\r\nline2\r\nline3", false},
		{"dos/crlf-only", "line1\r\nline2\r\nline3", newline.DOS, "line1\r\nline2\r\nline3", true},
		{"dos/cr", "line1\rline2\rline3", newline.DOS, "line1\r\nline2\r\nline3", false},
		{"dos/all-patterns", "line1\r\nline2\rline3\nline4\r", newline.DOS, "line1\r\nline2\r\nline3\r\nline4\r\n", false},
		{"dos/empty", "", newline.DOS, "", true},
		{"dos/no-newline", "no newline", newline.DOS, "no newline", true},
		{"dos/already-fine", "\r\nalready\r\nfine\r\n", newline.DOS, "\r\nalready\r\nfine\r\n", true},
		{"dos/lf-after-crlf", "абв.\r\n\n    Он", newline.DOS, "абв.\r\n\r\n    Он", false},
		{"dos/lf-at-start", "\nабв", newline.DOS, "\r\nабв", false},
		{"dos/trailing-lf", "line\n", newline.DOS, "line\r\n", false},
		{"dos/trailing-cr", "line\r", newline.DOS, "line\r\n", false},
		{"dos/double-cr", "a\r\rb", newline.DOS, "a\r\n\r\nb", false},
		{"dos/lf-cr", "a\n\rb", newline.DOS, "a\r\n\r\nb", false},
		{"dos/only-lf", "\n", newline.DOS, "\r\n", false},
		{"dos/emoji", "👩‍💻\n👨‍🔧\r👩‍🔬\r\n", newline.DOS, "👩‍💻\r\n👨‍🔧\r\n👩‍🔬\r\n", false},
		{"dos/rtl", "مرحبا\nüber\r👨‍🔧", newline.DOS, "مرحبا\r\nüber\r\n👨‍🔧", false},
		{"dos/combining", "a\u0301\nb\u0323\r", newline.DOS, "a\u0301\r\nb\u0323\r\n", false},
		{"dos/separators", "a\u2028b\r\nc\u2029", newline.DOS, "a\u2028b\r\nc\u2029", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Name, func(t *testing.T) {
			t.Parallel()

			r := newline.Convert(tt.Input, tt.Target)

			if r.String() != tt.Output {
				t.Errorf("expected %q but got %q", tt.Output, r.String())
			}

			if r.Borrowed() != tt.Borrowed {
				t.Errorf("expected borrowed=%v but got %v", tt.Borrowed, r.Borrowed())
			}

			if r.Owned() == r.Borrowed() {
				t.Errorf("owned and borrowed have to be exclusive")
			}
		})
	}
}

func TestConvert_properties(t *testing.T) {
	t.Parallel()

	for _, target := range []newline.Style{newline.Unix, newline.DOS} {
		for _, input := range testutil.Corpus {
			output := newline.Convert(input, target)

			testutil.AssertEquivalent(t, input, output.String(), target.Newline())

			if output.Borrowed() != newline.Count(input).Conforms(target) {
				t.Errorf("%s: %q: borrowed=%v but stats reports conforms=%v", target, input, output.Borrowed(), !output.Borrowed())
			}

			again := newline.Convert(output.String(), target)
			if !again.Borrowed() {
				t.Errorf("%s: %q: converted text has to be borrowed in the second conversion", target, input)
			}
			if again.String() != output.String() {
				t.Errorf("%s: %q: second conversion changed the text: %q -> %q", target, input, output.String(), again.String())
			}

			if !strings.HasSuffix(input, "\r") && !strings.HasSuffix(input, "\n") && strings.HasSuffix(output.String(), "\n") {
				t.Errorf("%s: %q: a newline was appended: %q", target, input, output.String())
			}
		}
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	text := newline.Text("line1\r\nline2\rline3\n")

	if s := text.ToUnixNewlines().String(); s != "line1\nline2\nline3\n" {
		t.Errorf("unexpected unix text: %q", s)
	}

	if s := text.ToDOSNewlines().String(); s != "line1\r\nline2\r\nline3\r\n" {
		t.Errorf("unexpected dos text: %q", s)
	}

	if s := newline.ToUnix(string(text)); s != "line1\nline2\nline3\n" {
		t.Errorf("unexpected ToUnix result: %q", s)
	}

	if s := newline.ToDOS(string(text)); s != "line1\r\nline2\r\nline3\r\n" {
		t.Errorf("unexpected ToDOS result: %q", s)
	}
}

func TestConvertBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		Input   string
		Target  newline.Style
		Output  string
		Changed bool
	}{
		{"hello\r\nworld", newline.Unix, "hello\nworld", true},
		{"hello\nworld", newline.Unix, "hello\nworld", false},
		{"hello\nworld", newline.DOS, "hello\r\nworld", true},
		{"hello\r\nworld", newline.DOS, "hello\r\nworld", false},
		{"", newline.DOS, "", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.Target.String()+"/"+tt.Input, func(t *testing.T) {
			t.Parallel()

			input := []byte(tt.Input)
			original := string(input)

			output, changed := newline.ConvertBytes(input, tt.Target)

			if string(output) != tt.Output {
				t.Errorf("expected %q but got %q", tt.Output, output)
			}
			if changed != tt.Changed {
				t.Errorf("expected changed=%v but got %v", tt.Changed, changed)
			}
			if string(input) != original {
				t.Errorf("input was modified: %q", input)
			}
			if !changed && len(input) > 0 && &output[0] != &input[0] {
				t.Errorf("unchanged output has to be the input itself")
			}
		})
	}
}
