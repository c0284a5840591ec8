package writer

import (
	"strings"
	"testing"
)

func TestEscapeDoc(t *testing.T) {
	for in, want := range map[string]string{
		`plain text`:       `plain text`,
		`say "hi"`:         `say \"hi\"`,
		`a \ backslash`:    `a \\ backslash`,
		`both "\" at once`: `both \"\\\" at once`,
	} {
		if got := EscapeDoc(in); got != want {
			t.Errorf("EscapeDoc(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWriteDoc(t *testing.T) {
	w := NewRustWriter()
	w.WriteDoc(`hello "world"`)
	if got, want := w.String(), "#[doc=\"hello \\\"world\\\"\"]\n"; got != want {
		t.Errorf("WriteDoc output = %q, want %q", got, want)
	}

	w.Reset()
	w.WriteDoc("")
	if w.String() != "" {
		t.Errorf("empty doc emitted %q", w.String())
	}
}

func TestWriteTypeAlias(t *testing.T) {
	w := NewRustWriter()
	w.WriteTypeAlias("TagList", "Vec<Tag>")
	if got, want := w.String(), "pub type TagList = Vec<Tag>;\n"; got != want {
		t.Errorf("WriteTypeAlias output = %q, want %q", got, want)
	}
}

func TestWriteBlock(t *testing.T) {
	w := NewRustWriter()
	w.WriteBlock("impl Thing", func() {
		w.W("fn f() {}\n")
	})
	if got, want := w.String(), "impl Thing {\nfn f() {}\n}\n"; got != want {
		t.Errorf("WriteBlock output = %q, want %q", got, want)
	}
}

func TestFrameBanner(t *testing.T) {
	w := NewRustWriter()
	w.W("pub struct Thing;\n")

	framed := string(w.Frame())
	if !strings.HasPrefix(framed, "// ===") {
		t.Errorf("frame does not start with banner: %q", framed[:20])
	}
	if !strings.Contains(framed, "This file is generated by crategen. DO NOT EDIT.") {
		t.Error("frame missing generated-code notice")
	}
	if !strings.HasSuffix(framed, "pub struct Thing;\n") {
		t.Error("frame dropped buffer contents")
	}
}

func TestBaseWriterAppends(t *testing.T) {
	var w BaseWriter
	w.W("a %d", 1)
	w.Line()
	w.W("b")
	if got, want := w.String(), "a 1\nb"; got != want {
		t.Errorf("buffer = %q, want %q", got, want)
	}
	if string(w.Bytes()) != w.String() {
		t.Error("Bytes and String disagree")
	}
}
