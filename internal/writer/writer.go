// Package writer provides a buffered source writer used by the code
// generators. The output language is Rust, so the helpers speak Rust
// syntax (doc attributes, type aliases, derive lists), but the writer
// itself is just a formatted append buffer.
package writer

import (
	"bytes"
	"fmt"
	"strings"
)

type BaseWriter struct {
	buf bytes.Buffer
}

// W appends formatted text to the buffer.
func (w *BaseWriter) W(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(&w.buf, format, args...)
}

func (w *BaseWriter) Line() {
	w.W("\n")
}

func (w *BaseWriter) Bytes() []byte {
	return w.buf.Bytes()
}

func (w *BaseWriter) String() string {
	return w.buf.String()
}

func (w *BaseWriter) Reset() {
	w.buf.Reset()
}

type RustWriter struct {
	BaseWriter
}

func NewRustWriter() *RustWriter {
	return &RustWriter{}
}

var docEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// EscapeDoc escapes backslashes and double quotes so documentation text
// stays a valid string literal inside a #[doc] attribute.
func EscapeDoc(docs string) string {
	return docEscaper.Replace(docs)
}

// WriteDoc emits a #[doc="..."] attribute. Empty documentation emits
// nothing.
func (w *RustWriter) WriteDoc(docs string) {
	if docs == "" {
		return
	}
	w.W("#[doc=\"%s\"]\n", EscapeDoc(docs))
}

// WriteTypeAlias emits `pub type name = target;`.
func (w *RustWriter) WriteTypeAlias(name, target string) {
	w.W("pub type %s = %s;\n", name, target)
}

// WriteBlock emits `header {` body `}`.
func (w *RustWriter) WriteBlock(header string, body func()) {
	w.W("%s {\n", header)
	body()
	w.W("}\n")
}

// Frame returns the buffer contents prefixed with the generated-code
// banner.
func (w *RustWriter) Frame() []byte {
	var buf bytes.Buffer
	buf.WriteString("// =================================================================\n")
	buf.WriteString("//\n")
	buf.WriteString("//  This file is generated by crategen. DO NOT EDIT.\n")
	buf.WriteString("//\n")
	buf.WriteString("// =================================================================\n\n")
	buf.Write(w.buf.Bytes())
	return buf.Bytes()
}
