package profile

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dshills/actionmap/internal/action"
	"github.com/dshills/actionmap/internal/input"
)

// attrEscaper escapes characters that cannot appear raw inside a
// double-quoted XML attribute value.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// writeIndent writes depth tab characters.
func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteByte('\t')
	}
}

// writeAttr writes one attribute with a leading space and an escaped
// value.
func writeAttr(sb *strings.Builder, name, value string) {
	sb.WriteByte(' ')
	sb.WriteString(name)
	sb.WriteString(`="`)
	sb.WriteString(attrEscaper.Replace(value))
	sb.WriteByte('"')
}

// EncodeBinding writes one binding element at the given indentation
// depth. The attribute order is fixed: Device first, then Value for an
// axis or Positive and Negative for a button, then Invert. Buttons
// emit Positive and Negative even when empty.
func EncodeBinding(sb *strings.Builder, b action.Binding, depth int) {
	writeIndent(sb, depth)
	sb.WriteByte('<')
	sb.WriteString(b.Kind.String())
	writeAttr(sb, "Device", b.Device.String())
	if b.Kind == input.KindAxis {
		writeAttr(sb, "Value", b.Positive)
	} else {
		writeAttr(sb, "Positive", b.Positive)
		writeAttr(sb, "Negative", b.Negative)
	}
	writeAttr(sb, "Invert", strconv.FormatBool(b.Invert))
	sb.WriteString("/>\n")
}

// EncodeAction writes one action element and its bindings at the given
// indentation depth. Bindings are written in order, one level deeper.
func EncodeAction(sb *strings.Builder, a *action.Action, depth int) {
	writeIndent(sb, depth)
	sb.WriteString("<action")
	writeAttr(sb, "name", a.Name())
	writeAttr(sb, "threshold", strconv.FormatFloat(a.PressThreshold(), 'g', -1, 64))
	sb.WriteString(">\n")

	for _, b := range a.Bindings() {
		EncodeBinding(sb, b, depth+1)
	}

	writeIndent(sb, depth)
	sb.WriteString("</action>\n")
}

// Encode renders the profile as an actions document.
func (p *Profile) Encode() []byte {
	var sb strings.Builder
	sb.WriteString("<actions>\n")
	for _, a := range p.actions {
		EncodeAction(&sb, a, 1)
	}
	sb.WriteString("</actions>\n")
	return []byte(sb.String())
}

// WriteTo encodes the profile and writes the document to w.
func (p *Profile) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(p.Encode())
	return int64(n), err
}

// SaveFile writes the encoded profile to path.
func (p *Profile) SaveFile(path string) error {
	return os.WriteFile(path, p.Encode(), 0644)
}
