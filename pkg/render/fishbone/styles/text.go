package styles

import (
	"bytes"
	"encoding/xml"
)

// EscapeXML escapes markup-special characters for safe embedding in SVG
// text and attribute content. All user-supplied text must pass through
// here before serialization.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
