package handlers

import (
	"mime"
	"strings"
)

// contentDisposition builds an attachment header for filename. Quotes and
// backslashes are escaped by mime.FormatMediaType; non-ASCII names get the
// RFC 2231 filename* form.
func contentDisposition(filename string) string {
	name := sanitizeFilename(filename)
	if name == "" {
		return "attachment"
	}
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": name}); v != "" {
		return v
	}
	return "attachment"
}

func sanitizeFilename(name string) string {
	name = strings.TrimSpace(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, name)
	return strings.TrimSpace(name)
}
