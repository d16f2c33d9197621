package scanner

import (
	"strings"
	"testing"
)

// FuzzParseMetadata checks that parsing never panics and that accepted
// metadata always satisfies the acceptance rules.
func FuzzParseMetadata(f *testing.F) {
	f.Add("// @title T\n// @description D\n// @html_start\n// <p>x</p>\n// @html_end\n")
	f.Add("// @title\n// @description D\n")
	f.Add("// @html_start\n// @title T\n// @description D\n")
	f.Add("//@title T\r\n//@description D\r\n")
	f.Add("// @titles nope\n// @description D\n")
	f.Add("// @title T\n// @description D\n// @html_start\n//\n\n// <p>x</p>  \n// @html_end\n")
	f.Add("")

	f.Fuzz(func(t *testing.T, src string) {
		if len(src) > 1<<16 {
			t.Skip("source too long")
		}

		meta, ok := ParseMetadata(src)
		if !ok {
			if meta.Title != "" || meta.Description != "" || meta.HTML != "" {
				t.Errorf("rejected source returned metadata: %+v", meta)
			}
			return
		}

		if meta.Title == "" || meta.Description == "" {
			t.Errorf("accepted metadata without title or description: %+v", meta)
		}
		if meta.Title != strings.TrimSpace(meta.Title) {
			t.Errorf("title not trimmed: %q", meta.Title)
		}
		if meta.HTML != "" && (!strings.HasSuffix(meta.HTML, "\n") || strings.HasSuffix(meta.HTML, "\n\n")) {
			t.Errorf("html must end in exactly one newline: %q", meta.HTML)
		}
		if strings.HasPrefix(meta.HTML, "\n") {
			t.Errorf("html starts with a blank line: %q", meta.HTML)
		}
	})
}
