package scanner

import (
	"strings"

	"github.com/conneroisu/showcase/internal/types"
)

// Directive markers recognized on `//` comment lines.
const (
	DirectiveTitle       = "@title"
	DirectiveDescription = "@description"
	DirectiveHTMLStart   = "@html_start"
	DirectiveHTMLEnd     = "@html_end"
)

const commentPrefix = "//"

// ParseMetadata extracts example metadata from the text of one source file in
// a single forward pass. It reports false when the file carries no title or no
// description; such files are simply not examples.
//
// Lines between @html_start and @html_end have the comment prefix and exactly
// one following space removed; the rest of the line is kept as written.
// Blank lines inside a block are kept while leading and trailing ones are
// dropped. Several blocks are concatenated, and a block left open at end of
// file keeps what it collected.
func ParseMetadata(src string) (types.Metadata, bool) {
	var (
		meta    types.Metadata
		body    []string
		inBlock bool
	)

	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSuffix(line, "\r")
		comment, isComment := strings.CutPrefix(strings.TrimLeft(line, " \t"), commentPrefix)
		if !isComment {
			if inBlock && strings.TrimSpace(line) == "" {
				body = append(body, "")
			}
			continue
		}

		directive := strings.TrimSpace(comment)
		if value, ok := directiveValue(directive, DirectiveTitle); ok {
			meta.Title = value
			continue
		}
		if value, ok := directiveValue(directive, DirectiveDescription); ok {
			meta.Description = value
			continue
		}
		if _, ok := directiveValue(directive, DirectiveHTMLStart); ok {
			inBlock = true
			continue
		}
		if _, ok := directiveValue(directive, DirectiveHTMLEnd); ok {
			inBlock = false
			continue
		}

		if inBlock {
			body = append(body, strings.TrimPrefix(comment, " "))
		}
	}

	if meta.Title == "" || meta.Description == "" {
		return types.Metadata{}, false
	}

	for len(body) > 0 && body[0] == "" {
		body = body[1:]
	}
	for len(body) > 0 && body[len(body)-1] == "" {
		body = body[:len(body)-1]
	}
	if len(body) > 0 {
		meta.HTML = strings.Join(body, "\n") + "\n"
	}

	return meta, true
}

// directiveValue matches name at the start of s as a whole word and returns
// the trimmed remainder.
func directiveValue(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name)
	if !ok {
		return "", false
	}
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return "", false
	}

	return strings.TrimSpace(rest), true
}
