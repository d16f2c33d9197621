package build

import (
	"fmt"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/types"
)

// Validate checks that every example is complete and that ids are unique.
// Every problem is reported, not just the first.
func Validate(examples []types.Example) error {
	collector := errors.NewErrorCollector()
	seen := make(map[string]string, len(examples))

	for i, ex := range examples {
		file := ex.BackendFile
		if file == "" {
			file = fmt.Sprintf("examples[%d]", i)
		}

		switch {
		case ex.ID == "":
			collector.Add(errors.BuildError{File: file, Message: "example has no id", Severity: errors.ErrorSeverityError})
		case ex.Title == "":
			collector.Add(errors.BuildError{File: file, Message: "example has no title", Severity: errors.ErrorSeverityError})
		case ex.Description == "":
			collector.Add(errors.BuildError{File: file, Message: "example has no description", Severity: errors.ErrorSeverityError})
		}

		if ex.ID == "" {
			continue
		}
		if first, dup := seen[ex.ID]; dup {
			collector.Add(errors.BuildError{
				File:     file,
				Message:  fmt.Sprintf("duplicate example id %q, already defined by %s", ex.ID, first),
				Severity: errors.ErrorSeverityError,
			})
			continue
		}
		seen[ex.ID] = file
	}

	return collector.Err()
}
