package build

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// AccessorFile is the name of the generated Go accessor inside the output directory.
const AccessorFile = "examples_data.go"

// DefaultImportBase is the import path prefix of the packages the accessor depends on.
const DefaultImportBase = "github.com/conneroisu/showcase/internal"

var accessorTemplate = template.Must(template.New("accessor").Parse(`// Code generated by showcase generate. DO NOT EDIT.

package {{.Package}}

import (
	_ "embed"
	"sync"

	"{{.ImportBase}}/build"
	"{{.ImportBase}}/types"
)

//go:embed {{.DataFile}}
var examplesYAML string

var loadExamples = sync.OnceValues(func() ([]types.Example, error) {
	return build.DecodeDataset([]byte(examplesYAML))
})

// Examples returns the embedded dataset in build order. The YAML is decoded
// once per process; later calls return copies of the same records.
func Examples() ([]types.Example, error) {
	examples, err := loadExamples()
	if err != nil {
		return nil, err
	}
	out := make([]types.Example, len(examples))
	copy(out, examples)

	return out, nil
}

// MustExamples is like Examples but panics when the embedded dataset is corrupt.
func MustExamples() []types.Example {
	examples, err := Examples()
	if err != nil {
		panic(err)
	}

	return examples
}

// Raw returns the embedded YAML document.
func Raw() string {
	return examplesYAML
}
`))

// AccessorOptions parameterizes the generated accessor.
type AccessorOptions struct {
	Package    string
	ImportBase string
	DataFile   string
}

// GenerateAccessor renders the gofmt'd source of the dataset accessor.
func GenerateAccessor(opts AccessorOptions) ([]byte, error) {
	if opts.Package == "" {
		return nil, fmt.Errorf("accessor package name is required")
	}
	if opts.ImportBase == "" {
		opts.ImportBase = DefaultImportBase
	}
	if opts.DataFile == "" {
		opts.DataFile = DatasetFile
	}

	var buf bytes.Buffer
	if err := accessorTemplate.Execute(&buf, opts); err != nil {
		return nil, fmt.Errorf("rendering accessor: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting accessor: %w", err)
	}

	return src, nil
}
