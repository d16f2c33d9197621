package build

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/conneroisu/showcase/internal/errors"
	"github.com/conneroisu/showcase/internal/types"
)

// DatasetFile is the name of the serialized dataset inside the output directory.
const DatasetFile = "examples_data.yaml"

// dataset is the on-disk document shape.
type dataset struct {
	Examples []types.Example `yaml:"examples"`
}

// EncodeDataset serializes examples under a top-level `examples` sequence.
// Keys keep a fixed order and html is written as a literal block scalar when
// that form decodes back to the same text; otherwise it is double quoted.
func EncodeDataset(examples []types.Example) ([]byte, error) {
	quoted := make([]bool, len(examples))
	for i, ex := range examples {
		quoted[i] = !literalSafe(ex.HTML)
	}

	data, err := encodeExamples(examples, quoted)
	if err != nil {
		return nil, err
	}

	mismatched, err := htmlMismatches(data, examples)
	if err != nil {
		return nil, err
	}
	if len(mismatched) == 0 {
		return data, nil
	}

	for _, i := range mismatched {
		quoted[i] = true
	}
	if data, err = encodeExamples(examples, quoted); err != nil {
		return nil, err
	}
	if mismatched, err = htmlMismatches(data, examples); err != nil {
		return nil, err
	}
	if len(mismatched) > 0 {
		return nil, errors.NewInternalError(errors.ErrCodeDatasetCorrupt,
			fmt.Sprintf("html of %q does not survive serialization", examples[mismatched[0]].ID), nil)
	}

	return data, nil
}

// literalSafe reports whether s can be held by a literal block scalar. A
// leading blank line confuses the indentation indicator of the emitter.
func literalSafe(s string) bool {
	return !strings.HasPrefix(s, "\n") && !strings.Contains(s, "\r")
}

func encodeExamples(examples []types.Example, quoted []bool) ([]byte, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for i, ex := range examples {
		entry := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		addField(entry, "id", ex.ID, 0)
		addField(entry, "title", ex.Title, 0)
		addField(entry, "description", ex.Description, 0)
		var htmlStyle yaml.Style
		switch {
		case ex.HTML == "":
		case quoted[i]:
			htmlStyle = yaml.DoubleQuotedStyle
		default:
			htmlStyle = yaml.LiteralStyle
		}
		addField(entry, "html", ex.HTML, htmlStyle)
		addField(entry, "backend_file", ex.BackendFile, 0)
		seq.Content = append(seq.Content, entry)
	}

	root := &yaml.Node{
		Kind: yaml.DocumentNode,
		Content: []*yaml.Node{{
			Kind: yaml.MappingNode,
			Tag:  "!!map",
			Content: []*yaml.Node{
				{Kind: yaml.ScalarNode, Tag: "!!str", Value: "examples"},
				seq,
			},
		}},
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encoding dataset: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding dataset: %w", err)
	}

	return buf.Bytes(), nil
}

// htmlMismatches decodes data and returns the indexes whose html differs
// from the source records.
func htmlMismatches(data []byte, examples []types.Example) ([]int, error) {
	var doc dataset
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeDatasetCorrupt, "re-reading encoded dataset", err)
	}
	if len(doc.Examples) != len(examples) {
		return nil, errors.NewInternalError(errors.ErrCodeDatasetCorrupt,
			fmt.Sprintf("encoded dataset holds %d records, want %d", len(doc.Examples), len(examples)), nil)
	}

	var mismatched []int
	for i := range examples {
		if doc.Examples[i].HTML != examples[i].HTML {
			mismatched = append(mismatched, i)
		}
	}

	return mismatched, nil
}

func addField(mapping *yaml.Node, key, value string, style yaml.Style) {
	mapping.Content = append(mapping.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: value, Style: style},
	)
}

// DecodeDataset parses a serialized dataset. Unknown keys, records missing
// required fields, and duplicate ids are all treated as corruption.
func DecodeDataset(data []byte) ([]types.Example, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc dataset
	if err := dec.Decode(&doc); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeDatasetCorrupt, "decoding example dataset", err)
	}

	if err := Validate(doc.Examples); err != nil {
		return nil, errors.NewInternalError(errors.ErrCodeDatasetCorrupt, "validating example dataset", err)
	}

	if doc.Examples == nil {
		doc.Examples = []types.Example{}
	}

	return doc.Examples, nil
}
