package hierarchy

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

type yamlNode struct {
	Name         string      `yaml:"name"`
	GoName       string      `yaml:"goName"`
	Identifier   string      `yaml:"identifier"`
	OwnedRepr    string      `yaml:"ownedRepr"`
	BorrowedRepr string      `yaml:"borrowedRepr"`
	Copy         bool        `yaml:"copy"`
	Children     []*yamlNode `yaml:"children"`
}

type yamlSchema struct {
	Name      string      `yaml:"name"`
	Imports   []string    `yaml:"imports"`
	Datatypes []*yamlNode `yaml:"datatypes"`
}

// Load reads a YAML schema document from r and validates it.
func Load(r io.Reader) (*Schema, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML schema document and validates it.
func Parse(data []byte) (*Schema, error) {
	var ys yamlSchema
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	s := &Schema{
		Name:    ys.Name,
		Imports: ys.Imports,
	}
	for _, yn := range ys.Datatypes {
		s.Roots = append(s.Roots, yn.node())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (yn *yamlNode) node() *Node {
	n := &Node{
		Name:         yn.Name,
		GoName:       yn.GoName,
		Identifier:   yn.Identifier,
		OwnedRepr:    yn.OwnedRepr,
		BorrowedRepr: yn.BorrowedRepr,
		Copy:         yn.Copy,
	}
	for _, c := range yn.Children {
		n.Children = append(n.Children, c.node())
	}
	return n
}
