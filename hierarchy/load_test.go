package hierarchy

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const schemaDoc = `
name: nums
imports:
  - math/big
datatypes:
  - name: decimal
    identifier: ex:decimal
    ownedRepr: string
    children:
      - name: integer
        identifier: ex:integer
        ownedRepr: "*big.Int"
  - name: NMTOKEN
    goName: NMToken
    identifier: ex:nmtoken
    ownedRepr: string
  - name: boolean
    identifier: ex:boolean
    ownedRepr: bool
    copy: true
`

func TestLoad(t *testing.T) {
	s, err := Load(strings.NewReader(schemaDoc))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := &Schema{
		Name:    "nums",
		Imports: []string{"math/big"},
		Roots: []*Node{
			{
				Name:       "decimal",
				Identifier: "ex:decimal",
				OwnedRepr:  "string",
				Children: []*Node{
					{Name: "integer", Identifier: "ex:integer", OwnedRepr: "*big.Int"},
				},
			},
			{Name: "NMTOKEN", GoName: "NMToken", Identifier: "ex:nmtoken", OwnedRepr: "string"},
			{Name: "boolean", Identifier: "ex:boolean", OwnedRepr: "bool", Copy: true},
		},
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_BadYAML(t *testing.T) {
	if _, err := Parse([]byte("datatypes: [")); err == nil {
		t.Fatal("Expected an error for malformed YAML")
	}
}

func TestParse_InvalidSchema(t *testing.T) {
	doc := `
name: nums
datatypes:
  - name: decimal
    ownedRepr: string
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Expected a validation error for a node without identifier")
	}
	if !strings.Contains(err.Error(), "identifier") {
		t.Errorf("Expected an identifier message, got %q", err.Error())
	}
}
