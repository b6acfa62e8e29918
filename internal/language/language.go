package language

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func ParseQuery(source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// CheckOperation parses source and verifies it holds exactly one operation of
// kind op whose root selection is the single field rootField.
func CheckOperation(source string, op Operation, rootField string) error {
	doc, err := ParseQuery(source)
	if err != nil {
		return err
	}
	if len(doc.Operations) != 1 {
		return fmt.Errorf("expected 1 operation, got %d", len(doc.Operations))
	}
	def := doc.Operations[0]
	if def.Operation != op {
		return fmt.Errorf("expected %s operation, got %s", op, def.Operation)
	}
	if len(def.SelectionSet) != 1 {
		return fmt.Errorf("expected a single root field, got %d", len(def.SelectionSet))
	}
	f, ok := def.SelectionSet[0].(*Field)
	if !ok || f.Name != rootField {
		return fmt.Errorf("root field %q not found", rootField)
	}
	return nil
}

// LeafPaths returns the dotted paths of all leaf fields under set, in
// document order.
func LeafPaths(set SelectionSet) []string {
	var out []string
	var walk func(prefix string, set SelectionSet)
	walk = func(prefix string, set SelectionSet) {
		for _, sel := range set {
			f, ok := sel.(*Field)
			if !ok {
				continue
			}
			if len(f.SelectionSet) == 0 {
				out = append(out, prefix+f.Name)
				continue
			}
			walk(prefix+f.Name+".", f.SelectionSet)
		}
	}
	walk("", set)
	return out
}
