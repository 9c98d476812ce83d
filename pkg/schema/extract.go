package schema

import (
	"strings"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"go.uber.org/zap"

	"github.com/actionplatform/actiongen/pkg/annotation"
	"github.com/actionplatform/actiongen/pkg/typescript"
)

// Extract folds over the file's top-level declarations and produces its
// Schema. The fold understands a closed set of node kinds: interface
// declarations (bare or behind an export) become descriptors, import
// statements are collected verbatim, and comment runs are held as the doc
// block for the next declaration. Anything else is ignored and discards any
// pending doc block.
func Extract(file *typescript.SourceFile) (*Schema, error) {
	program := file.Program()
	root := file.Tree().RootNode()

	schema := &Schema{}
	declaredAt := make(map[string]Pos)
	var pendingDoc []string

	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)

		record := recordDeclaration(node)
		switch {
		case node.Type() == "comment":
			pendingDoc = append(pendingDoc, typescript.CleanComment(node.Content(program)))
			continue

		case node.Type() == "import_statement":
			schema.Imports = append(schema.Imports, node.Content(program))

		case record != nil:
			desc, err := extractRecord(record, program, strings.Join(pendingDoc, "\n"))
			if err != nil {
				return nil, err
			}
			if first, ok := declaredAt[desc.Name]; ok {
				return nil, &DuplicateRecordError{
					Name:   desc.Name,
					First:  first,
					Second: pos(node),
				}
			}
			declaredAt[desc.Name] = pos(node)
			schema.Actions = append(schema.Actions, *desc)
			zap.L().Debug("extracted record",
				zap.String("record", desc.Name),
				zap.Int("fields", len(desc.Fields)),
				zap.Int("annotations", len(desc.Annotations)),
			)
		}
		pendingDoc = nil
	}
	return schema, nil
}

// recordDeclaration returns the interface declaration carried by node, or nil
// when node is not a record declaration. An exported record counts as the
// interface it wraps.
func recordDeclaration(node *sitter.Node) *sitter.Node {
	switch node.Type() {
	case "interface_declaration":
		return node
	case "export_statement":
		decl := node.ChildByFieldName("declaration")
		if decl != nil && decl.Type() == "interface_declaration" {
			return decl
		}
	}
	return nil
}

func extractRecord(node *sitter.Node, program []byte, doc string) (*ActionDescriptor, error) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil, errors.Errorf("%s: interface declaration has no name", pos(node))
	}
	name := nameNode.Content(program)

	annotations, err := annotation.Parse(doc)
	if err != nil {
		return nil, errors.Wrapf(err, "error in record %s", name)
	}

	desc := &ActionDescriptor{
		Name:        name,
		Annotations: annotations,
	}

	body := node.ChildByFieldName("body")
	if body == nil {
		return desc, nil
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		// only simple property signatures become fields; methods, index
		// signatures, and comments inside the body are not part of the model
		if member.Type() != "property_signature" {
			continue
		}
		field, err := extractField(member, program, name)
		if err != nil {
			return nil, err
		}
		desc.Fields = append(desc.Fields, *field)
	}
	return desc, nil
}

func extractField(prop *sitter.Node, program []byte, record string) (*Field, error) {
	nameNode := prop.ChildByFieldName("name")
	if nameNode == nil {
		return nil, &UnrenderableTypeError{Record: record, Member: "<unnamed>", Pos: pos(prop)}
	}
	name := nameNode.Content(program)

	typeAnnotation := prop.ChildByFieldName("type")
	if typeAnnotation == nil || typeAnnotation.NamedChildCount() == 0 || prop.HasError() {
		return nil, &UnrenderableTypeError{Record: record, Member: name, Pos: pos(prop)}
	}
	declaredType := typeAnnotation.NamedChild(0).Content(program)

	optional := false
	for i := 0; i < int(prop.ChildCount()); i++ {
		if prop.Child(i).Type() == "?" {
			optional = true
			break
		}
	}

	return &Field{Name: name, Type: declaredType, Optional: optional}, nil
}

func pos(node *sitter.Node) Pos {
	point := node.StartPoint()
	return Pos{Row: point.Row, Column: point.Column}
}
