// Package emit renders the generated TypeScript from the extracted model.
// Rendering is pure string construction: identical descriptors, metadata, and
// feature label always produce byte-identical output.
package emit

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/actionplatform/actiongen/pkg/ident"
	"github.com/actionplatform/actiongen/pkg/ioutil"
	"github.com/actionplatform/actiongen/pkg/metadata"
	"github.com/actionplatform/actiongen/pkg/schema"
	"github.com/actionplatform/actiongen/pkg/templateutils"
)

//go:embed templates/*.ts.tmpl
var templates embed.FS

var (
	enumTmpl        = templateutils.MustTemplate(templates, "templates/enum.ts.tmpl")
	metaTableTmpl   = templateutils.MustTemplate(templates, "templates/meta_table.ts.tmpl")
	actionTypeTmpl  = templateutils.MustTemplate(templates, "templates/action_type.ts.tmpl")
	constructorTmpl = templateutils.MustTemplate(templates, "templates/constructor.ts.tmpl")
)

const headerImports = `import { Action } from "redux";
import * as defs from "./definitions";`

const wrapperDecl = `export interface ActionWithMeta<P, M> extends Action {
    payload: P;
    meta: M;
}`

type (
	fieldView struct {
		Name     string
		Type     string
		Optional bool
	}

	// actionView is one record's fully derived form: every identifier and
	// literal the templates need, computed from the record name alone.
	actionView struct {
		Const    string
		Value    string
		TypeName string
		Ctor     string
		Params   string
		Fields   []fieldView
		Meta     metadata.Metadata
	}

	Emitter struct {
		views   []actionView
		imports []string
	}
)

// New prepares an emitter for the schema. metaByAction holds the built
// metadata for each descriptor, in descriptor order. The feature label, when
// non-empty, prefixes every enum value for the run.
func New(s *schema.Schema, metaByAction []metadata.Metadata, feature string) (*Emitter, error) {
	if len(metaByAction) != len(s.Actions) {
		return nil, errors.Errorf("have %d metadata entries for %d actions", len(metaByAction), len(s.Actions))
	}

	views := make([]actionView, len(s.Actions))
	for i, desc := range s.Actions {
		value := ident.ToSentence(desc.Name)
		if feature != "" {
			value = fmt.Sprintf("[%s] %s", feature, value)
		}

		fields := make([]fieldView, len(desc.Fields))
		params := make([]string, len(desc.Fields))
		for j, f := range desc.Fields {
			fields[j] = fieldView(f)
			optional := ""
			if f.Optional {
				optional = "?"
			}
			params[j] = fmt.Sprintf("%s%s: %s", f.Name, optional, f.Type)
		}

		views[i] = actionView{
			Const:    ident.ToConstantCase(desc.Name),
			Value:    value,
			TypeName: desc.Name + "Action",
			Ctor:     ident.Uncapitalize(desc.Name),
			Params:   strings.Join(params, ", "),
			Fields:   fields,
			Meta:     metaByAction[i],
		}
	}

	return &Emitter{views: views, imports: s.Imports}, nil
}

// Emit renders the whole file and feeds it to the sink line by line. Nothing
// reaches the sink unless the entire render succeeds.
func (e *Emitter) Emit(sink ioutil.LineSink) error {
	text, err := e.Render()
	if err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if err := sink.WriteLine(line); err != nil {
			return errors.Wrap(err, "could not write generated line")
		}
	}
	return nil
}

// Render produces the generated file as one string: the fixed imports and the
// pass-through imports, the enum, the metadata table, the generic wrapper
// interface, one payload interface per record, the union, and one constructor
// per record, with blank lines between sections.
func (e *Emitter) Render() (string, error) {
	header := headerImports
	if len(e.imports) > 0 {
		header += "\n" + strings.Join(e.imports, "\n")
	}
	sections := []string{header}

	enum, err := renderTemplate(enumTmpl, e.views)
	if err != nil {
		return "", err
	}
	metaTable, err := renderTemplate(metaTableTmpl, e.views)
	if err != nil {
		return "", err
	}
	sections = append(sections, enum, metaTable, wrapperDecl)

	for _, view := range e.views {
		actionType, err := renderTemplate(actionTypeTmpl, view)
		if err != nil {
			return "", err
		}
		sections = append(sections, actionType)
	}

	sections = append(sections, e.unionBlock())

	for _, view := range e.views {
		constructor, err := renderTemplate(constructorTmpl, view)
		if err != nil {
			return "", err
		}
		sections = append(sections, constructor)
	}

	return strings.Join(sections, "\n\n") + "\n", nil
}

func (e *Emitter) unionBlock() string {
	if len(e.views) == 0 {
		// never is the empty union
		return "export type ActionTypes = never;"
	}
	sb := new(strings.Builder)
	sb.WriteString("export type ActionTypes =")
	for _, view := range e.views {
		fmt.Fprintf(sb, "\n    | %s", view.TypeName)
	}
	sb.WriteString(";")
	return sb.String()
}

func renderTemplate(t *template.Template, data any) (string, error) {
	buf := new(bytes.Buffer)
	if err := t.Execute(buf, data); err != nil {
		return "", errors.Wrapf(err, "could not render %s", t.Name())
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
