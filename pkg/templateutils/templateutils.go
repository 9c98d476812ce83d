package templateutils

import (
	"embed"
	"encoding/json"
	"strings"
	"text/template"

	sprig "github.com/Masterminds/sprig/v3"
)

// MustTemplate parses an embedded template with the package's function map
// plus sprig's hermetic functions. Templates are compiled into the binary,
// so a parse failure is a programmer error and panics.
func MustTemplate(fs embed.FS, name string) *template.Template {
	content, err := fs.ReadFile(name)
	if err != nil {
		panic(err)
	}
	t, err := template.New(name).
		Funcs(Funcs).
		Funcs(sprig.HermeticTxtFuncMap()).
		Parse(string(content))
	if err != nil {
		panic(err)
	}
	return t
}

var Funcs = template.FuncMap{
	"json": func(v any) (string, error) {
		buf := new(strings.Builder)
		enc := json.NewEncoder(buf)
		if err := enc.Encode(v); err != nil {
			return "", err
		}
		return strings.TrimSpace(buf.String()), nil
	},

	// jsonIndent pretty-prints v for embedding at the given indentation
	// prefix: the first line carries no prefix, every following line does.
	// encoding/json sorts object keys, which keeps output stable across runs.
	"jsonIndent": func(prefix string, v any) (string, error) {
		out, err := json.MarshalIndent(v, prefix, "    ")
		if err != nil {
			return "", err
		}
		return string(out), nil
	},
}
