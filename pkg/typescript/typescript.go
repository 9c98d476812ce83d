// Package typescript wraps the tree-sitter TypeScript parser behind the small
// surface the generator needs: parse a declaration file once, expose its tree
// and raw program text, and clean up doc-comment text. The generator never
// interprets TypeScript semantics; declared types are carried as opaque text.
package typescript

import (
	"bytes"
	"context"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

type SourceFile struct {
	path    string
	program []byte
	tree    *sitter.Tree
}

// NewFile parses a TypeScript declaration source. A file the parser cannot
// process at all is fatal; syntactically odd regions inside an otherwise
// parseable file surface later, when extraction hits them.
func NewFile(path string, content io.Reader) (*SourceFile, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, content); err != nil {
		return nil, errors.Wrapf(err, "error reading from %s", path)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(typescript.GetLanguage())
	tree, err := parser.ParseCtx(context.Background(), nil, buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", path)
	}

	return &SourceFile{
		path:    path,
		program: buf.Bytes(),
		tree:    tree,
	}, nil
}

func (f *SourceFile) Path() string {
	return f.path
}

func (f *SourceFile) Tree() *sitter.Tree {
	return f.tree
}

func (f *SourceFile) Program() []byte {
	return f.program
}

// Language returns the tree-sitter grammar used for declaration files.
func Language() *sitter.Language {
	return typescript.GetLanguage()
}

// we need [ \t] instead of \s, because \s includes newlines in (?m) mode
var blockCommentMarginRegexp = regexp.MustCompile(`(?m)^\s*[*]*[ \t]*`)
var lineCommentMarkerRegexp = regexp.MustCompile(`//\s*`)

// CleanComment strips comment syntax from a single comment node's text,
// leaving only its content. `//` markers are removed wherever they appear;
// `/* ... */` comments additionally lose their delimiters and any `*` left
// border on each line.
func CleanComment(comment string) string {
	comment = lineCommentMarkerRegexp.ReplaceAllString(comment, "")
	if !strings.HasPrefix(comment, "/*") {
		return comment
	}
	comment = strings.TrimPrefix(comment, "/*")
	comment = strings.TrimSuffix(comment, "*/")
	return blockCommentMarginRegexp.ReplaceAllString(comment, "")
}
