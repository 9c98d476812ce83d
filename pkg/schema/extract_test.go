package schema

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/actionplatform/actiongen/pkg/annotation"
	"github.com/actionplatform/actiongen/pkg/typescript"
)

func parse(t *testing.T, source string) *typescript.SourceFile {
	t.Helper()
	file, err := typescript.NewFile("test.ts", strings.NewReader(source))
	require.NoError(t, err)
	return file
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    *Schema
		wantErr bool
	}{
		{
			name:   "empty file",
			source: "",
			want:   &Schema{},
		},
		{
			name: "single record with fields",
			source: `
interface AttemptLogin {
    username: string;
    password: string;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "AttemptLogin",
					Fields: []Field{
						{Name: "username", Type: "string"},
						{Name: "password", Type: "string"},
					},
				}},
			},
		},
		{
			name: "optional field and opaque types",
			source: `
interface GoToThing {
    target: defs.Thing | null;
    speed?: number;
    waypoints: Array<Point>;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "GoToThing",
					Fields: []Field{
						{Name: "target", Type: "defs.Thing | null"},
						{Name: "speed", Type: "number", Optional: true},
						{Name: "waypoints", Type: "Array<Point>"},
					},
				}},
			},
		},
		{
			name: "nested object type stays one field",
			source: `
interface MoveTo {
    position: { x: number; y: number };
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "MoveTo",
					Fields: []Field{
						{Name: "position", Type: "{ x: number; y: number }"},
					},
				}},
			},
		},
		{
			name: "line comment annotations",
			source: `
// Fired when the user logs in.
// @userGenerated
// @group "auth"
interface AttemptLogin {
    username: string;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "AttemptLogin",
					Fields: []Field{
						{Name: "username", Type: "string"},
					},
					Annotations: []annotation.Annotation{
						{Name: "userGenerated", Arg: true},
						{Name: "group", Arg: "auth"},
					},
				}},
			},
		},
		{
			name: "block comment annotations",
			source: `
/**
 * @foo {"a": 1}
 * @foo {"b": 2}
 */
interface Thing {
    id: string;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "Thing",
					Fields: []Field{
						{Name: "id", Type: "string"},
					},
					Annotations: []annotation.Annotation{
						{Name: "foo", Arg: map[string]any{"a": json.Number("1")}},
						{Name: "foo", Arg: map[string]any{"b": json.Number("2")}},
					},
				}},
			},
		},
		{
			name: "imports pass through and other declarations are ignored",
			source: `
import { Point } from "./geometry";
import * as helpers from "./helpers";

type Alias = string;

interface MoveTo {
    point: Point;
}

const ignored = 3;`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "MoveTo",
					Fields: []Field{
						{Name: "point", Type: "Point"},
					},
				}},
				Imports: []string{
					`import { Point } from "./geometry";`,
					`import * as helpers from "./helpers";`,
				},
			},
		},
		{
			name: "comment before non-record declaration does not leak",
			source: `
// @userGenerated
type Alias = string;

interface Thing {
    id: string;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "Thing",
					Fields: []Field{
						{Name: "id", Type: "string"},
					},
				}},
			},
		},
		{
			name: "exported record with doc comment",
			source: `
// @userGenerated
export interface Thing {
    id: string;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{{
					Name: "Thing",
					Fields: []Field{
						{Name: "id", Type: "string"},
					},
					Annotations: []annotation.Annotation{
						{Name: "userGenerated", Arg: true},
					},
				}},
			},
		},
		{
			name: "records keep declaration order",
			source: `
interface First {
    a: string;
}
interface Second {
    b: string;
}`,
			want: &Schema{
				Actions: []ActionDescriptor{
					{Name: "First", Fields: []Field{{Name: "a", Type: "string"}}},
					{Name: "Second", Fields: []Field{{Name: "b", Type: "string"}}},
				},
			},
		},
		{
			name: "malformed annotation argument",
			source: `
// @foo {not json}
interface Thing {
    id: string;
}`,
			wantErr: true,
		},
		{
			name: "duplicate record names rejected",
			source: `
interface Thing {
    a: string;
}
interface Thing {
    b: string;
}`,
			wantErr: true,
		},
		{
			name: "member without a type",
			source: `
interface Thing {
    id;
}`,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			got, err := Extract(parse(t, tt.source))
			if tt.wantErr {
				assert.Error(err)
			} else if assert.NoError(err) {
				assert.Equal(tt.want, got)
			}
		})
	}
}

func TestExtractErrorKinds(t *testing.T) {
	t.Run("duplicate record error carries both positions", func(t *testing.T) {
		assert := assert.New(t)

		_, err := Extract(parse(t, "interface A { x: string; }\ninterface A { y: string; }"))
		var dup *DuplicateRecordError
		if assert.ErrorAs(err, &dup) {
			assert.Equal("A", dup.Name)
			assert.Equal(uint32(0), dup.First.Row)
			assert.Equal(uint32(1), dup.Second.Row)
		}
	})

	t.Run("malformed tag error names the tag", func(t *testing.T) {
		assert := assert.New(t)

		_, err := Extract(parse(t, "// @foo nope\ninterface A { x: string; }"))
		var malformed *annotation.MalformedTagError
		if assert.ErrorAs(err, &malformed) {
			assert.Equal("foo", malformed.Tag)
		}
	})

	t.Run("untyped member reports record and member", func(t *testing.T) {
		assert := assert.New(t)

		_, err := Extract(parse(t, "interface A {\n    id;\n}"))
		var unrenderable *UnrenderableTypeError
		if assert.ErrorAs(err, &unrenderable) {
			assert.Equal("A", unrenderable.Record)
			assert.Equal("id", unrenderable.Member)
		}
	})
}
