package metadata

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/actionplatform/actiongen/pkg/annotation"
	"github.com/actionplatform/actiongen/pkg/schema"
)

func TestBuild(t *testing.T) {
	tests := []struct {
		name        string
		annotations []annotation.Annotation
		feature     string
		want        Metadata
	}{
		{
			name: "no annotations no feature",
			want: Metadata{},
		},
		{
			name: "annotations copied over",
			annotations: []annotation.Annotation{
				{Name: "userGenerated", Arg: true},
				{Name: "group", Arg: "auth"},
			},
			want: Metadata{"userGenerated": true, "group": "auth"},
		},
		{
			name: "later annotation wins over earlier same name",
			annotations: []annotation.Annotation{
				{Name: "foo", Arg: map[string]any{"a": json.Number("1")}},
				{Name: "foo", Arg: map[string]any{"b": json.Number("2")}},
			},
			want: Metadata{"foo": map[string]any{"b": json.Number("2")}},
		},
		{
			name:    "feature label set",
			feature: "auth",
			want:    Metadata{"feature": "auth"},
		},
		{
			name: "feature label wins over feature annotation",
			annotations: []annotation.Annotation{
				{Name: "feature", Arg: "from-annotation"},
			},
			feature: "auth",
			want:    Metadata{"feature": "auth"},
		},
		{
			name: "feature annotation kept without run label",
			annotations: []annotation.Annotation{
				{Name: "feature", Arg: "from-annotation"},
			},
			want: Metadata{"feature": "from-annotation"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert := assert.New(t)

			desc := schema.ActionDescriptor{Name: "GoToThing", Annotations: tt.annotations}
			assert.Equal(tt.want, Build(desc, tt.feature))
		})
	}
}
