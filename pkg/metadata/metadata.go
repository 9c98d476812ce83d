// Package metadata merges a record's annotations with run-level
// configuration into the metadata object emitted for that record.
package metadata

import (
	"github.com/actionplatform/actiongen/pkg/schema"
)

// Metadata is the merged annotation map for one record. Values are the JSON
// values carried by the record's annotations.
type Metadata map[string]any

// Build merges the descriptor's annotations in declaration order, so a later
// annotation silently overrides an earlier one with the same name. When a
// feature label is configured for the run it is applied last under the
// "feature" key and wins over any annotation of that name.
func Build(desc schema.ActionDescriptor, feature string) Metadata {
	meta := make(Metadata, len(desc.Annotations))
	for _, ann := range desc.Annotations {
		meta[ann.Name] = ann.Arg
	}
	if feature != "" {
		meta["feature"] = feature
	}
	return meta
}
