package favorite

import (
	"fmt"
	"strings"
)

// String renders the reference as "type:id".
func (r Ref) String() string {
	return r.Type + ":" + r.ID
}

func (r Ref) IsZero() bool {
	return r.Type == "" && r.ID == ""
}

// ParseRef parses the "type:id" form produced by Ref.String.
func ParseRef(s string) (Ref, error) {
	typ, id, ok := strings.Cut(s, ":")
	if !ok || typ == "" || id == "" {
		return Ref{}, fmt.Errorf("invalid ref %q", s)
	}
	return Ref{Type: typ, ID: id}, nil
}

// TargetsAs narrows a hydrated map to a concrete entity type. Values that are
// not a T are dropped.
func TargetsAs[T any](hydrated map[string]any) map[string]T {
	result := make(map[string]T, len(hydrated))
	for id, v := range hydrated {
		if t, ok := v.(T); ok {
			result[id] = t
		}
	}
	return result
}
