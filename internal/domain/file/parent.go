package file

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const rootKey = "0"

// ParentID is either the root sentinel or a reference to a folder record.
// Listing may also carry a numeric literal taken from a malformed query
// value; such a parent matches no record.
type ParentID struct {
	ref     uuid.UUID
	literal string
}

func Root() ParentID { return ParentID{} }

func Ref(id ID) ParentID { return ParentID{ref: id} }

func (p ParentID) IsRoot() bool { return p.ref == uuid.Nil && p.literal == "" }

// ID returns the referenced record id, if any.
func (p ParentID) ID() (ID, bool) { return p.ref, p.ref != uuid.Nil }

// Key is the stored form of the parent: "0" for root.
func (p ParentID) Key() string {
	switch {
	case p.ref != uuid.Nil:
		return p.ref.String()
	case p.literal != "":
		return p.literal
	default:
		return rootKey
	}
}

func (p ParentID) String() string { return p.Key() }

// MarshalJSON renders root as the integer 0 and anything else as a string.
func (p ParentID) MarshalJSON() ([]byte, error) {
	if p.IsRoot() {
		return []byte(rootKey), nil
	}
	return json.Marshal(p.Key())
}

// ParentFromKey is the inverse of Key.
func ParentFromKey(key string) ParentID {
	if key == "" || key == rootKey {
		return Root()
	}
	if id, err := uuid.Parse(key); err == nil {
		return Ref(id)
	}
	return ParentID{literal: key}
}

// ParseQueryParent reads a listing parentId. Values that are not record ids
// fall back to their numeric reading; non-numeric values mean root.
func ParseQueryParent(raw string) ParentID {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Root()
	}
	if id, err := uuid.Parse(raw); err == nil {
		return Ref(id)
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f == 0 || math.IsNaN(f) {
		return Root()
	}
	return ParentID{literal: strconv.FormatFloat(f, 'f', -1, 64)}
}
