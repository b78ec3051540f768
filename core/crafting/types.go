package crafting

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedLine is returned when a required-item line violates the data contract.
var ErrMalformedLine = errors.New("malformed required item line")

// ItemRecord is one entry in a storage pool.
type ItemRecord struct {
	ItemID   uint32 `json:"item_id"`
	Category uint32 `json:"category"`
	Stack    int    `json:"stack"`
}

// ItemMatchKind tells how a required line's target id is matched against records.
type ItemMatchKind int

// The zero value is not a kind, so a line decoded without one fails validation.
const (
	Item ItemMatchKind = iota + 1
	Category
	Group
)

var kindNames = map[ItemMatchKind]string{
	Item:     "item",
	Category: "category",
	Group:    "group",
}

func (k ItemMatchKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Valid reports whether k is one of the known match kinds.
func (k ItemMatchKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// MarshalText implements encoding.TextMarshaler.
func (k ItemMatchKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %d", ErrMalformedLine, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ItemMatchKind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind parses "item", "category" or "group" (case-insensitive).
func ParseKind(s string) (ItemMatchKind, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if name == needle {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown kind %q", ErrMalformedLine, s)
}

// RequiredItemLine is one ingredient entry of a recipe.
type RequiredItemLine struct {
	TargetID      uint32        `json:"target_id"`
	RequiredStack int           `json:"required_stack"`
	Kind          ItemMatchKind `json:"kind"`
}

// IsEmpty reports whether the line carries no requirement.
func (l RequiredItemLine) IsEmpty() bool {
	return l.TargetID == 0 || l.RequiredStack == 0
}

// Validate checks the line against the data contract.
func (l RequiredItemLine) Validate() error {
	if l.RequiredStack < 0 {
		return fmt.Errorf("%w: negative required stack %d for target %d", ErrMalformedLine, l.RequiredStack, l.TargetID)
	}
	if !l.Kind.Valid() {
		return fmt.Errorf("%w: unknown kind %d for target %d", ErrMalformedLine, int(l.Kind), l.TargetID)
	}
	return nil
}

// GroupDefinition lists the item ids accepted for a group requirement.
type GroupDefinition struct {
	GroupID       uint32   `json:"group_id"`
	MemberItemIDs []uint32 `json:"member_item_ids"`
}

// GroupResolver maps a group id to its definition.
type GroupResolver interface {
	TryResolve(groupID uint32) (GroupDefinition, bool)
}

// GroupTable is an in-memory GroupResolver.
type GroupTable map[uint32]GroupDefinition

// TryResolve implements GroupResolver.
func (t GroupTable) TryResolve(groupID uint32) (GroupDefinition, bool) {
	def, ok := t[groupID]
	return def, ok
}

// RecipeRequirement is an ordered list of lines plus the resolver needed for group lines.
type RecipeRequirement struct {
	Lines  []RequiredItemLine
	Groups GroupResolver
}

// Validate checks every line and reports the first violation with its index.
func (r RecipeRequirement) Validate() error {
	for i, line := range r.Lines {
		if err := line.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
	}
	return nil
}
