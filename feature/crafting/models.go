package crafting

import (
	"errors"
	"fmt"
	"strings"

	"craftstore/core/crafting"
)

// ErrRecipeNotFound is matched by RecipeNotFoundError.
var ErrRecipeNotFound = errors.New("recipe not found")

// ErrInvalidStation is returned for an unknown station name.
var ErrInvalidStation = errors.New("invalid station")

// RecipeNotFoundError carries close recipe names for the caller.
type RecipeNotFoundError struct {
	Query       string
	Suggestions []string
}

func (e *RecipeNotFoundError) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("recipe %q not found", e.Query)
	}
	return fmt.Sprintf("recipe %q not found, did you mean: %s", e.Query, strings.Join(e.Suggestions, ", "))
}

// Is lets errors.Is match ErrRecipeNotFound.
func (e *RecipeNotFoundError) Is(target error) bool {
	return target == ErrRecipeNotFound
}

// LineReport describes one required-item slot.
type LineReport struct {
	Slot      int                    `json:"slot"`
	TargetID  uint32                 `json:"target_id"`
	Kind      crafting.ItemMatchKind `json:"kind"`
	Required  int                    `json:"required"`
	InStorage int                    `json:"in_storage"` // house + tool
	Total     int                    `json:"total"`      // bag + house + tool
	Label     string                 `json:"label"`
	Enough    bool                   `json:"enough"`
	Empty     bool                   `json:"empty,omitempty"`
}

// RecipeReport is the evaluation of one recipe for one inventory.
type RecipeReport struct {
	RecipeID  uint32       `json:"recipe_id,omitempty"`
	Name      string       `json:"name,omitempty"`
	Station   string       `json:"station,omitempty"`
	PlayerID  string       `json:"player_id,omitempty"`
	Craftable bool         `json:"craftable"`
	Lines     []LineReport `json:"lines"`
}

// RecipeStatus is one entry of a station's recipe mask.
// Error is set when the recipe's lines could not be evaluated.
type RecipeStatus struct {
	RecipeID  uint32 `json:"recipe_id"`
	Name      string `json:"name"`
	Craftable bool   `json:"craftable"`
	Error     string `json:"error,omitempty"`
}

// PoolsPayload carries inline pool contents.
type PoolsPayload struct {
	Bag   []crafting.ItemRecord `json:"bag"`
	House []crafting.ItemRecord `json:"house"`
	Tool  []crafting.ItemRecord `json:"tool"`
}

// EvaluateRequest is the body of POST /crafting/evaluate.
type EvaluateRequest struct {
	Pools  PoolsPayload                `json:"pools"`
	Lines  []crafting.RequiredItemLine `json:"lines"`
	Groups []crafting.GroupDefinition  `json:"groups"`
}

// Requirement converts the payload into a requirement with its group table.
func (r EvaluateRequest) Requirement() crafting.RecipeRequirement {
	groups := make(crafting.GroupTable, len(r.Groups))
	for _, g := range r.Groups {
		groups[g.GroupID] = g
	}
	return crafting.RecipeRequirement{Lines: r.Lines, Groups: groups}
}

// Snapshot converts the inline pools.
func (r EvaluateRequest) Snapshot() crafting.Snapshot {
	return crafting.NewSnapshot(r.Pools.Bag, r.Pools.House, r.Pools.Tool)
}
