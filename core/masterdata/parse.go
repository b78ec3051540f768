package masterdata

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"craftstore/core/crafting"
)

// ErrMalformed is returned when master data does not follow the expected encoding.
var ErrMalformed = errors.New("malformed master data")

// Host requirement type codes.
const (
	CodeItem     = 0
	CodeCategory = 1
	CodeGroup    = 2
)

// ParseRequiredItem parses the host tuple encoding "(id, stack)".
func ParseRequiredItem(tuple string) (uint32, int, error) {
	parts := strings.Split(tuple, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: required item %q is not an (id, stack) pair", ErrMalformed, tuple)
	}

	rawID := strings.Trim(parts[0], "( ")
	rawStack := strings.Trim(parts[1], " )")

	id, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: item id %q: %v", ErrMalformed, rawID, err)
	}
	stack, err := strconv.Atoi(rawStack)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: stack %q: %v", ErrMalformed, rawStack, err)
	}
	if stack < 0 {
		return 0, 0, fmt.Errorf("%w: negative stack %d", ErrMalformed, stack)
	}

	return uint32(id), stack, nil
}

// KindFromCode maps a host requirement type code to a match kind.
func KindFromCode(code int64) (crafting.ItemMatchKind, error) {
	switch code {
	case CodeItem:
		return crafting.Item, nil
	case CodeCategory:
		return crafting.Category, nil
	case CodeGroup:
		return crafting.Group, nil
	default:
		return 0, fmt.Errorf("%w: unknown requirement type %d", ErrMalformed, code)
	}
}

// ParseLines zips the tuple list with the type list into structured lines.
func ParseLines(tuples []string, codes []int64) ([]crafting.RequiredItemLine, error) {
	if len(tuples) != len(codes) {
		return nil, fmt.Errorf("%w: %d required items but %d types", ErrMalformed, len(tuples), len(codes))
	}

	lines := make([]crafting.RequiredItemLine, 0, len(tuples))
	for i, tuple := range tuples {
		id, stack, err := ParseRequiredItem(tuple)
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		kind, err := KindFromCode(codes[i])
		if err != nil {
			return nil, fmt.Errorf("slot %d: %w", i, err)
		}
		lines = append(lines, crafting.RequiredItemLine{TargetID: id, RequiredStack: stack, Kind: kind})
	}
	return lines, nil
}

func toID(v int64) (uint32, error) {
	if v < 0 || v > math.MaxUint32 {
		return 0, fmt.Errorf("%w: id %d out of range", ErrMalformed, v)
	}
	return uint32(v), nil
}
