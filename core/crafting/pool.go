package crafting

import (
	"fmt"
	"strings"
)

// PoolRole identifies a storage pool.
type PoolRole int

const (
	Bag PoolRole = iota
	HouseStorage
	ToolStorage
)

var (
	// AllStorages decides craftability: the bag counts.
	AllStorages = []PoolRole{Bag, HouseStorage, ToolStorage}
	// StorageOnly excludes the bag, whose amount the game already shows.
	StorageOnly = []PoolRole{HouseStorage, ToolStorage}
)

var roleNames = map[PoolRole]string{
	Bag:          "bag",
	HouseStorage: "house",
	ToolStorage:  "tool",
}

func (r PoolRole) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("pool(%d)", int(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r PoolRole) MarshalText() ([]byte, error) {
	if _, ok := roleNames[r]; !ok {
		return nil, fmt.Errorf("unknown pool role %d", int(r))
	}
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *PoolRole) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

// ParseRole parses "bag", "house" or "tool".
func ParseRole(s string) (PoolRole, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for role, name := range roleNames {
		if name == needle {
			return role, nil
		}
	}
	return 0, fmt.Errorf("unknown pool role %q", s)
}

// StoragePool is an ordered collection of records owned by the host inventory.
type StoragePool struct {
	Role  PoolRole     `json:"role"`
	Items []ItemRecord `json:"items"`
}

// Snapshot is a read-only view of the three pools taken at evaluation time.
type Snapshot struct {
	Bag   StoragePool
	House StoragePool
	Tool  StoragePool
}

// NewSnapshot builds a snapshot from record lists.
func NewSnapshot(bag, house, tool []ItemRecord) Snapshot {
	return Snapshot{
		Bag:   StoragePool{Role: Bag, Items: bag},
		House: StoragePool{Role: HouseStorage, Items: house},
		Tool:  StoragePool{Role: ToolStorage, Items: tool},
	}
}

// Pool returns the pool with the given role.
func (s Snapshot) Pool(role PoolRole) (StoragePool, bool) {
	switch role {
	case Bag:
		return s.Bag, true
	case HouseStorage:
		return s.House, true
	case ToolStorage:
		return s.Tool, true
	default:
		return StoragePool{}, false
	}
}

// Add appends a record to the pool with the given role.
func (s *Snapshot) Add(role PoolRole, rec ItemRecord) error {
	switch role {
	case Bag:
		s.Bag.Role = Bag
		s.Bag.Items = append(s.Bag.Items, rec)
	case HouseStorage:
		s.House.Role = HouseStorage
		s.House.Items = append(s.House.Items, rec)
	case ToolStorage:
		s.Tool.Role = ToolStorage
		s.Tool.Items = append(s.Tool.Items, rec)
	default:
		return fmt.Errorf("unknown pool role %d", int(role))
	}
	return nil
}

// Select returns the pools for the given roles, in order. Unknown roles are ignored.
func (s Snapshot) Select(roles ...PoolRole) []StoragePool {
	pools := make([]StoragePool, 0, len(roles))
	for _, role := range roles {
		if pool, ok := s.Pool(role); ok {
			pools = append(pools, pool)
		}
	}
	return pools
}
