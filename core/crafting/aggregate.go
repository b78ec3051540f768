package crafting

// Predicate selects the records that count toward a requirement.
type Predicate func(ItemRecord) bool

// MatchItem matches records with the given item id.
func MatchItem(id uint32) Predicate {
	return func(r ItemRecord) bool { return r.ItemID == id }
}

// MatchCategory matches records in the given category.
func MatchCategory(category uint32) Predicate {
	return func(r ItemRecord) bool { return r.Category == category }
}

// Aggregate sums the stacks of every matching record across pools.
// Negative stacks never contribute.
func Aggregate(pools []StoragePool, match Predicate) int {
	total := 0
	for _, pool := range pools {
		for _, rec := range pool.Items {
			if rec.Stack <= 0 || !match(rec) {
				continue
			}
			total += rec.Stack
		}
	}
	return total
}

// Available returns how much of a line's target exists in pools.
//
// A group line counts only its first non-zero member. An unresolved group, or one with
// no non-zero member, yields 0.
func Available(pools []StoragePool, line RequiredItemLine, groups GroupResolver) int {
	switch line.Kind {
	case Item:
		return Aggregate(pools, MatchItem(line.TargetID))
	case Category:
		return Aggregate(pools, MatchCategory(line.TargetID))
	case Group:
		member, ok := firstMember(line.TargetID, groups)
		if !ok {
			return 0
		}
		return Aggregate(pools, MatchItem(member))
	default:
		return 0
	}
}

func firstMember(groupID uint32, groups GroupResolver) (uint32, bool) {
	if groups == nil {
		return 0, false
	}
	def, ok := groups.TryResolve(groupID)
	if !ok {
		return 0, false
	}
	for _, id := range def.MemberItemIDs {
		if id == 0 {
			continue
		}
		return id, true
	}
	return 0, false
}
