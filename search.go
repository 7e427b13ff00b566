package prelude

// The six lookup procedures are instances of one generic scan, parameterized
// along two axes: how to project a list element into the value compared
// against the key, and which equality predicate to compare with. The member
// family projects the element itself; the association family projects the
// head of each entry.

// projection selects the value compared against the search key at each
// position of the list.
type projection func(elem Value) Value

// equivalence is one of the three equality predicates (equal.go): identity,
// value, or structural equality.
type equivalence func(key, candidate Value) bool

// searcher fixes the projection axis and returns a constructor over the
// equality axis. On a hit the resulting procedure returns the element the
// projection was applied to — the full association entry, not its key or
// value — and on a miss it returns #f, never the empty list.
func searcher(name string, project projection) func(same equivalence) ProcedureFunc {
	return func(same equivalence) ProcedureFunc {
		return func(args Vector) Value {
			if len(args) != 2 {
				panic(name + " expects two arguments")
			}

			l, ok := args[1].(*Pair)
			if !ok && args[1] != nil {
				panic("the second argument to " + name + " must be a list")
			}

			for l != nil {
				if same(args[0], project(l.car)) {
					return l.car
				}
				l, _ = l.cdr.(*Pair)
			}

			return Boolean(false)
		}
	}
}

// elemKey projects a member-family element: the element itself.
func elemKey(elem Value) Value {
	return elem
}

// entryKey projects an association-family element: the head of the entry
// pair. A non-pair element is a malformed table.
func entryKey(name string) projection {
	return func(elem Value) Value {
		entry, ok := elem.(*Pair)
		if !ok {
			panic("the second argument to " + name + " must be a list of pairs")
		}
		return entry.car
	}
}

// structural wraps equal with a fresh cycle guard per comparison.
func structural(key, candidate Value) bool {
	return equal(key, candidate, map[interface{}]struct{}{})
}

var (
	ListMemq   = searcher("memq", elemKey)(eq)
	ListMemv   = searcher("memv", elemKey)(eqv)
	ListMember = searcher("member", elemKey)(structural)

	ListAssq  = searcher("assq", entryKey("assq"))(eq)
	ListAssv  = searcher("assv", entryKey("assv"))(eqv)
	ListAssoc = searcher("assoc", entryKey("assoc"))(structural)
)
