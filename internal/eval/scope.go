package eval

// ScopeID addresses a scope record inside an Arena.
type ScopeID int32

// NoScope is the parent of the global scope and of closed scopes.
const NoScope ScopeID = -1

type scopeRecord struct {
	parent   ScopeID
	bindings map[string]Value
}

// Arena owns every scope record created during one evaluation. Records
// reference their parent by index, so extended scopes share the parent
// live while closed scopes are parentless copies.
type Arena struct {
	records []scopeRecord
}

// NewArena creates an arena holding only the global scope.
func NewArena() *Arena {
	a := &Arena{}
	a.alloc(NoScope)
	return a
}

// Global returns the id of the global scope.
func (a *Arena) Global() ScopeID {
	return 0
}

func (a *Arena) alloc(parent ScopeID) ScopeID {
	a.records = append(a.records, scopeRecord{
		parent:   parent,
		bindings: make(map[string]Value),
	})
	return ScopeID(len(a.records) - 1)
}

// Extend creates a child scope sharing the parent live: definitions
// added to the parent later remain visible through the child.
func (a *Arena) Extend(parent ScopeID) ScopeID {
	return a.alloc(parent)
}

// Close snapshots everything reachable from s into a fresh parentless
// record. Bindings are copied outermost first so inner shadows win.
// Later mutations of s or its ancestors never reach the snapshot.
func (a *Arena) Close(s ScopeID) ScopeID {
	var chain []ScopeID
	for id := s; id != NoScope; id = a.records[id].parent {
		chain = append(chain, id)
	}

	snap := a.alloc(NoScope)
	for i := len(chain) - 1; i >= 0; i-- {
		for name, v := range a.records[chain[i]].bindings {
			a.records[snap].bindings[name] = v
		}
	}
	return snap
}

// Get resolves name by walking the parent chain.
func (a *Arena) Get(s ScopeID, name string) (Value, bool) {
	for id := s; id != NoScope; id = a.records[id].parent {
		if v, ok := a.records[id].bindings[name]; ok {
			return v, true
		}
	}
	return Value{}, false
}

// Set writes name into the record s itself, shadowing any binding of
// the same name further up the chain.
func (a *Arena) Set(s ScopeID, name string, v Value) {
	a.records[s].bindings[name] = v
}
