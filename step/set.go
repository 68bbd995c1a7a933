package step

// Set is an immutable membership set over known step ids, built once when a
// rule table is declared.
type Set struct {
	members map[Id]struct{}
}

// Only builds a set from the named steps. Unknown names panic since sets are
// declared in static rule tables.
func Only(names ...string) Set {
	s := Set{members: make(map[Id]struct{}, len(names))}
	for _, name := range names {
		s.members[MustIdOf(name)] = struct{}{}
	}
	return s
}

// AllExcept builds a set from the full enumeration minus the named steps. A
// step added to the enumeration later joins every set declared this way.
func AllExcept(names ...string) Set {
	excluded := Only(names...)
	s := Set{members: make(map[Id]struct{}, len(known))}
	for _, st := range known {
		if !excluded.Contains(st.Id) {
			s.members[st.Id] = struct{}{}
		}
	}
	return s
}

func (s Set) Contains(id Id) bool {
	_, ok := s.members[id]
	return ok
}

func (s Set) Len() int {
	return len(s.members)
}

// Steps lists the members ordered by id.
func (s Set) Steps() []Step {
	out := make([]Step, 0, len(s.members))
	for _, st := range All() {
		if s.Contains(st.Id) {
			out = append(out, st)
		}
	}
	return out
}
