package types

import (
	"slices"
	"sort"
)

// Roster holds the team compositions under optimization.
//
// Teams maps a team name to its member list (student names, duplicate-free,
// in insertion order). Students is the attribute registry keyed by name.
// A membership entry without a registry record is tolerated everywhere and
// silently skipped by consumers; it contributes nothing to statistics and is
// never proposed for a swap.
//
// The roster is not safe for concurrent mutation. The optimizer assumes a
// single writer for the whole run.
type Roster struct {
	// Teams maps team name to member names.
	Teams map[string][]string `json:"teams"`

	// Students maps student name to the student record.
	Students map[string]*Student `json:"students"`
}

// NewRoster creates an empty roster.
func NewRoster() *Roster {
	return &Roster{
		Teams:    make(map[string][]string),
		Students: make(map[string]*Student),
	}
}

// AddTeam registers a team with the given members. Existing members are
// replaced. Members may be added before their student records.
func (r *Roster) AddTeam(name string, members ...string) {
	r.Teams[name] = slices.Clone(members)
}

// AddStudent registers a student record, replacing any previous record with
// the same name. It does not place the student on a team.
func (r *Roster) AddStudent(s *Student) {
	r.Students[s.Name] = s
}

// Get returns the student record for the given name.
//
// Returns:
//   - *Student: The record, or nil if unknown
//   - bool: true if the name is registered
func (r *Roster) Get(name string) (*Student, bool) {
	s, ok := r.Students[name]
	return s, ok
}

// TeamNames returns all team names in ascending order.
//
// This is the canonical iteration order for the whole library: statistics,
// extreme-team selection and candidate generation all walk teams in this
// order so that repeated runs over the same input reproduce the same result.
func (r *Roster) TeamNames() []string {
	names := make([]string, 0, len(r.Teams))
	for name := range r.Teams {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// Members returns the resolved student records of a team, in membership
// order, skipping names without a registry record.
func (r *Roster) Members(team string) []*Student {
	names := r.Teams[team]
	members := make([]*Student, 0, len(names))
	for _, name := range names {
		if s, ok := r.Students[name]; ok {
			members = append(members, s)
		}
	}

	return members
}

// TotalStudents returns the number of membership entries across all teams,
// counting only names with a registry record.
func (r *Roster) TotalStudents() int {
	total := 0
	for _, names := range r.Teams {
		for _, name := range names {
			if _, ok := r.Students[name]; ok {
				total++
			}
		}
	}

	return total
}

// Clone returns a roster with deep-copied team member lists. Student records
// are shared: they are immutable after ingestion, so both rosters may safely
// reference the same records.
func (r *Roster) Clone() *Roster {
	c := NewRoster()
	for name, members := range r.Teams {
		c.Teams[name] = slices.Clone(members)
	}
	for name, s := range r.Students {
		c.Students[name] = s
	}

	return c
}

// Apply performs the membership exchange described by the swap.
//
// The outgoing students leave sw.From for sw.To and the incoming students
// leave sw.To for sw.From. Both removals happen before either append so the
// two directions cannot interfere; moved names are appended at the end of
// their destination list. Team sizes are preserved whenever len(sw.Out) equals
// len(sw.In), which holds for every swap the optimizer generates.
func (r *Roster) Apply(sw Swap) {
	r.Teams[sw.From] = removeNames(r.Teams[sw.From], sw.Out)
	r.Teams[sw.To] = removeNames(r.Teams[sw.To], sw.In)
	r.Teams[sw.To] = append(r.Teams[sw.To], sw.Out...)
	r.Teams[sw.From] = append(r.Teams[sw.From], sw.In...)
}

// removeNames returns members without the given names, preserving order.
func removeNames(members []string, names []string) []string {
	out := members[:0]
	for _, m := range members {
		if !slices.Contains(names, m) {
			out = append(out, m)
		}
	}

	return out
}
