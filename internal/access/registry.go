package access

// Entry pairs one role with the ordered features it is permitted to use.
type Entry struct {
	Role     Role      `json:"role" yaml:"role"`
	Features []Feature `json:"features" yaml:"features"`
}

// clone returns a copy of e that shares no memory with it.
func (e Entry) clone() Entry {
	features := make([]Feature, len(e.Features))
	copy(features, e.Features)
	return Entry{Role: e.Role, Features: features}
}

// Decision is the three-valued outcome of Registry.Resolve.
type Decision int

const (
	// UnknownRole means the role has no entry in the registry.
	UnknownRole Decision = iota

	// Denied means the role is registered but lacks the feature.
	Denied

	// Granted means the role is registered and has the feature.
	Granted
)

// String returns the lower-case name used in diagnostics.
func (d Decision) String() string {
	switch d {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	default:
		return "unknown_role"
	}
}

// resolved is the registry's internal form of an Entry.
type resolved struct {
	entry Entry
	set   featureSet
}

// Registry is the immutable role -> feature table.
//
// A Registry is built once by NewRegistry and never modified afterwards.
// All methods are safe for concurrent use.
type Registry struct {
	order  []Role
	byRole map[Role]resolved
}

// NewRegistry builds a Registry from entries. It never fails.
//
// Entries are taken in order and the first entry for a role wins; later
// entries for the same role are ignored. Entries whose role is outside the
// enumeration are ignored. Unknown and repeated features are dropped from
// each entry, keeping the first occurrence. The caller's slices are copied.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{
		byRole: make(map[Role]resolved, len(entries)),
	}

	for _, e := range entries {
		if !e.Role.IsKnown() {
			continue
		}
		if _, exists := r.byRole[e.Role]; exists {
			continue
		}

		var set featureSet
		features := make([]Feature, 0, len(e.Features))
		for _, f := range e.Features {
			bit, ok := featureIndex[f]
			if !ok || set.has(bit) {
				continue
			}
			set = set.set(bit)
			features = append(features, f)
		}

		r.order = append(r.order, e.Role)
		r.byRole[e.Role] = resolved{
			entry: Entry{Role: e.Role, Features: features},
			set:   set,
		}
	}

	return r
}

// FindByRole returns the entry for role.
// ok is false when the role has no entry; that is not an error.
// The returned entry is a copy.
func (r *Registry) FindByRole(role Role) (Entry, bool) {
	res, ok := r.byRole[role]
	if !ok {
		return Entry{}, false
	}
	return res.entry.clone(), true
}

// HasFeature reports whether role is registered and has feature.
// Unknown roles and missing features both yield false; use Resolve to
// tell them apart.
func (r *Registry) HasFeature(role Role, feature Feature) bool {
	return r.Resolve(role, feature) == Granted
}

// Resolve reports whether role has feature, distinguishing an unregistered
// role from a registered role that lacks the feature.
func (r *Registry) Resolve(role Role, feature Feature) Decision {
	res, ok := r.byRole[role]
	if !ok {
		return UnknownRole
	}
	if res.set.contains(feature) {
		return Granted
	}
	return Denied
}

// FeatureCount returns the number of features assigned to role, or 0 if the
// role is not registered.
func (r *Registry) FeatureCount(role Role) int {
	res, ok := r.byRole[role]
	if !ok {
		return 0
	}
	return res.set.count()
}

// TotalKnownFeatures returns the size of the feature enumeration. It does
// not depend on the registry contents.
func (r *Registry) TotalKnownFeatures() int {
	return len(knownFeatures)
}

// Roles returns the registered roles in the order they were first supplied.
func (r *Registry) Roles() []Role {
	roles := make([]Role, len(r.order))
	copy(roles, r.order)
	return roles
}

// Entries returns copies of the effective entries in first-seen order.
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, role := range r.order {
		entries = append(entries, r.byRole[role].entry.clone())
	}
	return entries
}

// Len returns the number of registered roles.
func (r *Registry) Len() int {
	return len(r.order)
}
