package ruleset

import "sort"

// ProfessionRegistry provides lookup of profession definitions by ID.
type ProfessionRegistry struct {
	professions map[string]*Profession
}

// NewProfessionRegistry returns an empty ProfessionRegistry.
//
// Postcondition: Returns a non-nil *ProfessionRegistry ready to accept registrations.
func NewProfessionRegistry() *ProfessionRegistry {
	return &ProfessionRegistry{professions: make(map[string]*Profession)}
}

// Register adds a Profession to the registry.
//
// Precondition: p must be non-nil with a non-empty ID.
// Postcondition: p is retrievable via Profession using p.ID;
// if called multiple times with the same ID, the last call wins.
func (r *ProfessionRegistry) Register(p *Profession) {
	if p == nil {
		panic("ProfessionRegistry.Register: precondition violated: profession must be non-nil")
	}
	if p.ID == "" {
		panic("ProfessionRegistry.Register: precondition violated: profession ID must be non-empty")
	}
	r.professions[p.ID] = p
}

// Profession returns the Profession for the given ID, if registered.
//
// Postcondition: Returns the registered Profession and true, or nil and false if not found.
func (r *ProfessionRegistry) Profession(id string) (*Profession, bool) {
	p, ok := r.professions[id]
	return p, ok
}

// All returns every registered profession sorted by ID.
func (r *ProfessionRegistry) All() []*Profession {
	out := make([]*Profession, 0, len(r.professions))
	for _, p := range r.professions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
