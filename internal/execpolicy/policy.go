package execpolicy

import "sort"

// Policy is the table mapping program names to specs. It is built once,
// before any validation happens, and never mutated afterwards, so any number
// of goroutines may call Check concurrently without synchronization.
type Policy struct {
	specs map[string]*ProgramSpec
}

// NewPolicy creates an empty policy table.
func NewPolicy() *Policy {
	return &Policy{specs: make(map[string]*ProgramSpec)}
}

// AddSpec registers a spec. Defining the same program twice within one
// source is a construction error.
func (p *Policy) AddSpec(spec *ProgramSpec) error {
	if _, ok := p.specs[spec.Program]; ok {
		return &SpecError{Program: spec.Program, Message: "duplicate program definition"}
	}
	p.specs[spec.Program] = spec
	return nil
}

// Spec returns the registered spec for a program, if any. Lookup is exact
// and case-sensitive; there is no aliasing and no PATH-style search.
func (p *Policy) Spec(program string) (*ProgramSpec, bool) {
	spec, ok := p.specs[program]
	return spec, ok
}

// Programs returns the registered program names in sorted order.
func (p *Policy) Programs() []string {
	names := make([]string, 0, len(p.specs))
	for name := range p.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Check validates a call against the table. On success it returns the match
// envelope; every failure is one of the typed errors in this package. The
// check is deterministic and performs no I/O.
func (p *Policy) Check(call ExecCall) (*MatchedExec, error) {
	spec, ok := p.specs[call.Program]
	if !ok {
		return nil, &UnknownProgramError{Program: call.Program}
	}
	exec, err := spec.check(call)
	if err != nil {
		return nil, err
	}
	return &MatchedExec{Exec: *exec}, nil
}

// Merge copies every spec from other into p, replacing same-name entries.
// Later sources deliberately override earlier ones so user policies can
// shadow bundled defaults.
func (p *Policy) Merge(other *Policy) {
	for name, spec := range other.specs {
		p.specs[name] = spec
	}
}
