package naming

import "strconv"

// NewStem returns a Stem numbering names after stem. Names already in taken
// are skipped, and every name handed out is added to it. A nil taken set
// starts empty.
func NewStem(stem string, taken map[string]struct{}) *Stem {
	return &Stem{
		taken: taken,
		stem:  stem,
	}
}

// Stem hands out the names stem0, stem1, ... skipping taken ones.
type Stem struct {
	taken map[string]struct{}
	stem  string
	next  int
}

// Next returns the next free name. Numbering is zero-based, so stem0 is the
// first name of a fresh Stem.
func (s *Stem) Next() string {
	if s.taken == nil {
		s.taken = make(map[string]struct{})
	}

	for {
		name := s.stem + strconv.Itoa(s.next)
		s.next++

		if _, ok := s.taken[name]; !ok {
			s.taken[name] = struct{}{}
			return name
		}
	}
}
