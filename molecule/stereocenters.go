package molecule

import "sort"

// StereoType classifies a marked stereocenter (spec.md §3 "Stereocenters").
// Adapted from the teacher's STEREO_ATOM_* constants
// (src/molecule/molecule_stereocenters.go); ANY is kept for parity with the
// teacher even though the saver only branches on Abs/Or/And.
type StereoType int

const (
	StereoAny StereoType = iota
	StereoAbs
	StereoOr
	StereoAnd
)

type stereoCenter struct {
	Type  StereoType
	Group int
}

// Stereocenters is the set of marked stereogenic atoms of a Molecule,
// adapted from the teacher's MoleculeStereocenters (map-of-atom-index
// structure kept; pyramid/substituent bookkeeping dropped since the saver
// only needs type, group and same-group queries).
type Stereocenters struct {
	centers map[int]*stereoCenter
}

// Add marks atomIdx as a stereocenter of the given type and group. Group is
// only meaningful for StereoOr/StereoAnd.
func (s *Stereocenters) Add(atomIdx int, t StereoType, group int) {
	if s.centers == nil {
		s.centers = make(map[int]*stereoCenter)
	}
	s.centers[atomIdx] = &stereoCenter{Type: t, Group: group}
}

// Size returns the number of marked stereocenters.
func (s *Stereocenters) Size() int { return len(s.centers) }

// GetType returns the stereo type of atomIdx, or StereoAny if it is not a
// marked stereocenter (callers should guard with a membership check when
// that distinction matters).
func (s *Stereocenters) GetType(atomIdx int) (StereoType, bool) {
	c, ok := s.centers[atomIdx]
	if !ok {
		return StereoAny, false
	}
	return c.Type, true
}

// GetGroup returns the correlation group of atomIdx.
func (s *Stereocenters) GetGroup(atomIdx int) int {
	if c, ok := s.centers[atomIdx]; ok {
		return c.Group
	}
	return 0
}

// SameGroup reports whether a and b carry the same (type, group) pair.
func (s *Stereocenters) SameGroup(a, b int) bool {
	ca, oka := s.centers[a]
	cb, okb := s.centers[b]
	if !oka || !okb {
		return false
	}
	return ca.Type == cb.Type && ca.Group == cb.Group
}

// HaveAllAbsAny reports whether every marked stereocenter is ABS or ANY —
// vacuously true when there are none, matching the teacher's C++ ancestor
// (an empty RedBlackMap walk never finds a counterexample).
func (s *Stereocenters) HaveAllAbsAny() bool {
	for _, c := range s.centers {
		if c.Type != StereoAbs && c.Type != StereoAny {
			return false
		}
	}
	return true
}

// HaveAllAndAny reports whether every marked stereocenter is AND or ANY.
func (s *Stereocenters) HaveAllAndAny() bool {
	for _, c := range s.centers {
		if c.Type != StereoAnd && c.Type != StereoAny {
			return false
		}
	}
	return true
}

// Atoms returns the marked stereocenter atom indices in ascending order,
// giving callers a deterministic iteration order the underlying map can't.
func (s *Stereocenters) Atoms() []int {
	atoms := make([]int, 0, len(s.centers))
	for idx := range s.centers {
		atoms = append(atoms, idx)
	}
	sort.Ints(atoms)
	return atoms
}
