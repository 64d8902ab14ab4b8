package molecule

// Connectivity is the repeating-unit connectivity kind (spec.md §3).
// Adapted from the teacher's SGroupConnectivity (src/molecule_sgroups.go).
type Connectivity int

const (
	ConnHeadToHead Connectivity = iota + 1
	ConnHeadToTail
	ConnEither
)

// Bracket is one display bracket coordinate pair, shared by every S-group
// kind (spec.md §3 "bracket coordinate pairs").
type Bracket struct {
	P0, P1 Vec2
}

// SGroupBase holds the fields common to all five S-group kinds: member
// atoms, member bonds, and display brackets. Adapted from the teacher's
// SGroup struct (src/molecule_sgroups.go), split apart from the teacher's
// single SGroup/SGroupType duo so each kind is its own concrete struct —
// the saver needs to type-switch on kind at compile time for the STY tag,
// which a shared `[]interface{}` slice (the teacher's MoleculeSGroups)
// cannot give us.
type SGroupBase struct {
	Atoms    []int
	Bonds    []int
	Brackets []Bracket
}

// Superatom is a superatom/abbreviation S-group (spec.md §3).
type Superatom struct {
	SGroupBase
	Subscript string
	// BondIdx/BondVector describe the optional bond-vector annotation;
	// BondIdx is -1 when absent.
	BondIdx    int
	BondVector Vec2
}

// DataSGroup is a data S-group (spec.md §3).
type DataSGroup struct {
	SGroupBase
	Description  string
	Data         string
	DisplayPos   Vec2
	Attached     bool // A vs D in M  SDD
	Relative     bool // R vs A in M  SDD
	DisplayUnits bool
	DASPPosition int // 1-digit display-string attachment-point position
}

// RepeatingUnit is a structural repeating unit S-group (spec.md §3).
type RepeatingUnit struct {
	SGroupBase
	Connectivity Connectivity
}

// MultipleGroup is a multiple-group S-group (spec.md §3).
type MultipleGroup struct {
	SGroupBase
	ParentAtoms []int
	Multiplier  int
}

// GenericSGroup is the catch-all fifth S-group kind.
type GenericSGroup struct {
	SGroupBase
}
