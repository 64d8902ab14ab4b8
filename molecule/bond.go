package molecule

// Concrete bond orders, adapted from the teacher's BOND_* constants
// (src/molecule.go).
const (
	BondSingle   = 1
	BondDouble   = 2
	BondTriple   = 3
	BondAromatic = 4
)

// QueryBondKind enumerates the query bond kinds a negative Bond.Order maps
// to via QueryBondType (spec.md §3 "Query bond kinds").
type QueryBondKind int

const (
	QueryBondSingleOrDouble    QueryBondKind = 5
	QueryBondSingleOrAromatic  QueryBondKind = 6
	QueryBondDoubleOrAromatic  QueryBondKind = 7
	QueryBondAny               QueryBondKind = 8
)

// BondDirection is the stereo bond direction used by both dialects.
type BondDirection int

const (
	BondDirectionNone BondDirection = iota
	BondDirectionUp
	BondDirectionDown
	BondDirectionEither
)

// Bond is one edge of a Molecule.
type Bond struct {
	Beg, End  int
	Order     int // negative => query bond; QueryKind then gives the kind
	QueryKind QueryBondKind
	Direction BondDirection
	CisTransIgnored bool

	deleted bool
}
