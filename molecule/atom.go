package molecule

// Special atomic-number sentinels, adapted from the teacher's ELEM_PSEUDO /
// ELEM_RSITE / ELEM_TEMPLATE constants (src/molecule.go).
const (
	ElemUnspecified = -1 // query atom with no concrete element
	ElemPseudo      = -1
	ElemRSite       = -2
	ElemTemplate    = -3
)

// ChargeUnknown marks a formal charge that is explicitly "unknown" rather
// than zero; only meaningful on query atoms (spec.md §3).
const ChargeUnknown = 1 << 30

// Radical states, adapted from the teacher's RADICAL_* constants.
const (
	RadicalNone     = 0
	RadicalSinglet  = 2
	RadicalDoublet  = 3
	RadicalTriplet  = 4
)

// AttachmentNone marks "no attachment group membership" for Atom.Attachment.
const (
	AttachmentNone  = 0
	Attachment1     = 1
	Attachment2     = 2
	AttachmentBoth  = 3
)

// RSite holds an R-group placeholder atom's allowed groups and the order in
// which its neighbors were recorded as attachment points 1, 2, ... (spec.md
// §4.8's "attachment point order").
type RSite struct {
	AllowedGroups   []int
	AttachmentOrder []int // neighbor atom index per order position, -1 = undefined
}

// Atom is one vertex of a Molecule, holding every per-atom attribute spec.md
// §3 names. A concrete atom has AtomicNumber > 0; a non-positive sentinel
// (ElemUnspecified/ElemPseudo -1, ElemRSite -2) marks a query, pseudo or
// R-site atom, disambiguated by the PseudoLabel/RSiteInfo fields.
type Atom struct {
	AtomicNumber int
	Isotope      int
	Charge       int // may be ChargeUnknown
	XYZ          Vec3
	Valence      int // explicit/unusual valence, 0 = unset
	Aromatic     bool
	ImplicitH    int // -1 = unknown
	Radical      int

	PseudoLabel string // non-empty iff this is a pseudo-atom
	RSiteInfo   *RSite // non-nil iff this is an R-site

	Query *QueryConstraint // non-nil for an unresolved query atom (AtomicNumber == -1, not pseudo/R-site)

	Attachment int // bitmask over {Attachment1, Attachment2}

	deleted bool
}

// IsPseudo reports whether the atom is a pseudo-atom.
func (a *Atom) IsPseudo() bool { return a.PseudoLabel != "" }

// IsRSite reports whether the atom is an R-group attachment placeholder.
func (a *Atom) IsRSite() bool { return a.RSiteInfo != nil }
