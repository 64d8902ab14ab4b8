// Package molfile serializes an in-memory chemical graph (package molecule)
// to the MDL Molfile V2000 or V3000 dialect, following the dialect-specific
// record layouts and the automatic-dialect-selection rule of the original
// Indigo molfile saver.
package molfile

import (
	"time"

	"github.com/cx-luo/molsave/molecule"
)

// BaseMolecule is the read-only view of a chemical graph the saver needs.
// It is satisfied by *molecule.Molecule; the interface exists so the
// dispatcher and dialect writers never depend on molecule's mutation API,
// only the query surface spec.md §6 names.
type BaseMolecule interface {
	IsQueryMolecule() bool

	VertexBegin() int
	VertexNext(i int) int
	VertexEnd() int
	VertexCount() int
	EdgeBegin() int
	EdgeNext(i int) int
	EdgeEnd() int
	EdgeCount() int
	GetEdge(i int) (beg, end int)
	Degree(i int) int
	HasZCoord() bool

	AtomNumber(i int) int
	AtomIsotope(i int) int
	AtomCharge(i int) int
	AtomXYZ(i int) molecule.Vec3
	ExplicitValence(i int) int
	ExplicitOrUnusualValence(i int) int
	AtomRadicalNoThrow(i int) int
	AtomAromaticity(i int) bool
	ImplicitHNoThrow(i int) int
	IsPseudoAtom(i int) bool
	PseudoAtom(i int) string
	IsRSite(i int) bool
	AllowedRGroups(i int) []int
	RSiteAttachmentPointByOrder(i, order int) int

	BondOrder(i int) int
	BondDirectionAt(i int) molecule.BondDirection
	CisTransIgnoredAt(i int) bool

	StereocenterInfo() *molecule.Stereocenters

	SuperatomsList() []molecule.Superatom
	DataSGroupsList() []molecule.DataSGroup
	RepeatingUnitsList() []molecule.RepeatingUnit
	MultipleGroupsList() []molecule.MultipleGroup
	GenericSGroupsList() []molecule.GenericSGroup

	AttachmentPointCount() int
	AttachmentPoint(index, order int) int
}

// QueryMolecule extends BaseMolecule with the query-only surface: unresolved
// query-atom/query-bond classification and the R-group collection.
type QueryMolecule interface {
	BaseMolecule
	ParseQueryAtom(i int) (molecule.QueryConstraint, bool)
	QueryBondType(i int) (molecule.QueryBondKind, bool)
	RGroupSetInfo() *molecule.RGroupSet
}

// Options carries the per-call inputs the core saver accepts beyond the
// molecule itself (spec.md §6): a dialect override, the chiral-flag
// suppression switch, and the optional highlighting/reaction annotations.
type Options struct {
	// Dialect forces V2000 or V3000 output. Zero value (DialectAuto) lets
	// the saver choose per the auto-detection rule (spec.md §4.1).
	Dialect Dialect

	// NoChiral suppresses the V2000 counts-line chiral flag even when the
	// molecule would otherwise set it.
	NoChiral bool

	Highlighting *molecule.Highlighting
	Reaction     *molecule.ReactionAnnotations

	// FixedTimestamp overrides the header/RG-envelope timestamp. Zero value
	// means "use the real time" — a testability knob for reproducible
	// fixture output, not a content feature.
	FixedTimestamp time.Time
}

func (o Options) aamOf(i int) int             { return o.Reaction.AtomMapping(i) }
func (o Options) inversionOf(i int) int       { return o.Reaction.Inversion(i) }
func (o Options) exactChangeOf(i int) int     { return o.Reaction.ExactChange(i) }
func (o Options) reactingCenterOf(i int) int  { return o.Reaction.ReactingCenter(i) }

// Dialect selects the MDL molfile variant to emit.
type Dialect int

const (
	DialectAuto Dialect = iota
	DialectV2000
	DialectV3000
)
