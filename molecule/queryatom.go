package molecule

// QueryAtomClass is the result of classifying an unresolved query atom
// (AtomicNumber == -1, not pseudo/R-site) down to one of the five shapes
// MDL molfiles can express (spec.md §4.6): plain wildcards A/Q/X, or an
// inclusive/exclusive element list.
type QueryAtomClass int

const (
	QueryAtomNone    QueryAtomClass = iota // unclassifiable — the saver must fail (spec.md §7.1)
	QueryAtomA                             // any atom
	QueryAtomQ                             // any non-H atom
	QueryAtomX                             // any halogen
	QueryAtomList                          // inclusive element list
	QueryAtomNotList                       // exclusive ("NOT") element list
)

// QueryConstraint is the materialized, already-classified shape of one
// query atom — the "tagged variant" the design notes call for, built once
// per atom rather than re-derived by each dialect writer.
type QueryConstraint struct {
	Class    QueryAtomClass
	Elements []int // atomic numbers, populated for List/NotList
}

// ParseQueryAtom returns the query classification of atom i, following the
// original saver's classification order (original_source/molecule/src/
// molfile_saver.cpp _writeQueryAtom): a concrete element or pseudo/R-site
// atom is handled by the caller before this is ever consulted; here we only
// resolve the remaining unspecified-element case.
func (m *Molecule) ParseQueryAtom(i int) (QueryConstraint, bool) {
	a := &m.atoms[i]
	if a.Query == nil {
		return QueryConstraint{}, false
	}
	return *a.Query, true
}

// QueryBondType returns the query bond kind of bond i (spec.md §3 "Query
// bond kinds"), valid only when Bond.Order is negative.
func (m *Molecule) QueryBondType(i int) (QueryBondKind, bool) {
	b := &m.bonds[i]
	if b.Order >= 0 {
		return 0, false
	}
	switch b.QueryKind {
	case QueryBondSingleOrDouble, QueryBondSingleOrAromatic, QueryBondDoubleOrAromatic, QueryBondAny:
		return b.QueryKind, true
	default:
		return 0, false
	}
}
