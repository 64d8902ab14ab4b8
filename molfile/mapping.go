package molfile

// indexMapping is the call-scoped atom_mapping/bond_mapping pair (spec.md
// §3): a dense re-indexing from sparse internal atom/bond indices to
// 1-based output ordinals, assigned in iteration order. Built once per save
// call and threaded through both CTAB writers.
type indexMapping struct {
	atomOrd []int // internal atom index -> 1-based ordinal, -1 if not live
	bondOrd []int // internal bond index -> 1-based ordinal, -1 if not live
	nAtoms  int
	nBonds  int
}

func buildIndexMapping(mol BaseMolecule) *indexMapping {
	m := &indexMapping{
		atomOrd: make([]int, mol.VertexEnd()),
		bondOrd: make([]int, mol.EdgeEnd()),
	}
	for i := range m.atomOrd {
		m.atomOrd[i] = -1
	}
	for i := range m.bondOrd {
		m.bondOrd[i] = -1
	}

	ord := 1
	for i := mol.VertexBegin(); i < mol.VertexEnd(); i = mol.VertexNext(i) {
		m.atomOrd[i] = ord
		ord++
	}
	m.nAtoms = ord - 1

	ord = 1
	for i := mol.EdgeBegin(); i < mol.EdgeEnd(); i = mol.EdgeNext(i) {
		m.bondOrd[i] = ord
		ord++
	}
	m.nBonds = ord - 1

	return m
}

func (m *indexMapping) atom(i int) int { return m.atomOrd[i] }
func (m *indexMapping) bond(i int) int { return m.bondOrd[i] }

// saveContext bundles everything the dialect writers need for one save
// call: the molecule (and its query view, if any), the index mapping, and
// the caller-supplied options.
type saveContext struct {
	mol  BaseMolecule
	qmol QueryMolecule // nil unless mol.IsQueryMolecule()
	idx  *indexMapping
	opts Options
}

func newSaveContext(mol BaseMolecule, opts Options) *saveContext {
	ctx := &saveContext{mol: mol, idx: buildIndexMapping(mol), opts: opts}
	if q, ok := mol.(QueryMolecule); ok && mol.IsQueryMolecule() {
		ctx.qmol = q
	}
	return ctx
}

// chiralFlag reports whether the V2000 counts-line chiral flag should be
// set: stereocenters present, all ABS-or-ANY, and no_chiral is clear.
func chiralFlag(mol BaseMolecule, opts Options) bool {
	if opts.NoChiral {
		return false
	}
	st := mol.StereocenterInfo()
	return st.Size() > 0 && st.HaveAllAbsAny()
}

// shouldEscalateToV3000 implements §4.1's AUTO dialect rule. The highlight
// check is literally "vertex count + vertex count" rather than
// "vertices or edges", preserved as observed (§9/§10 open question 1)
// rather than corrected to the presumably-intended vertex-or-edge check.
func shouldEscalateToV3000(mol BaseMolecule, opts Options) bool {
	if h := opts.Highlighting; h != nil && h.VertexCount()+h.VertexCount() > 0 {
		return true
	}
	st := mol.StereocenterInfo()
	if st.Size() > 0 && !st.HaveAllAbsAny() && !st.HaveAllAndAny() {
		return true
	}
	return false
}

// typoDivergesFromIntent reports whether the literal highlight check above
// disagrees with the presumably-intended "vertices or edges highlighted"
// check for this molecule — i.e. no vertex is highlighted but at least one
// edge is, so "VertexCount+VertexCount" misses what "VertexCount+EdgeCount"
// would have caught.
func typoDivergesFromIntent(opts Options) bool {
	h := opts.Highlighting
	return h != nil && h.VertexCount() == 0 && h.EdgeCount() > 0
}

// resolveDialect applies §4.1: explicit modes pass through, AUTO escalates
// per shouldEscalateToV3000, otherwise defaults to V2000.
func resolveDialect(mol BaseMolecule, opts Options) Dialect {
	switch opts.Dialect {
	case DialectV2000, DialectV3000:
		return opts.Dialect
	default:
		if shouldEscalateToV3000(mol, opts) {
			return DialectV3000
		}
		return DialectV2000
	}
}
