package molfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cx-luo/molsave/ioutil"
	"github.com/cx-luo/molsave/molecule"
)

// writeV3000CTAB emits the full §4.6 CTAB block for one molecule (or one
// R-group fragment, recursively). Top-level callers pass isTopLevel=true so
// the nested-R-group section is only emitted once, at depth 0 — matching
// §9's "emission recursion depth is at most 1 in well-formed inputs".
func writeV3000CTAB(sink *ioutil.Sink, ctx *saveContext, isTopLevel bool) error {
	mol := ctx.mol
	idx := ctx.idx

	sink.WriteStringCR("M  V30 BEGIN CTAB")
	writeV30(sink, fmt.Sprintf("COUNTS %d %d 0 0 0", idx.nAtoms, idx.nBonds))

	sink.WriteStringCR("M  V30 BEGIN ATOM")
	for i := mol.VertexBegin(); i < mol.VertexEnd(); i = mol.VertexNext(i) {
		if err := writeV3000AtomRecord(sink, ctx, i); err != nil {
			return err
		}
	}
	sink.WriteStringCR("M  V30 END ATOM")

	sink.WriteStringCR("M  V30 BEGIN BOND")
	for i := mol.EdgeBegin(); i < mol.EdgeEnd(); i = mol.EdgeNext(i) {
		if err := writeV3000BondRecord(sink, ctx, i); err != nil {
			return err
		}
	}
	sink.WriteStringCR("M  V30 END BOND")

	writeV3000Collection(sink, ctx)

	sink.WriteStringCR("M  V30 END CTAB")

	if isTopLevel && ctx.qmol != nil {
		if err := writeV3000RGroups(sink, ctx); err != nil {
			return err
		}
	}

	return nil
}

func writeV3000AtomRecord(sink *ioutil.Sink, ctx *saveContext, i int) error {
	mol := ctx.mol
	label, err := atomLabelV3000(mol, ctx.qmol, i)
	if err != nil {
		return err
	}

	xyz := mol.AtomXYZ(i)
	var b strings.Builder
	fmt.Fprintf(&b, "%d %s %s %s %s %d",
		ctx.idx.atom(i), label,
		formatFloat(xyz.X), formatFloat(xyz.Y), formatFloat(xyz.Z),
		ctx.opts.aamOf(i))

	charge := mol.AtomCharge(i)
	isQuery := mol.IsQueryMolecule()
	if (isQuery && charge != molecule.ChargeUnknown) || (!isQuery && charge != 0) {
		fmt.Fprintf(&b, " CHG=%d", charge)
	}

	if !isQuery && aromaticHCountApplies(mol, i) {
		if h := mol.ImplicitHNoThrow(i); h >= 0 {
			fmt.Fprintf(&b, " HCOUNT=%d", h+1)
		}
	}

	if r := mol.AtomRadicalNoThrow(i); r > 0 {
		fmt.Fprintf(&b, " RAD=%d", r)
	}
	if iso := mol.AtomIsotope(i); iso > 0 {
		fmt.Fprintf(&b, " MASS=%d", iso)
	}
	valence := mol.ExplicitValence(i)
	if !isQuery {
		valence = mol.ExplicitOrUnusualValence(i)
	}
	if valence > 0 {
		fmt.Fprintf(&b, " VAL=%d", valence)
	}
	if inv := ctx.opts.inversionOf(i); inv > 0 {
		fmt.Fprintf(&b, " INVRET=%d", inv)
	}
	if ec := ctx.opts.exactChangeOf(i); ec > 0 {
		fmt.Fprintf(&b, " EXACHG=%d", ec)
	}

	if mol.IsRSite(i) {
		if groups := mol.AllowedRGroups(i); len(groups) > 0 {
			fmt.Fprintf(&b, " RGROUPS=(%d", len(groups))
			for _, g := range groups {
				fmt.Fprintf(&b, " %d", g)
			}
			b.WriteString(")")
		}

		degree := mol.Degree(i)
		if !attachmentOrderOK(mol, i, degree) {
			fmt.Fprintf(&b, " ATTCHORD=(%d", degree*2)
			for order := 0; order < degree; order++ {
				nb := mol.RSiteAttachmentPointByOrder(i, order)
				if nb == -1 {
					continue
				}
				fmt.Fprintf(&b, " %d %d", ctx.idx.atom(nb), order+1)
			}
			b.WriteString(")")
		}
	}

	if val := attachmentBitmask(mol, i); val != 0 {
		if val == 3 {
			b.WriteString(" ATTCHPT=-1")
		} else {
			fmt.Fprintf(&b, " ATTCHPT=%d", val)
		}
	}

	writeV30(sink, b.String())
	return nil
}

// attachmentBitmask collapses atom i's attachment-group membership to the
// {0,1,2,3} bitmask §4.6/§4.7 both key off of.
func attachmentBitmask(mol BaseMolecule, i int) int {
	val := 0
	for g := 1; g <= mol.AttachmentPointCount(); g++ {
		for order := 0; ; order++ {
			a := mol.AttachmentPoint(g, order)
			if a == -1 {
				break
			}
			if a == i {
				val |= 1 << uint(g-1)
			}
		}
	}
	return val
}

func writeV3000BondRecord(sink *ioutil.Sink, ctx *saveContext, i int) error {
	mol := ctx.mol
	beg, end := mol.GetEdge(i)
	order := mol.BondOrder(i)
	if order < 0 {
		qk, ok := mol.(QueryMolecule)
		if !ok {
			return wrapf(ErrUnresolvedQueryAtom, "bond %d: query bond without query molecule", i)
		}
		kind, ok := qk.QueryBondType(i)
		if !ok {
			return wrapf(ErrV2000Unsupported, "bond %d: unrepresentable query bond", i)
		}
		order = int(kind)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d %d %d %d", ctx.idx.bond(i), order, ctx.idx.atom(beg), ctx.idx.atom(end))

	dir := mol.BondDirectionAt(i)
	ignored := mol.CisTransIgnoredAt(i)
	switch {
	case dir == molecule.BondDirectionUp:
		b.WriteString(" CFG=1")
	case dir == molecule.BondDirectionEither:
		b.WriteString(" CFG=2")
	case dir == molecule.BondDirectionDown:
		b.WriteString(" CFG=3")
	case ignored && dir == molecule.BondDirectionNone:
		b.WriteString(" CFG=2")
	}

	if rc := ctx.opts.reactingCenterOf(i); rc != 0 {
		fmt.Fprintf(&b, " RXCTR=%d", rc)
	}

	writeV30(sink, b.String())
	return nil
}

// writeV3000Collection emits the §4.6 COLLECTION block, skipped entirely
// when neither stereocenters nor highlighting are present.
func writeV3000Collection(sink *ioutil.Sink, ctx *saveContext) {
	mol := ctx.mol
	st := mol.StereocenterInfo()
	h := ctx.opts.Highlighting

	hasHighlight := h.VertexCount() > 0 || h.EdgeCount() > 0
	if st.Size() == 0 && !hasHighlight {
		return
	}

	sink.WriteStringCR("M  V30 BEGIN COLLECTION")

	processed := make(map[int]bool)
	for _, a := range st.Atoms() {
		if processed[a] {
			continue
		}
		t, _ := st.GetType(a)
		group := st.GetGroup(a)

		members := []int{a}
		processed[a] = true
		for _, b := range st.Atoms() {
			if b == a || processed[b] {
				continue
			}
			if st.SameGroup(a, b) {
				members = append(members, b)
				processed[b] = true
			}
		}

		tag := ""
		switch t {
		case molecule.StereoAbs:
			tag = "MDLV30/STEABS"
		case molecule.StereoOr:
			tag = fmt.Sprintf("MDLV30/STEREL%d", group)
		case molecule.StereoAnd:
			tag = fmt.Sprintf("MDLV30/STERAC%d", group)
		default:
			continue
		}
		writeV30(sink, fmt.Sprintf("%s ATOMS=(%s)", tag, refList(ctx, members, true)))
	}

	if h.EdgeCount() > 0 {
		var bonds []int
		for i := mol.EdgeBegin(); i < mol.EdgeEnd(); i = mol.EdgeNext(i) {
			if h.IsEdgeHighlighted(i) {
				bonds = append(bonds, i)
			}
		}
		writeV30(sink, fmt.Sprintf("MDLV30/HILITE BONDS=(%s)", refList(ctx, bonds, false)))
	}
	if h.VertexCount() > 0 {
		var atoms []int
		for i := mol.VertexBegin(); i < mol.VertexEnd(); i = mol.VertexNext(i) {
			if h.IsVertexHighlighted(i) {
				atoms = append(atoms, i)
			}
		}
		writeV30(sink, fmt.Sprintf("MDLV30/HILITE ATOMS=(%s)", refList(ctx, atoms, true)))
	}

	sink.WriteStringCR("M  V30 END COLLECTION")
}

// refList renders "<n> ord1 ord2 ..." for a list of internal indices,
// translated through the atom or bond mapping.
func refList(ctx *saveContext, indices []int, isAtom bool) string {
	parts := make([]string, 0, len(indices)+1)
	parts = append(parts, strconv.Itoa(len(indices)))
	for _, i := range indices {
		var ord int
		if isAtom {
			ord = ctx.idx.atom(i)
		} else {
			ord = ctx.idx.bond(i)
		}
		parts = append(parts, strconv.Itoa(ord))
	}
	return strings.Join(parts, " ")
}

// writeV3000RGroups emits the §4.6 nested R-group CTABs following the main
// CTAB block, one per non-empty R-group index.
func writeV3000RGroups(sink *ioutil.Sink, ctx *saveContext) error {
	rgroups := ctx.qmol.RGroupSetInfo()
	for k := 1; k <= rgroups.Count(); k++ {
		g := rgroups.Get(k)
		if g == nil || len(g.Fragments) == 0 {
			continue
		}
		sink.PrintfCR("M  V30 BEGIN RGROUP %d", k)
		restH := 0
		if g.RestH {
			restH = 1
		}
		writeV30(sink, fmt.Sprintf("RLOGIC %d %d %s", g.IfThen, restH, formatOccurrenceList(g.Occurrence)))
		for _, frag := range g.Fragments {
			fragCtx := newSaveContext(frag, ctx.opts)
			if err := writeV3000CTAB(sink, fragCtx, false); err != nil {
				return err
			}
		}
		sink.WriteStringCR("M  V30 END RGROUP")
	}
	return nil
}
