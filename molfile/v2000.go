package molfile

import (
	"github.com/cx-luo/molsave/ioutil"
	"github.com/cx-luo/molsave/molecule"
)

// writeCountsLineV2000 emits the real §4.7 counts line (nv, ne, chiral flag,
// 999 terminator).
func writeCountsLineV2000(sink *ioutil.Sink, ctx *saveContext) {
	sink.PrintfCR("%3d%3d%3d%3d%3d%3d%3d%3d%3d%3d%3d V2000",
		ctx.idx.nAtoms, ctx.idx.nBonds, 0, 0, boolToInt(chiralFlag(ctx.mol, ctx.opts)), 0, 0, 0, 0, 0, 999)
}

// writeCountsLineV3000 emits the all-zero §4.7 counts line the V3000
// dialect shares the same physical slot for.
func writeCountsLineV3000(sink *ioutil.Sink) {
	sink.PrintfCR("%3d%3d%3d%3d%3d%3d%3d%3d%3d%3d%3d V3000", 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// sgroupEntry is one row of the combined, ordered S-group index the V2000
// writer assigns 1-based ids over: superatoms, data S-groups, repeating
// units, multiple groups, generics (§4.7).
type sgroupEntry struct {
	kind string // "SUP", "DAT", "SRU", "MUL", "GEN"
	base *molecule.SGroupBase
	sup  *molecule.Superatom
	dat  *molecule.DataSGroup
	sru  *molecule.RepeatingUnit
	mul  *molecule.MultipleGroup
}

func collectSGroups(mol BaseMolecule) []sgroupEntry {
	var out []sgroupEntry
	sup := mol.SuperatomsList()
	for i := range sup {
		out = append(out, sgroupEntry{kind: "SUP", base: &sup[i].SGroupBase, sup: &sup[i]})
	}
	dat := mol.DataSGroupsList()
	for i := range dat {
		out = append(out, sgroupEntry{kind: "DAT", base: &dat[i].SGroupBase, dat: &dat[i]})
	}
	sru := mol.RepeatingUnitsList()
	for i := range sru {
		out = append(out, sgroupEntry{kind: "SRU", base: &sru[i].SGroupBase, sru: &sru[i]})
	}
	mul := mol.MultipleGroupsList()
	for i := range mul {
		out = append(out, sgroupEntry{kind: "MUL", base: &mul[i].SGroupBase, mul: &mul[i]})
	}
	gen := mol.GenericSGroupsList()
	for i := range gen {
		out = append(out, sgroupEntry{kind: "GEN", base: &gen[i].SGroupBase})
	}
	return out
}

// writeV2000CTAB emits the full §4.7 CTAB body: atom records, bond records,
// and property lines. The counts line is written separately by the caller
// (writeCountsLineV2000), matching the original's header/body split.
func writeV2000CTAB(sink *ioutil.Sink, ctx *saveContext) error {
	mol := ctx.mol
	isQuery := mol.IsQueryMolecule()

	var charges, isotopes, pseudoatoms, atomLists []int
	var radicals [][2]int

	for i := mol.VertexBegin(); i < mol.VertexEnd(); i = mol.VertexNext(i) {
		label, isList, isLongPseudo, effIsotope, err := atomLabelV2000(mol, ctx.qmol, i)
		if err != nil {
			return err
		}
		if isList {
			atomLists = append(atomLists, i)
		}
		if isLongPseudo {
			pseudoatoms = append(pseudoatoms, i)
		}
		lb := [3]byte{' ', ' ', ' '}
		copy(lb[:], label)

		charge := mol.AtomCharge(i)
		printedCharge := 0
		if charge != molecule.ChargeUnknown && charge >= -15 && charge <= 15 {
			printedCharge = charge
		}
		if printedCharge != 0 {
			charges = append(charges, i)
		}

		if radical := mol.AtomRadicalNoThrow(i); radical != molecule.RadicalNone {
			radicals = append(radicals, [2]int{i, radical})
		}

		if effIsotope > 0 {
			isotopes = append(isotopes, i)
		}

		valence := mol.ExplicitValence(i)
		if !isQuery {
			valence = mol.ExplicitOrUnusualValence(i)
		}
		printedValence := 0
		if valence > 0 && valence < 14 {
			printedValence = valence
		}

		hCount := 0
		if !isQuery && aromaticHCountApplies(mol, i) {
			hCount = mol.ImplicitHNoThrow(i) + 1
		}

		xyz := mol.AtomXYZ(i)
		sink.PrintfCR("%10.4f%10.4f%10.4f %c%c%c%2d"+
			"%3d%3d%3d%3d%3d"+
			"%3d%3d%3d%3d%3d%3d",
			xyz.X, xyz.Y, xyz.Z, lb[0], lb[1], lb[2], 0,
			0, 0, hCount, 0, printedValence,
			0, 0, 0,
			ctx.opts.aamOf(i), ctx.opts.inversionOf(i), ctx.opts.exactChangeOf(i))
	}

	for i := mol.EdgeBegin(); i < mol.EdgeEnd(); i = mol.EdgeNext(i) {
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

		stereo := 0
		switch mol.BondDirectionAt(i) {
		case molecule.BondDirectionUp:
			stereo = 1
		case molecule.BondDirectionDown:
			stereo = 6
		case molecule.BondDirectionEither:
			stereo = 4
		case molecule.BondDirectionNone:
			if mol.CisTransIgnoredAt(i) {
				stereo = 3
			}
		}

		sink.PrintfCR("%3d%3d%3d%3d%3d%3d%3d",
			ctx.idx.atom(beg), ctx.idx.atom(end), order, stereo, 0, 0, ctx.opts.reactingCenterOf(i))
	}

	writePairsPaginated8(sink, "M  CHG", len(charges), func(k int) (int, int) { return ctx.idx.atom(charges[k]), mol.AtomCharge(charges[k]) })
	writePairsPaginated8(sink, "M  RAD", len(radicals), func(k int) (int, int) { return ctx.idx.atom(radicals[k][0]), radicals[k][1] })
	writePairsPaginated8(sink, "M  ISO", len(isotopes), func(k int) (int, int) { return ctx.idx.atom(isotopes[k]), mol.AtomIsotope(isotopes[k]) })

	for _, i := range atomLists {
		c, ok := ctx.qmol.ParseQueryAtom(i)
		if !ok || len(c.Elements) == 0 {
			return wrapf(ErrInternalInvariant, "atom %d: atom-list classification missing or empty", i)
		}
		flag := byte('F')
		if c.Class == molecule.QueryAtomNotList {
			flag = 'T'
		}
		sink.Printf("M  ALS %3d%3d %c ", ctx.idx.atom(i), len(c.Elements), flag)
		for _, e := range c.Elements {
			sym := molecule.ElementSymbol(e)
			for len(sym) < 2 {
				sym += " "
			}
			sink.Printf("%s ", sym)
		}
		sink.WriteCR()
	}

	for _, i := range pseudoatoms {
		sink.PrintfCR("A  %3d", ctx.idx.atom(i))
		sink.WriteStringCR(mol.PseudoAtom(i))
	}

	writeSGroups2000(sink, ctx)

	return nil
}

// writePairsPaginated8 packs n (atomOrd, value) pairs 8-per-line behind a
// "M  XXX<n>" header, matching §4.7's M CHG/RAD/ISO layout.
func writePairsPaginated8(sink *ioutil.Sink, tag string, n int, pair func(k int) (int, int)) {
	if n == 0 {
		return
	}
	for j := 0; j < n; j += 8 {
		end := min(n, j+8)
		sink.Printf("%s%3d", tag, end-j)
		for k := j; k < end; k++ {
			a, val := pair(k)
			sink.Printf(" %3d %3d", a, val)
		}
		sink.WriteCR()
	}
}

// writeSGroups2000 emits the §4.7 S-group block: STY/SLB/SCN summary lines
// then, per S-group, SAL/SBL plus the kind-specific records.
func writeSGroups2000(sink *ioutil.Sink, ctx *saveContext) {
	mol := ctx.mol
	entries := collectSGroups(mol)
	if len(entries) == 0 {
		return
	}

	for j := 0; j < len(entries); j += 8 {
		end := min(len(entries), j+8)
		sink.Printf("M  STY%3d", end-j)
		for i := j; i < end; i++ {
			sink.Printf(" %3d %s", i+1, entries[i].kind)
		}
		sink.WriteCR()
	}
	for j := 0; j < len(entries); j += 8 {
		end := min(len(entries), j+8)
		sink.Printf("M  SLB%3d", end-j)
		for i := j; i < end; i++ {
			sink.Printf(" %3d %3d", i+1, i+1)
		}
		sink.WriteCR()
	}

	var ruIDs []int
	for i, e := range entries {
		if e.kind == "SRU" {
			ruIDs = append(ruIDs, i)
		}
	}
	for j := 0; j < len(ruIDs); j += 8 {
		end := min(len(ruIDs), j+8)
		sink.Printf("M  SCN%3d", end-j)
		for k := j; k < end; k++ {
			i := ruIDs[k]
			sink.Printf(" %3d ", i+1)
			switch entries[i].sru.Connectivity {
			case molecule.ConnHeadToHead:
				sink.Printf("HH  ")
			case molecule.ConnHeadToTail:
				sink.Printf("HT  ")
			default:
				sink.Printf("EU  ")
			}
		}
		sink.WriteCR()
	}

	for i, e := range entries {
		id := i + 1
		for j := 0; j < len(e.base.Atoms); j += 8 {
			end := min(len(e.base.Atoms), j+8)
			sink.Printf("M  SAL %3d%3d", id, end-j)
			for k := j; k < end; k++ {
				sink.Printf(" %3d", ctx.idx.atom(e.base.Atoms[k]))
			}
			sink.WriteCR()
		}
		for j := 0; j < len(e.base.Bonds); j += 8 {
			end := min(len(e.base.Bonds), j+8)
			sink.Printf("M  SBL %3d%3d", id, end-j)
			for k := j; k < end; k++ {
				sink.Printf(" %3d", ctx.idx.bond(e.base.Bonds[k]))
			}
			sink.WriteCR()
		}

		switch e.kind {
		case "SUP":
			if len(e.sup.Subscript) > 1 {
				sink.Printf("M  SMT %3d %s", id, e.sup.Subscript)
			}
			if e.sup.BondIdx >= 0 {
				sink.Printf("M  SBV %3d %3d %9.4f %9.4f", id, ctx.idx.bond(e.sup.BondIdx), e.sup.BondVector.X, e.sup.BondVector.Y)
			}
			sink.WriteCR()
		case "DAT":
			writeDataSGroup(sink, id, e.dat)
		case "MUL":
			for j := 0; j < len(e.mul.ParentAtoms); j += 8 {
				end := min(len(e.mul.ParentAtoms), j+8)
				sink.Printf("M  SPA %3d%3d", id, end-j)
				for k := j; k < end; k++ {
					sink.Printf(" %3d", ctx.idx.atom(e.mul.ParentAtoms[k]))
				}
				sink.WriteCR()
			}
			sink.PrintfCR("M  SMT %3d %d", id, e.mul.Multiplier)
		}

		for _, br := range e.base.Brackets {
			sink.PrintfCR("M  SDI %3d  4 %9.4f %9.4f %9.4f %9.4f", id, br.P0.X, br.P0.Y, br.P1.X, br.P1.Y)
		}
	}
}

func writeDataSGroup(sink *ioutil.Sink, id int, d *molecule.DataSGroup) {
	sink.Printf("M  SDT %3d ", id)
	k := 30
	if len(d.Description) > 1 {
		sink.Printf("%s", d.Description)
		k -= len(d.Description) - 1
	}
	for ; k > 0; k-- {
		sink.WriteChar(' ')
	}
	sink.WriteChar('F')
	sink.WriteCR()

	attached := byte('D')
	if d.Attached {
		attached = 'A'
	}
	relative := byte('A')
	if d.Relative {
		relative = 'R'
	}
	units := byte(' ')
	if d.DisplayUnits {
		units = 'U'
	}
	sink.PrintfCR("M  SDD %3d %10.4f%10.4f    %c%c%c   ALL  1       %1d  ",
		id, d.DisplayPos.X, d.DisplayPos.Y, attached, relative, units, d.DASPPosition)

	data := d.Data
	for len(data) > 69 {
		sink.PrintfCR("M  SCD %3d %69s", id, data[:69])
		data = data[69:]
	}
	sink.PrintfCR("M  SED %3d %s", id, data)
}

// writeRGroupIndices2000 emits the §4.7 R-group post-CTAB blocks: M RGP and
// M AAL.
func writeRGroupIndices2000(sink *ioutil.Sink, ctx *saveContext) {
	mol := ctx.mol

	type pair struct{ atom, rg int }
	var pairs []pair
	for i := mol.VertexBegin(); i < mol.VertexEnd(); i = mol.VertexNext(i) {
		if !mol.IsRSite(i) {
			continue
		}
		for _, rg := range mol.AllowedRGroups(i) {
			pairs = append(pairs, pair{ctx.idx.atom(i), rg})
		}
	}
	if len(pairs) > 0 {
		sink.Printf("M  RGP%3d", len(pairs))
		for _, p := range pairs {
			sink.Printf(" %3d %3d", p.atom, p.rg)
		}
		sink.WriteCR()
	}

	for i := mol.VertexBegin(); i < mol.VertexEnd(); i = mol.VertexNext(i) {
		if !mol.IsRSite(i) {
			continue
		}
		degree := mol.Degree(i)
		if attachmentOrderOK(mol, i, degree) {
			continue
		}
		sink.Printf("M  AAL %3d%3d", ctx.idx.atom(i), degree)
		for k := 0; k < degree; k++ {
			nb := mol.RSiteAttachmentPointByOrder(i, k)
			sink.Printf(" %3d %3d", ctx.idx.atom(nb), k+1)
		}
		sink.WriteCR()
	}
}

// writeAttachmentValues2000 emits the §4.7 M APO line, collapsing each
// atom's attachment-group memberships to a bitmask.
func writeAttachmentValues2000(sink *ioutil.Sink, ctx *saveContext) {
	mol := ctx.mol
	if mol.AttachmentPointCount() == 0 {
		return
	}

	var order []int
	val := make(map[int]int)
	for idx := 1; idx <= mol.AttachmentPointCount(); idx++ {
		for j := 0; ; j++ {
			a := mol.AttachmentPoint(idx, j)
			if a == -1 {
				break
			}
			ord := ctx.idx.atom(a)
			if _, ok := val[ord]; !ok {
				order = append(order, ord)
			}
			val[ord] |= 1 << uint(idx-1)
		}
	}

	sink.Printf("M  APO%3d", len(order))
	for _, ord := range order {
		sink.Printf(" %3d %3d", ord, val[ord])
	}
	sink.WriteCR()
}
