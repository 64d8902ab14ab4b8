package main

import "github.com/cx-luo/molsave/molecule"

// buildEthanol returns a plain CHO molecule with no stereochemistry or
// query features — the baseline case that should round-trip through
// either dialect identically in shape.
func buildEthanol() *molecule.Molecule {
	m := molecule.New()
	m.Name = "ethanol"
	c1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 0, Y: 0}})
	c2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 1.5, Y: 0}})
	o := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_O, XYZ: molecule.Vec3{X: 3, Y: 0}})
	m.AddBond(c1, c2, molecule.BondSingle)
	m.AddBond(c2, o, molecule.BondSingle)
	return m
}

// buildChiralAlanine returns an amino acid with a single ABS stereocenter,
// exercising the V2000 chiral-flag path (§4.1).
func buildChiralAlanine() *molecule.Molecule {
	m := molecule.New()
	m.Name = "L-alanine"
	n := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_N, XYZ: molecule.Vec3{X: 0, Y: 1}})
	ca := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 0, Y: 0}})
	cb := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: -1, Y: -0.5}})
	c := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 1, Y: -0.5}})
	o1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_O, XYZ: molecule.Vec3{X: 2, Y: 0}})
	o2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_O, XYZ: molecule.Vec3{X: 1, Y: -2}})
	m.AddBond(n, ca, molecule.BondSingle)
	m.AddBond(ca, cb, molecule.BondSingle)
	m.AddBond(ca, c, molecule.BondSingle)
	m.AddBond(c, o1, molecule.BondDouble)
	m.AddBond(c, o2, molecule.BondSingle)
	m.Stereocenters.Add(ca, molecule.StereoAbs, 0)
	return m
}

// buildQueryRGroup returns a query molecule with an R-site and a single
// numbered R-group whose fragment is a methyl, exercising the V2000
// RG-file envelope and V3000 nested-RGROUP paths (§4.6/§4.7).
func buildQueryRGroup() *molecule.Molecule {
	m := molecule.NewQuery()
	m.Name = "r-group demo"
	c1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 0, Y: 0}})
	c2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 1.5, Y: 0}})
	r := m.AddAtom(molecule.Atom{
		AtomicNumber: molecule.ElemRSite,
		XYZ:          molecule.Vec3{X: 3, Y: 0},
		RSiteInfo:    &molecule.RSite{AllowedGroups: []int{1}, AttachmentOrder: []int{c2}},
	})
	m.AddBond(c1, c2, molecule.BondSingle)
	m.AddBond(c2, r, molecule.BondSingle)

	frag := molecule.NewQuery()
	fragC := frag.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 0, Y: 0}})
	_ = fragC
	m.RGroups.Set(1, &molecule.RGroup{
		Fragments:  []*molecule.Molecule{frag},
		IfThen:     0,
		RestH:      true,
		Occurrence: []int{molecule.PackOccurrence(2, 3)},
	})
	return m
}

var samples = map[string]func() *molecule.Molecule{
	"ethanol": buildEthanol,
	"alanine": buildChiralAlanine,
	"rgroup":  buildQueryRGroup,
}
