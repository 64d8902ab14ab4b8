package molecule

// Accessors satisfying the molfile.BaseMolecule / molfile.QueryMolecule
// interfaces (spec.md §6). Kept in a separate file from molecule.go's
// graph-cursor methods because these are pure field projections, not graph
// mechanics.

// AtomNumber returns the atomic number of atom i, or the non-positive
// sentinel stored on it (ElemUnspecified, ElemRSite, ...) for an unresolved
// query/pseudo/R-site atom.
func (m *Molecule) AtomNumber(i int) int { return m.atoms[i].AtomicNumber }

// AtomIsotope returns the isotope mass number of atom i, 0 if unset.
func (m *Molecule) AtomIsotope(i int) int { return m.atoms[i].Isotope }

// AtomCharge returns the formal charge of atom i, or ChargeUnknown.
func (m *Molecule) AtomCharge(i int) int { return m.atoms[i].Charge }

// AtomXYZ returns the 3D coordinates of atom i.
func (m *Molecule) AtomXYZ(i int) Vec3 { return m.atoms[i].XYZ }

// ExplicitValence returns the atom's explicit valence as recorded on the
// query/concrete model (0 = unset). The real Indigo model distinguishes
// this from ExplicitOrUnusualValence via implicit-hydrogen recomputation;
// that computation is an external collaborator per spec.md §1 ("the
// molecule data model itself... belongs to an external collaborator"), so
// both accessors here simply project the same stored field.
func (m *Molecule) ExplicitValence(i int) int { return m.atoms[i].Valence }

// ExplicitOrUnusualValence is the concrete-molecule counterpart of
// ExplicitValence; see its doc comment.
func (m *Molecule) ExplicitOrUnusualValence(i int) int { return m.atoms[i].Valence }

// AtomRadicalNoThrow returns the radical state of atom i, or RadicalNone
// for R-site/pseudo atoms (which never carry a radical in MDL dialects —
// the caller is expected to special-case IsRSite/IsPseudoAtom itself, as
// the saver does per spec.md §4.6/§4.7, but this keeps the zero value
// consistent for any direct caller too).
func (m *Molecule) AtomRadicalNoThrow(i int) int {
	if m.atoms[i].IsRSite() || m.atoms[i].IsPseudo() {
		return RadicalNone
	}
	return m.atoms[i].Radical
}

// AtomAromaticity reports whether atom i is flagged aromatic.
func (m *Molecule) AtomAromaticity(i int) bool { return m.atoms[i].Aromatic }

// ImplicitHNoThrow returns atom i's implicit hydrogen count, or -1 if unknown.
func (m *Molecule) ImplicitHNoThrow(i int) int { return m.atoms[i].ImplicitH }

// IsPseudoAtom reports whether atom i is a pseudo-atom.
func (m *Molecule) IsPseudoAtom(i int) bool { return m.atoms[i].IsPseudo() }

// PseudoAtom returns the pseudo-atom label of atom i.
func (m *Molecule) PseudoAtom(i int) string { return m.atoms[i].PseudoLabel }

// IsRSite reports whether atom i is an R-group attachment placeholder.
func (m *Molecule) IsRSite(i int) bool { return m.atoms[i].IsRSite() }

// AllowedRGroups returns the R-group indices atom i may be substituted by.
func (m *Molecule) AllowedRGroups(i int) []int {
	if !m.atoms[i].IsRSite() {
		return nil
	}
	return m.atoms[i].RSiteInfo.AllowedGroups
}

// RSiteAttachmentPointByOrder returns the neighbor atom recorded as the
// order-th (0-based) attachment point of R-site i, or -1 if undefined.
func (m *Molecule) RSiteAttachmentPointByOrder(i, order int) int {
	if !m.atoms[i].IsRSite() {
		return -1
	}
	list := m.atoms[i].RSiteInfo.AttachmentOrder
	if order < 0 || order >= len(list) {
		return -1
	}
	return list[order]
}

// BondOrder returns the order of bond i (negative => query bond).
func (m *Molecule) BondOrder(i int) int { return m.bonds[i].Order }

// BondDirectionAt returns the stereo bond direction of bond i.
func (m *Molecule) BondDirectionAt(i int) BondDirection { return m.bonds[i].Direction }

// CisTransIgnoredAt reports whether bond i's cis/trans configuration is
// marked ignored.
func (m *Molecule) CisTransIgnoredAt(i int) bool { return m.CisTrans.IsIgnored(i) }

// StereocenterInfo exposes the molecule's stereocenter set.
func (m *Molecule) StereocenterInfo() *Stereocenters { return &m.Stereocenters }

// SuperatomsList exposes the molecule's superatom S-groups.
func (m *Molecule) SuperatomsList() []Superatom { return m.Superatoms }

// DataSGroupsList exposes the molecule's data S-groups.
func (m *Molecule) DataSGroupsList() []DataSGroup { return m.DataSGroups }

// RepeatingUnitsList exposes the molecule's repeating-unit S-groups.
func (m *Molecule) RepeatingUnitsList() []RepeatingUnit { return m.RepeatingUnits }

// MultipleGroupsList exposes the molecule's multiple-group S-groups.
func (m *Molecule) MultipleGroupsList() []MultipleGroup { return m.MultipleGroups }

// GenericSGroupsList exposes the molecule's generic S-groups.
func (m *Molecule) GenericSGroupsList() []GenericSGroup { return m.GenericSGroups }

// RGroupSetInfo exposes the molecule's R-group collection (query molecules only).
func (m *Molecule) RGroupSetInfo() *RGroupSet { return &m.RGroups }

// MoleculeName exposes the molecule's name field to the saver, which has no
// other way to reach it without growing BaseMolecule for one optional field.
func (m *Molecule) MoleculeName() string { return m.Name }
