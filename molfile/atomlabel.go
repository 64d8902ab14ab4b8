package molfile

import (
	"fmt"
	"strings"

	"github.com/cx-luo/molsave/molecule"
)

// concreteLabel returns the printed label and effective isotope for a
// concrete (non-query, non-pseudo, non-R-site) atom (§4.4): hydrogen
// isotope 2 prints as "D" with isotope cleared, isotope 3 as "T", anything
// else is just the element symbol with isotope unchanged.
func concreteLabel(mol BaseMolecule, i int) (label string, isotope int) {
	num := mol.AtomNumber(i)
	iso := mol.AtomIsotope(i)
	if num == molecule.ELEM_H {
		switch iso {
		case 2:
			return "D", 0
		case 3:
			return "T", 0
		}
	}
	return molecule.ElementSymbol(num), iso
}

// aromaticHCountApplies reports whether §4.6/§4.7's HCOUNT/hC condition
// holds for atom i: aromatic, and either not carbon/oxygen or charged.
func aromaticHCountApplies(mol BaseMolecule, i int) bool {
	if !mol.AtomAromaticity(i) {
		return false
	}
	num := mol.AtomNumber(i)
	if num != molecule.ELEM_C && num != molecule.ELEM_O {
		return true
	}
	return mol.AtomCharge(i) != 0
}

// queryLabel renders a classified query atom per §4.6's literal/list label
// rule: "A"/"Q"/"X" literally, "[E1,E2,...]" for an inclusive list prefixed
// with "NOT" for an exclusive one.
func queryLabel(c molecule.QueryConstraint) (string, bool) {
	switch c.Class {
	case molecule.QueryAtomA:
		return "A", true
	case molecule.QueryAtomQ:
		return "Q", true
	case molecule.QueryAtomX:
		return "X", true
	case molecule.QueryAtomList, molecule.QueryAtomNotList:
		syms := make([]string, len(c.Elements))
		for i, e := range c.Elements {
			syms[i] = molecule.ElementSymbol(e)
		}
		body := "[" + strings.Join(syms, ",") + "]"
		if c.Class == molecule.QueryAtomNotList {
			return "NOT" + body, true
		}
		return body, true
	default:
		return "", false
	}
}

// atomLabelV3000 resolves the full §4.6 V3000 atom label for atom i:
// isotope hydrogens, pseudo, R-site, concrete element, then query
// classification. An atom number of -1 with no query molecule to consult is
// the §7.3 internal-invariant condition; anything else the classifier
// cannot reduce is §7.1's unresolved-query-atom error.
func atomLabelV3000(mol BaseMolecule, qmol QueryMolecule, i int) (string, error) {
	num := mol.AtomNumber(i)
	if mol.IsPseudoAtom(i) {
		return mol.PseudoAtom(i), nil
	}
	if mol.IsRSite(i) {
		return "R#", nil
	}
	if num > 0 {
		label, _ := concreteLabel(mol, i)
		return label, nil
	}
	if qmol != nil {
		if c, ok := qmol.ParseQueryAtom(i); ok {
			if label, ok := queryLabel(c); ok {
				return label, nil
			}
		}
		return "", wrapf(ErrUnresolvedQueryAtom, "atom %d", i)
	}
	if num == molecule.ElemUnspecified {
		return "", wrapf(ErrInternalInvariant, "atom %d: atom number = -1 but no query context", i)
	}
	return "", wrapf(ErrUnresolvedQueryAtom, "atom %d", i)
}

// atomLabelV2000 resolves the 3-character §4.7 V2000 label field. The
// "L" (atom list) and "A" (long pseudo-label, recorded for an `A  ` line)
// cases are signalled back to the caller via the bool return so the CTAB
// writer can schedule the follow-up property line. isotope is the effective
// isotope to record in the M ISO line: 0 for every shape except a plain
// concrete element symbol (D/T hydrogens clear it, same as §4.4).
func atomLabelV2000(mol BaseMolecule, qmol QueryMolecule, i int) (label string, isList, isLongPseudo bool, isotope int, err error) {
	num := mol.AtomNumber(i)
	if mol.IsRSite(i) {
		return "R#", false, false, 0, nil
	}
	if mol.IsPseudoAtom(i) {
		p := mol.PseudoAtom(i)
		if len(p) <= 3 {
			return p, false, false, 0, nil
		}
		return "A", false, true, 0, nil
	}
	if num > 0 {
		label, iso := concreteLabel(mol, i)
		return label, false, false, iso, nil
	}
	if qmol != nil {
		if c, ok := qmol.ParseQueryAtom(i); ok {
			switch c.Class {
			case molecule.QueryAtomA:
				return "A", false, false, 0, nil
			case molecule.QueryAtomQ:
				return "Q", false, false, 0, nil
			case molecule.QueryAtomX:
				return "X", false, false, 0, nil
			case molecule.QueryAtomList, molecule.QueryAtomNotList:
				return "L", true, false, 0, nil
			}
		}
		return "", false, false, 0, wrapf(ErrUnresolvedQueryAtom, "atom %d", i)
	}
	if num == molecule.ElemUnspecified {
		return "", false, false, 0, wrapf(ErrInternalInvariant, "atom %d: atom number = -1 but no query context", i)
	}
	return "", false, false, 0, wrapf(ErrUnresolvedQueryAtom, "atom %d", i)
}

// formatFloat prints a coordinate in the locale-independent default "%f"
// form §4.6 calls for. Go's fmt always uses '.' for the decimal point
// regardless of the OS locale, unlike C's printf.
func formatFloat(f float64) string {
	return fmt.Sprintf("%f", f)
}
