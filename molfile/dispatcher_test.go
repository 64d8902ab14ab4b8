package molfile

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/cx-luo/molsave/molecule"
)

func buildEthanol() *molecule.Molecule {
	m := molecule.New()
	m.Name = "ethanol"
	c1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	c2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C, XYZ: molecule.Vec3{X: 1}})
	o := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_O, XYZ: molecule.Vec3{X: 2}})
	m.AddBond(c1, c2, molecule.BondSingle)
	m.AddBond(c2, o, molecule.BondSingle)
	return m
}

// TestSaveEthanolV2000 is spec scenario E1.
func TestSaveEthanolV2000(t *testing.T) {
	m := buildEthanol()
	var buf bytes.Buffer
	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if err := Save(&buf, m, Options{FixedTimestamp: ts}, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")

	if !strings.Contains(lines[1], "2D") {
		t.Errorf("header second line should contain 2D, got %q", lines[1])
	}
	if !strings.HasSuffix(lines[3], "V2000") {
		t.Fatalf("expected counts line ending in V2000, got %q", lines[3])
	}

	atomLines := lines[4:7]
	wantLabels := []string{"C  ", "C  ", "O  "}
	for i, al := range atomLines {
		label := al[31:34]
		if label != wantLabels[i] {
			t.Errorf("atom line %d label = %q, want %q (line: %q)", i, label, wantLabels[i], al)
		}
	}

	bondLines := lines[7:9]
	want := []string{"  1  2  1  0  0  0  0", "  2  3  1  0  0  0  0"}
	for i, bl := range bondLines {
		if bl != want[i] {
			t.Errorf("bond line %d = %q, want %q", i, bl, want[i])
		}
	}

	if !strings.HasSuffix(buf.String(), "M  END\n") {
		t.Errorf("output should end with M  END")
	}
}

// TestSaveAlanineChiralFlag is spec scenario E2.
func TestSaveAlanineChiralFlag(t *testing.T) {
	build := func() *molecule.Molecule {
		m := molecule.New()
		c1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
		c2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
		m.AddBond(c1, c2, molecule.BondSingle)
		m.Stereocenters.Add(c2, molecule.StereoAbs, 0)
		return m
	}

	var buf bytes.Buffer
	if err := Save(&buf, build(), Options{}, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	if chiral := strings.TrimSpace(lines[3][12:15]); chiral != "1" {
		t.Errorf("expected chiral flag 1 in counts line, got %q (line: %q)", chiral, lines[3])
	}

	var buf2 bytes.Buffer
	if err := Save(&buf2, build(), Options{NoChiral: true}, nil); err != nil {
		t.Fatalf("Save with NoChiral: %v", err)
	}
	lines2 := strings.Split(buf2.String(), "\n")
	if chiral := strings.TrimSpace(lines2[3][12:15]); chiral != "0" {
		t.Errorf("expected chiral flag 0 with NoChiral, got %q (line: %q)", chiral, lines2[3])
	}
}

// TestSaveOrGroupEscalatesToV3000 is spec scenario E3.
func TestSaveOrGroupEscalatesToV3000(t *testing.T) {
	m := molecule.New()
	a1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	a2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	m.AddBond(a1, a2, molecule.BondSingle)
	m.Stereocenters.Add(a1, molecule.StereoOr, 1)
	m.Stereocenters.Add(a2, molecule.StereoOr, 1)

	var buf bytes.Buffer
	if err := Save(&buf, m, Options{}, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "V3000") {
		t.Fatalf("OR-group stereocenter should escalate to V3000, got:\n%s", out)
	}
	if !strings.Contains(out, "MDLV30/STEREL1 ATOMS=(2 1 2)") {
		t.Errorf("expected STEREL1 collection entry, got:\n%s", out)
	}
}

// TestSaveRSiteAttachOrder is spec scenario E4.
func TestSaveRSiteAttachOrder(t *testing.T) {
	m := molecule.NewQuery()
	var fillers [7]int
	for i := range fillers {
		fillers[i] = m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	}
	// fillers[6] -> output ordinal 7, fillers[3] -> output ordinal 4.
	rsite := m.AddAtom(molecule.Atom{
		AtomicNumber: molecule.ElemRSite,
		RSiteInfo: &molecule.RSite{
			AllowedGroups:   []int{2, 5},
			AttachmentOrder: []int{fillers[6], fillers[3]},
		},
	})
	m.AddBond(rsite, fillers[6], molecule.BondSingle)
	m.AddBond(rsite, fillers[3], molecule.BondSingle)

	var buf bytes.Buffer
	if err := Save(&buf, m, Options{Dialect: DialectV3000}, nil); err != nil {
		t.Fatalf("Save: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "RGROUPS=(2 2 5)") {
		t.Errorf("expected RGROUPS=(2 2 5), got:\n%s", out)
	}
	if !strings.Contains(out, "ATTCHORD=(4 7 1 4 2)") {
		t.Errorf("expected ATTCHORD=(4 7 1 4 2), got:\n%s", out)
	}
}

// TestAttachmentBitmaskCollapse is testable property 6.
func TestAttachmentBitmaskCollapse(t *testing.T) {
	m := molecule.New()
	both := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	g1 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	g2 := m.AddAtom(molecule.Atom{AtomicNumber: molecule.ELEM_C})
	m.AddBond(both, g1, molecule.BondSingle)
	m.AddBond(g1, g2, molecule.BondSingle)
	m.SetAttachmentPoint(1, 0, both)
	m.SetAttachmentPoint(2, 0, both)
	m.SetAttachmentPoint(1, 1, g1)

	if got := attachmentBitmask(m, both); got != 3 {
		t.Errorf("atom in groups {1,2}: bitmask = %d, want 3", got)
	}
	if got := attachmentBitmask(m, g2); got != 0 {
		t.Errorf("atom in no group: bitmask = %d, want 0", got)
	}
}
