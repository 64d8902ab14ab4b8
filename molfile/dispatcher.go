package molfile

import (
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/cx-luo/molsave/ioutil"
)

// Save writes mol (base molecule, query or concrete) to w per §4.1.
// SaveMolecule and SaveQueryMolecule funnel through it; the CTAB-only
// SaveCTAB/SaveQueryCTAB do not.
func Save(w io.Writer, mol BaseMolecule, opts Options, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	sink := ioutil.NewSink(w)
	ctx := newSaveContext(mol, opts)
	dialect := resolveDialect(mol, opts)

	logger.Debug("saving molfile",
		zap.Int("atoms", ctx.idx.nAtoms),
		zap.Int("bonds", ctx.idx.nBonds),
		zap.Bool("query", mol.IsQueryMolecule()),
		zap.String("dialect", dialectName(dialect)))

	if opts.Dialect == DialectAuto && typoDivergesFromIntent(opts) {
		logger.Warn("auto dialect escalation check only counts highlighted vertices twice; " +
			"highlighted bonds alone did not trigger V3000 escalation")
	}

	rgFile := dialect == DialectV2000 && ctx.qmol != nil && ctx.qmol.RGroupSetInfo().Count() > 0

	now := opts.FixedTimestamp
	if now.IsZero() {
		now = time.Now()
	}
	if rgFile {
		sink.PrintfCR("$MDL  REV  1 %02d%02d%02d%02d%02d",
			int(now.Month()), now.Day(), now.Year()%100, now.Hour(), now.Minute())
		sink.WriteStringCR("$MOL")
		sink.WriteStringCR("$HDR")
	}

	name := moleculeName(mol)
	writeHeader(sink, name, mol.HasZCoord(), now)

	if rgFile {
		sink.WriteStringCR("$END HDR")
		sink.WriteStringCR("$CTAB")
	}

	switch dialect {
	case DialectV2000:
		writeCountsLineV2000(sink, ctx)
		if err := writeV2000CTAB(sink, ctx); err != nil {
			return wrapf(err, "saving molecule")
		}
	default:
		writeCountsLineV3000(sink)
		if err := writeV3000CTAB(sink, ctx, true); err != nil {
			return wrapf(err, "saving molecule")
		}
	}

	if dialect == DialectV2000 {
		writeRGroupIndices2000(sink, ctx)
		writeAttachmentValues2000(sink, ctx)
	}

	if rgFile {
		rgroups := ctx.qmol.RGroupSetInfo()
		for k := 1; k <= rgroups.Count(); k++ {
			g := rgroups.Get(k)
			if g == nil || len(g.Fragments) == 0 {
				continue
			}
			restH := 0
			if g.RestH {
				restH = 1
			}
			occText := formatOccurrenceList(g.Occurrence)
			sink.Printf("M  LOG  1 %3d %3d %3d  ", k, g.IfThen, restH)
			for pad := 3 - len(occText); pad > 0; pad-- {
				sink.WriteChar(' ')
			}
			sink.WriteStringCR(occText)
		}
		sink.WriteStringCR("M  END")
		sink.WriteStringCR("$END CTAB")

		for k := 1; k <= rgroups.Count(); k++ {
			g := rgroups.Get(k)
			if g == nil || len(g.Fragments) == 0 {
				continue
			}
			sink.WriteStringCR("$RGP")
			sink.PrintfCR("%4d", k)
			for _, frag := range g.Fragments {
				fragCtx := newSaveContext(frag, opts)
				sink.WriteStringCR("$CTAB")
				writeCountsLineV2000(sink, fragCtx)
				if err := writeV2000CTAB(sink, fragCtx); err != nil {
					return wrapf(err, "saving r-group %d fragment", k)
				}
				writeRGroupIndices2000(sink, fragCtx)
				writeAttachmentValues2000(sink, fragCtx)
				sink.WriteStringCR("M  END")
				sink.WriteStringCR("$END CTAB")
			}
			sink.WriteStringCR("$END RGP")
		}
		sink.WriteStringCR("$END MOL")
	} else {
		sink.WriteStringCR("M  END")
	}

	return sink.Err()
}

// SaveMolecule saves a concrete (non-query) molecule.
func SaveMolecule(w io.Writer, mol BaseMolecule, opts Options, logger *zap.Logger) error {
	return Save(w, mol, opts, logger)
}

// SaveQueryMolecule saves a query molecule.
func SaveQueryMolecule(w io.Writer, mol QueryMolecule, opts Options, logger *zap.Logger) error {
	return Save(w, mol, opts, logger)
}

// SaveCTAB emits only a V3000 CTAB block for mol (no header, no counts
// line, no R-group envelope) — a low-level entry point for embedding a
// fragment's CTAB directly.
func SaveCTAB(w io.Writer, mol BaseMolecule, opts Options) error {
	sink := ioutil.NewSink(w)
	ctx := newSaveContext(mol, opts)
	if err := writeV3000CTAB(sink, ctx, false); err != nil {
		return err
	}
	return sink.Err()
}

// SaveQueryCTAB emits only a V3000 CTAB block for a query molecule.
func SaveQueryCTAB(w io.Writer, mol QueryMolecule, opts Options) error {
	return SaveCTAB(w, mol, opts)
}

func dialectName(d Dialect) string {
	switch d {
	case DialectV2000:
		return "v2000"
	case DialectV3000:
		return "v3000"
	default:
		return "auto"
	}
}

// moleculeName returns mol's name if it carries one. BaseMolecule has no
// Name accessor (spec.md §4.2 only needs a string-or-empty), so this type
// asserts for the one concrete implementation rather than growing the
// interface for a single optional field.
func moleculeName(mol BaseMolecule) string {
	type named interface{ MoleculeName() string }
	if n, ok := mol.(named); ok {
		return n.MoleculeName()
	}
	return ""
}
