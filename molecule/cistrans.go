package molecule

// CisTrans tracks the cis/trans "ignored" marker the saver needs (spec.md
// §3, §4.6/§4.7 CFG=2 / stereo=3 fallback). Adapted and heavily trimmed
// from the teacher's MoleculeCisTrans (src/molecule/molecule_cis_trans.go),
// which additionally computes parity from substituent geometry — out of
// scope here since the saver only ever asks "is this bond ignored".
type CisTrans struct {
	ignored map[int]bool
}

// Ignore marks bondIdx's cis/trans configuration as ignored.
func (c *CisTrans) Ignore(bondIdx int) {
	if c.ignored == nil {
		c.ignored = make(map[int]bool)
	}
	c.ignored[bondIdx] = true
}

// IsIgnored reports whether bondIdx's cis/trans configuration is ignored.
func (c *CisTrans) IsIgnored(bondIdx int) bool {
	return c.ignored[bondIdx]
}
