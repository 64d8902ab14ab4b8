package molfile

// attachmentOrderOK implements §4.8: for an R-site of degree d, read the
// recorded attachment neighbor for order 0..d-1. Any "undefined" (-1) entry
// makes the order OK (no correction needed); otherwise it's OK iff the
// sequence is strictly ascending by neighbor index.
//
// The original saver's own check is looser (non-strict, treating equal
// neighbors as ascending); spec.md's prose explicitly says "strictly
// ascending", so this follows the spec over the original C++ behavior.
func attachmentOrderOK(mol BaseMolecule, site, degree int) bool {
	prev := -1
	for order := 0; order < degree; order++ {
		cur := mol.RSiteAttachmentPointByOrder(site, order)
		if cur == -1 {
			return true
		}
		if prev != -1 && cur <= prev {
			return false
		}
		prev = cur
	}
	return true
}
