package molecule

// ReactionAnnotations carries the optional per-atom/per-bond reaction
// bookkeeping spec.md §3/§6 list as independently-present fields: atom-atom
// mapping, inversion flag, exact-change flag, and bond reacting-center
// bits. Grounded on the original saver's reactionAtomMapping /
// reactionAtomInversion / reactionAtomExactChange / reactionBondReactingCenter
// members (original_source/molecule/src/molfile_saver.cpp) — each is a
// standalone, possibly-absent array there, which this type preserves by
// using nil maps as "absent" rather than folding all four into the atom
// model itself.
type ReactionAnnotations struct {
	atomMapping map[int]int
	inversion   map[int]int
	exactChange map[int]int
	reactingCtr map[int]int
}

// NewReactionAnnotations returns an empty ReactionAnnotations.
func NewReactionAnnotations() *ReactionAnnotations {
	return &ReactionAnnotations{
		atomMapping: make(map[int]int),
		inversion:   make(map[int]int),
		exactChange: make(map[int]int),
		reactingCtr: make(map[int]int),
	}
}

// SetAtomMapping records the atom-atom mapping number of atom i.
func (r *ReactionAnnotations) SetAtomMapping(i, aam int) { r.atomMapping[i] = aam }

// AtomMapping returns the atom-atom mapping number of atom i, 0 if unset.
func (r *ReactionAnnotations) AtomMapping(i int) int {
	if r == nil {
		return 0
	}
	return r.atomMapping[i]
}

// SetInversion records the inversion/retention flag of atom i.
func (r *ReactionAnnotations) SetInversion(i, inv int) { r.inversion[i] = inv }

// Inversion returns the inversion/retention flag of atom i, 0 if unset.
func (r *ReactionAnnotations) Inversion(i int) int {
	if r == nil {
		return 0
	}
	return r.inversion[i]
}

// SetExactChange records the exact-change flag of atom i.
func (r *ReactionAnnotations) SetExactChange(i, ec int) { r.exactChange[i] = ec }

// ExactChange returns the exact-change flag of atom i, 0 if unset.
func (r *ReactionAnnotations) ExactChange(i int) int {
	if r == nil {
		return 0
	}
	return r.exactChange[i]
}

// SetReactingCenter records the reacting-center bits of bond i.
func (r *ReactionAnnotations) SetReactingCenter(i, bits int) { r.reactingCtr[i] = bits }

// ReactingCenter returns the reacting-center bits of bond i, 0 if unset.
func (r *ReactionAnnotations) ReactingCenter(i int) int {
	if r == nil {
		return 0
	}
	return r.reactingCtr[i]
}
