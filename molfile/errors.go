package molfile

import "github.com/pkg/errors"

// The saver fails in exactly three ways (spec.md §7): an unsupported query
// atom, an unrepresentable query bond, and an internal invariant violation.
// Each gets its own sentinel so callers can errors.Is against the specific
// failure instead of string-matching.
var (
	// ErrV2000Unsupported means a query bond (negative order) has no
	// representable query bond kind (5-8). Both dialect writers return it.
	ErrV2000Unsupported = errors.New("molfile: feature requires V3000")

	// ErrUnresolvedQueryAtom means a query atom could not be classified
	// into any of the five shapes MDL molfiles can express.
	ErrUnresolvedQueryAtom = errors.New("molfile: unresolved query atom")

	// ErrInternalInvariant signals one of the programming-error conditions
	// named in spec.md §7.3: an atom-list label with no (or empty)
	// classification, or an atom number of -1 with no query context to
	// resolve it through.
	ErrInternalInvariant = errors.New("molfile: internal invariant violated")
)

// wrapf annotates err with a positional message, or returns nil unchanged.
func wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}
