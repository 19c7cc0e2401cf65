// Package perrors defines the closed set of consensus rejection kinds
// the core surfaces to its caller, wrapped in an error type that keeps
// a machine-readable code alongside the human message.
package perrors

// Kind identifies a class of consensus-core failure. The set is closed:
// callers may switch on Kind() without a default case covering unknown
// future values, since new kinds are a breaking API change here.
type Kind int

const (
	// KindUnknown is the zero value; never returned by this package's
	// constructors.
	KindUnknown Kind = iota

	// KindInvalidCompact marks a malformed compact-bits encoding. The
	// strict decoder raises it when the sign bit is set; it applies no
	// check to the exponent.
	KindInvalidCompact

	// KindOffsetTooLarge marks a candidate offset that is not smaller
	// than 2^trailingZeros, per spec.
	KindOffsetTooLarge

	// KindWrongResidue marks a candidate base+offset that is not
	// congruent to 97 mod 210.
	KindWrongResidue

	// KindNotPrime marks a constellation member that failed the
	// primality test. Pos() on the returned *Error gives the failing
	// offset (one of 0, 4, 6, 10, 12, 16).
	KindNotPrime
)

func (k Kind) String() string {
	switch k {
	case KindInvalidCompact:
		return "InvalidCompact"
	case KindOffsetTooLarge:
		return "OffsetTooLarge"
	case KindWrongResidue:
		return "WrongResidue"
	case KindNotPrime:
		return "NotPrime"
	default:
		return "Unknown"
	}
}
