package roaring32

import "errors"

// Sentinel errors returned by the public surface. None of these are ever
// panicked across the package boundary; every fallible operation below
// encodes its failure in a return value per the error-handling design.
var (
	// ErrBadCookie is returned when a portable-format buffer does not begin
	// with a recognized serial cookie.
	ErrBadCookie = errors.New("roaring32: bad serial cookie")

	// ErrTruncated is returned when a declared size in a serialized buffer
	// exceeds the bytes actually available.
	ErrTruncated = errors.New("roaring32: truncated buffer")

	// ErrUnknownType is returned when a container typecode byte is not one
	// of array, bitmap, or run, and by Deserialize when the envelope tag
	// byte is not recognized.
	ErrUnknownType = errors.New("roaring32: unknown container typecode")

	// ErrMisaligned is reserved for callers that build their own frozen
	// buffers and want to enforce spec.md §6.3's 32-byte alignment
	// themselves before calling FrozenView. FrozenView itself decodes
	// entirely through encoding/binary rather than unsafe pointer casts, so
	// it has no alignment requirement to check; Go gives no portable way to
	// assert a []byte's backing array address without unsafe, and doing so
	// would be nondeterministic across allocator size classes.
	ErrMisaligned = errors.New("roaring32: frozen buffer is not 32-byte aligned")

	// ErrFrozen is returned by XorInPlace and AndNotInPlace when called on a
	// bitmap produced by FrozenView. The other mutators (Set, Remove, Clear,
	// AndInPlace, OrInPlace, AddRangeClosed, RemoveRangeClosed, FlipInPlace)
	// return no error and leave a frozen bitmap unchanged; Optimize does not
	// check the frozen flag.
	ErrFrozen = errors.New("roaring32: bitmap is frozen")

	// ErrInvalidRange names the invalid-range precondition. No function in
	// this package returns it: FromRange signals lo >= hi or step == 0 by
	// returning nil.
	ErrInvalidRange = errors.New("roaring32: invalid range")

	// ErrSameOperand is returned by XorInPlace/AndNotInPlace when called
	// with the receiver as its own argument, which the spec disallows.
	ErrSameOperand = errors.New("roaring32: operand aliases the receiver")
)
