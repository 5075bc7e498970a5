//go:build !ringdebug

package circular

// debugChecks gates the expensive diagnostic layer: container invariant
// verification after every mutation and iterator validity checks on access.
// Without the ringdebug build tag the guarded code is unreachable and the
// compiler discards it.
const debugChecks = false
