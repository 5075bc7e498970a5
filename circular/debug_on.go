//go:build ringdebug

package circular

// debugChecks enables container invariant verification after every mutation
// and iterator validity checks on access. Diagnostic aid for tests and debug
// builds; release builds compile it out.
const debugChecks = true
