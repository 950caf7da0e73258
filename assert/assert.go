package assert

import "github.com/oomph-ac/skitter/oerror"

// IsTrue panics with a formatted error if ok is false. It guards construction-time contracts
// that callers are expected to have validated already.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(oerror.New(message, args...))
	}
}
