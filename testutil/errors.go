// Package testutil holds small helpers shared by tests.
package testutil

// SameErrorString reports whether two errors render the same message.
// Either side may be nil; two nils match.
func SameErrorString(err, target error) bool {
	if err == nil || target == nil {
		return err == target
	}
	return err.Error() == target.Error()
}
