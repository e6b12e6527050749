package sys

import "os/user"

// SetLookupUserForTest swaps the user lookup and returns a restore function.
func SetLookupUserForTest(fn func() (*user.User, error)) func() {
	prev := lookupUser
	lookupUser = fn

	return func() { lookupUser = prev }
}
