//go:build commit_no_elgamal

package registry

func elgamalScheme() (Scheme, error) { return disabled("elgamal") }
