//go:build commit_no_groth

package registry

func grothScheme() (Scheme, error) { return disabled("groth") }
