//go:build commit_no_pedersen

package registry

func pedersenScheme() (Scheme, error) { return disabled("pedersen") }
