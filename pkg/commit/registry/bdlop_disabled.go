//go:build commit_no_bdlop

package registry

func bdlopScheme() (Scheme, error) { return disabled("bdlop") }
