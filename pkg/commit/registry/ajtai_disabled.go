//go:build commit_no_ajtai

package registry

func ajtaiScheme() (Scheme, error) { return disabled("ajtai") }
