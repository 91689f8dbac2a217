//go:build commit_no_groth

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coinbase/cb-commit-go/pkg/commit"
	"github.com/coinbase/cb-commit-go/pkg/commit/registry"
)

func TestDisabledSchemeLookup(t *testing.T) {
	_, err := registry.Lookup("groth")
	assert.ErrorIs(t, err, commit.ErrSchemeDisabled)
	assert.NotContains(t, registry.Names(), "groth")
	assert.Contains(t, registry.Known(), "groth")
}
