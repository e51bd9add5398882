package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kimai-plugins/internal/app"
	_ "go.trai.ch/kimai-plugins/internal/wiring"
)

// TestGraftDependencies resolves the full component graph the CLI starts from.
// graft.AssertDepsValid is not used: it derives dependency IDs from the package of the
// type passed to Dep[T], and every node here depends on interfaces from the shared ports package.
func TestGraftDependencies(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
	require.NoError(t, components.App.Close())
}
