package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kimai-plugins/cmd/kimai-plugins/commands"
	"go.trai.ch/kimai-plugins/internal/app"
	"go.trai.ch/kimai-plugins/internal/build"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/engine/reconciler"
)

type mockApp struct {
	syncFunc        func(ctx context.Context, opts app.SyncOptions) (*app.SyncReport, error)
	pinsFunc        func(ctx context.Context, root string) ([]domain.InstallRequest, error)
	diffFunc        func(ctx context.Context, root string) (string, error)
	installPathFunc func(ctx context.Context, root string, pkg domain.Package) (string, error)
}

func (m *mockApp) Sync(ctx context.Context, opts app.SyncOptions) (*app.SyncReport, error) {
	if m.syncFunc != nil {
		return m.syncFunc(ctx, opts)
	}
	return &app.SyncReport{}, nil
}

func (m *mockApp) Pins(ctx context.Context, root string) ([]domain.InstallRequest, error) {
	if m.pinsFunc != nil {
		return m.pinsFunc(ctx, root)
	}
	return nil, nil
}

func (m *mockApp) Diff(ctx context.Context, root string) (string, error) {
	if m.diffFunc != nil {
		return m.diffFunc(ctx, root)
	}
	return "", nil
}

func (m *mockApp) InstallPath(ctx context.Context, root string, pkg domain.Package) (string, error) {
	if m.installPathFunc != nil {
		return m.installPathFunc(ctx, root, pkg)
	}
	return "", nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	cli.SetArgs(args)
	out := new(bytes.Buffer)
	cli.SetOutput(out, new(bytes.Buffer))
	err := cli.Execute(context.Background())
	return out.String(), err
}

func TestCommands_Sync(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.SyncOptions
		mock := &mockApp{
			syncFunc: func(_ context.Context, opts app.SyncOptions) (*app.SyncReport, error) {
				captured = opts
				return &app.SyncReport{
					LockPath: "/srv/kimai/kimai-plugins.lock",
					Result: &domain.Result{
						Operations: []domain.Operation{{
							Package: domain.Package{PrettyName: "kimai/DemoBundle", PrettyVersion: "1.0.0"},
							Path:    "/srv/kimai/var/plugins/DemoBundle/",
						}},
					},
					Outcome: &reconciler.Outcome{Changed: true},
				}, nil
			},
		}

		out, err := execute(t, mock, "sync", "--dry-run", "-C", "/srv/kimai")
		require.NoError(t, err)
		assert.Equal(t, app.SyncOptions{Root: "/srv/kimai", DryRun: true}, captured)
		assert.Equal(t,
			"kimai/DemoBundle (1.0.0) -> /srv/kimai/var/plugins/DemoBundle/\n"+
				"/srv/kimai/kimai-plugins.lock: would be updated\n",
			out,
		)
	})

	t.Run("reports lock status", func(t *testing.T) {
		tests := []struct {
			name    string
			outcome *reconciler.Outcome
			want    string
		}{
			{name: "Skipped", outcome: &reconciler.Outcome{Skipped: true}, want: "skipped"},
			{name: "Unchanged", outcome: &reconciler.Outcome{}, want: "unchanged"},
			{name: "Written", outcome: &reconciler.Outcome{Changed: true, Written: true}, want: "updated"},
			{name: "Write failed", outcome: &reconciler.Outcome{Changed: true}, want: "not written"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				mock := &mockApp{
					syncFunc: func(context.Context, app.SyncOptions) (*app.SyncReport, error) {
						return &app.SyncReport{LockPath: "kimai-plugins.lock", Outcome: tt.outcome}, nil
					},
				}
				out, err := execute(t, mock, "sync")
				require.NoError(t, err)
				assert.Equal(t, "kimai-plugins.lock: "+tt.want+"\n", out)
			})
		}
	})

	t.Run("returns error on sync failure", func(t *testing.T) {
		mock := &mockApp{
			syncFunc: func(context.Context, app.SyncOptions) (*app.SyncReport, error) {
				return nil, errors.New("simulated error")
			},
		}
		_, err := execute(t, mock, "sync")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Pins(t *testing.T) {
	var root string
	mock := &mockApp{
		pinsFunc: func(_ context.Context, r string) ([]domain.InstallRequest, error) {
			root = r
			return []domain.InstallRequest{
				{Name: "kimai/demobundle", Constraint: domain.Constraint{Operator: "=", Version: "1.0.0.0"}},
			}, nil
		},
	}

	out, err := execute(t, mock, "pins")
	require.NoError(t, err)
	assert.Equal(t, ".", root)
	assert.Equal(t, "kimai/demobundle =1.0.0.0\n", out)
}

func TestCommands_Diff(t *testing.T) {
	t.Run("prints diff", func(t *testing.T) {
		mock := &mockApp{
			diffFunc: func(context.Context, string) (string, error) {
				return "--- a\n+++ b\n", nil
			},
		}
		out, err := execute(t, mock, "diff")
		require.NoError(t, err)
		assert.Equal(t, "--- a\n+++ b\n", out)
	})

	t.Run("reports no change", func(t *testing.T) {
		out, err := execute(t, &mockApp{}, "diff")
		require.NoError(t, err)
		assert.Equal(t, "Kimai plugins did not change\n", out)
	})
}

func TestCommands_Path(t *testing.T) {
	var captured domain.Package
	mock := &mockApp{
		installPathFunc: func(_ context.Context, _ string, pkg domain.Package) (string, error) {
			captured = pkg
			return "/srv/kimai/var/plugins/DemoBundle/", nil
		},
	}

	out, err := execute(t, mock, "path", "acme/Kimai-Demo", "--type", "kimai-bundle", "--version", "1.2.0", "--install-name", "DemoBundle")
	require.NoError(t, err)
	assert.Equal(t, "/srv/kimai/var/plugins/DemoBundle/\n", out)
	assert.Equal(t, domain.Package{
		Name:          "acme/kimai-demo",
		PrettyName:    "acme/Kimai-Demo",
		PrettyVersion: "1.2.0",
		Type:          "kimai-bundle",
		Extra:         map[string]any{"kimai": map[string]any{"name": "DemoBundle"}},
	}, captured)

	_, err = execute(t, mock, "path")
	require.Error(t, err)
}

func TestCommands_Version(t *testing.T) {
	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "kimai-plugins version "+build.Version)
}
