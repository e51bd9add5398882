package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kimai-plugins/internal/core/domain"
)

func TestPackage_InstallName(t *testing.T) {
	tests := []struct {
		name string
		pkg  domain.Package
		want string
	}{
		{
			name: "Segment after last slash",
			pkg:  domain.Package{Name: "kimai/invoicebundle", PrettyName: "kimai/InvoiceBundle"},
			want: "InvoiceBundle",
		},
		{
			name: "Falls back to name",
			pkg:  domain.Package{Name: "kimai/invoicebundle"},
			want: "invoicebundle",
		},
		{
			name: "No vendor prefix",
			pkg:  domain.Package{PrettyName: "DemoBundle"},
			want: "DemoBundle",
		},
		{
			name: "Extra override wins",
			pkg: domain.Package{
				PrettyName: "acme/kimai-demo",
				Extra:      map[string]any{"kimai": map[string]any{"name": "DemoBundle"}},
			},
			want: "DemoBundle",
		},
		{
			name: "Non-string override is ignored",
			pkg: domain.Package{
				PrettyName: "acme/DemoBundle",
				Extra:      map[string]any{"kimai": map[string]any{"name": 42}},
			},
			want: "DemoBundle",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.pkg.InstallName())
		})
	}
}

func TestPluginMap_Merge(t *testing.T) {
	old := domain.PluginMap{"A": "1.0.0", "C": "0.1.0"}
	installed := domain.PluginMap{"B": "2.0.0", "C": "0.2.0"}

	merged := old.Merge(installed)

	assert.Equal(t, domain.PluginMap{"A": "1.0.0", "B": "2.0.0", "C": "0.2.0"}, merged)
	assert.Equal(t, domain.PluginMap{"A": "1.0.0", "C": "0.1.0"}, old, "receiver must not be modified")
	assert.Equal(t, []string{"A", "B", "C"}, merged.Names())
}

func TestPluginMap_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.PluginMap
		wantErr bool
	}{
		{name: "Object", input: `{"plugins": {"A": "1.0.0"}}`, want: domain.PluginMap{"A": "1.0.0"}},
		{name: "Empty object", input: `{"plugins": {}}`, want: domain.PluginMap{}},
		{name: "PHP empty array", input: `{"plugins": []}`, want: domain.PluginMap{}},
		{name: "Null", input: `{"plugins": null}`, want: nil},
		{name: "Missing", input: `{}`, want: nil},
		{name: "Wrong shape", input: `{"plugins": ["A"]}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var lock domain.Lockfile
			err := json.Unmarshal([]byte(tt.input), &lock)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, lock.Plugins)
		})
	}
}

func TestNewLockfile(t *testing.T) {
	now := time.Date(2026, 10, 19, 10, 0, 0, 0, time.FixedZone("CEST", 2*60*60))
	lock := domain.NewLockfile(domain.PluginMap{"A": "1.0.0"}, "abc", now)

	assert.Equal(t, domain.LockReadme, lock.Readme)
	assert.Equal(t, "2026-10-19T10:00:00+02:00", lock.Time)
	assert.Equal(t, "abc", lock.ContentHash)

	lock.Readme[0] = "changed"
	assert.NotEqual(t, "changed", domain.LockReadme[0])
}

func TestNormalizeVersion(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "1.0.0", want: "1.0.0.0"},
		{input: "v1.2", want: "1.2.0.0"},
		{input: "2", want: "2.0.0.0"},
		{input: "1.2.3.4", want: "1.2.3.4"},
		{input: " 1.0.0 ", want: "1.0.0.0"},
		{input: "1.0.0-beta2", want: "1.0.0.0-beta2"},
		{input: "1.0.0-beta.2", want: "1.0.0.0-beta2"},
		{input: "1.0.0b1", want: "1.0.0.0-beta1"},
		{input: "1.0.0-RC1", want: "1.0.0.0-RC1"},
		{input: "1.0.0-rc1", want: "1.0.0.0-RC1"},
		{input: "1.0.0-alpha", want: "1.0.0.0-alpha"},
		{input: "1.0.0-pl3", want: "1.0.0.0-patch3"},
		{input: "1.0.0-stable", want: "1.0.0.0"},
		{input: "1.0-dev", want: "1.0.0.0-dev"},
		{input: "1.0.0+build.5", want: "1.0.0.0"},
		{input: "1.0.0 as 2.0.0", want: "1.0.0.0"},
		{input: "1.x-dev", want: "1.9999999.9999999.9999999-dev"},
		{input: "2.3.x-dev", want: "2.3.9999999.9999999-dev"},
		{input: "dev-main", want: "dev-main"},
		{input: "dev-feature/foo", want: "dev-feature/foo"},
		{input: "master", want: "dev-master"},
		{input: "", wantErr: true},
		{input: "latest", wantErr: true},
		{input: "1.2.3.4.5", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := domain.NormalizeVersion(tt.input)
			if tt.wantErr {
				require.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExactConstraint(t *testing.T) {
	c, err := domain.ExactConstraint("1.0.0")
	require.NoError(t, err)
	assert.Equal(t, "=", c.Operator)
	assert.Equal(t, "1.0.0.0", c.Version)
	assert.Equal(t, "=1.0.0.0", c.String())

	_, err = domain.ExactConstraint("not a version")
	require.ErrorContains(t, err, domain.ErrInvalidVersion.Error())
}

func TestRequest_Install(t *testing.T) {
	req := domain.NewRequest()
	req.Install("b", domain.Constraint{Operator: "=", Version: "1.0.0.0"})
	req.Install("a", domain.Constraint{Operator: "=", Version: "2.0.0.0"})
	req.Install("b", domain.Constraint{Operator: "=", Version: "1.1.0.0"})

	installs := req.Installs()
	require.Len(t, installs, 2)
	assert.Equal(t, "b", installs[0].Name)
	assert.Equal(t, "1.1.0.0", installs[0].Constraint.Version)
	assert.Equal(t, "a", installs[1].Name)

	var zero domain.Request
	assert.Empty(t, zero.Installs())
}

func TestInstalledSet(t *testing.T) {
	set := domain.NewInstalledSet()
	set.Add(domain.Package{Name: "x/second", PrettyVersion: "1.0.0"})
	set.Add(domain.Package{Name: "x/first", PrettyVersion: "2.0.0"})
	set.Add(domain.Package{Name: "x/second", PrettyVersion: "1.1.0"})

	require.Equal(t, 2, set.Len())
	pkgs := set.Packages()
	assert.Equal(t, "x/second", pkgs[0].Name)
	assert.Equal(t, "1.1.0", pkgs[0].PrettyVersion)
	assert.Equal(t, "x/first", pkgs[1].Name)
	assert.Equal(t, domain.PluginMap{"x/second": "1.1.0", "x/first": "2.0.0"}, set.Versions())

	var zero domain.InstalledSet
	zero.Add(domain.Package{Name: "x/zero"})
	assert.Equal(t, 1, zero.Len())
}

func TestNamingConvention(t *testing.T) {
	c := domain.NamingConvention{Suffix: "Bundle", Policy: domain.PolicyStrict}
	assert.True(t, c.Validate("InvoiceBundle"))
	assert.False(t, c.Validate("invoice-bundle"))
	assert.False(t, c.Validate(""))

	dash := domain.NamingConvention{Suffix: "-bundle"}
	assert.True(t, dash.Validate("invoice-bundle"))
}

func TestParsePolicy(t *testing.T) {
	p, err := domain.ParsePolicy("")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyStrict, p)

	p, err = domain.ParsePolicy("Lenient")
	require.NoError(t, err)
	assert.Equal(t, domain.PolicyLenient, p)

	_, err = domain.ParsePolicy("sometimes")
	require.ErrorContains(t, err, domain.ErrInvalidPolicy.Error())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig("/srv/kimai")
	assert.Equal(t, "/srv/kimai", cfg.Root)
	assert.Equal(t, domain.LockFileName, cfg.LockFile)
	assert.Equal(t, domain.DefaultPluginsDir, cfg.PluginsDir)
	assert.Equal(t, domain.PolicyStrict, cfg.Convention.Policy)
	assert.Equal(t, domain.DefaultPluginTypes, cfg.Types)
}
