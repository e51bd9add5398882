package installer_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/kimai-plugins/internal/core/domain"
	"go.trai.ch/kimai-plugins/internal/core/ports/mocks"
	"go.trai.ch/kimai-plugins/internal/engine/installer"
	"go.uber.org/mock/gomock"
)

func newInstaller(t *testing.T, policy domain.NamingPolicy) (*installer.Installer, *domain.InstalledSet, *mocks.MockLogger, string) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	cfg := domain.DefaultConfig(root)
	cfg.Convention.Policy = policy

	set := domain.NewInstalledSet()
	return installer.New(cfg, filepath.Join(root, "vendor"), set, mockLogger), set, mockLogger, root
}

func TestInstaller_Supports(t *testing.T) {
	inst, _, _, _ := newInstaller(t, domain.PolicyStrict)

	for _, typ := range []string{"kimai2-plugin", "kimai-plugin", "kimai-bundle"} {
		assert.True(t, inst.Supports(typ), typ)
	}
	for _, typ := range []string{"library", "symfony-bundle", "", "Kimai-Plugin"} {
		assert.False(t, inst.Supports(typ), typ)
	}
}

func TestInstaller_InstallPath(t *testing.T) {
	inst, set, _, root := newInstaller(t, domain.PolicyStrict)

	pkg := domain.Package{
		Name:          "kimai/invoicebundle",
		PrettyName:    "kimai/InvoiceBundle",
		PrettyVersion: "1.2.0",
		Type:          "kimai-plugin",
	}

	path, err := inst.InstallPath(pkg)
	require.NoError(t, err)
	want := filepath.Join(root, "var", "plugins", "InvoiceBundle") + string(filepath.Separator)
	assert.Equal(t, want, path)

	// Resolving the same package twice records it once.
	_, err = inst.InstallPath(pkg)
	require.NoError(t, err)
	require.Equal(t, 1, set.Len())
	assert.Equal(t, domain.PluginMap{"kimai/invoicebundle": "1.2.0"}, set.Versions())
}

func TestInstaller_InstallPath_ExtraName(t *testing.T) {
	inst, set, _, root := newInstaller(t, domain.PolicyStrict)

	path, err := inst.InstallPath(domain.Package{
		Name:          "acme/kimai-demo",
		PrettyName:    "acme/kimai-demo",
		PrettyVersion: "dev-main",
		Extra:         map[string]any{"kimai": map[string]any{"name": "DemoBundle"}},
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "var", "plugins", "DemoBundle")+string(filepath.Separator), path)
	assert.Equal(t, 1, set.Len())
}

func TestInstaller_InstallPath_Strict(t *testing.T) {
	inst, set, _, _ := newInstaller(t, domain.PolicyStrict)

	path, err := inst.InstallPath(domain.Package{
		Name:          "kimai/invoice-plugin",
		PrettyName:    "kimai/invoice-plugin",
		PrettyVersion: "1.0.0",
	})
	require.Error(t, err)
	assert.Empty(t, path)
	assert.Contains(t, err.Error(), domain.ErrInvalidPluginName.Error())
	assert.Contains(t, err.Error(), "kimai/invoice-plugin")
	assert.Contains(t, err.Error(), `"Bundle"`)
	assert.Zero(t, set.Len())
}

func TestInstaller_InstallPath_Lenient(t *testing.T) {
	inst, set, mockLogger, root := newInstaller(t, domain.PolicyLenient)

	want := filepath.Join(root, "vendor", "kimai", "invoice-plugin")
	mockLogger.EXPECT().
		Warn(`Kimai plugin kimai/invoice-plugin must end with "Bundle", installing to ` + want + " instead").
		Times(1)

	path, err := inst.InstallPath(domain.Package{
		Name:          "kimai/invoice-plugin",
		PrettyName:    "kimai/invoice-plugin",
		PrettyVersion: "1.0.0",
	})
	require.NoError(t, err)
	assert.Equal(t, want, path)
	assert.Zero(t, set.Len(), "rejected packages are never recorded")
}

func TestInstaller_InstallPath_EmptyName(t *testing.T) {
	inst, _, _, _ := newInstaller(t, domain.PolicyStrict)

	_, err := inst.InstallPath(domain.Package{})
	require.ErrorContains(t, err, domain.ErrEmptyPackageName.Error())
}
