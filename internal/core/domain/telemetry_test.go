package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/kimai-plugins/internal/core/domain"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level domain.LogLevel
		want  string
	}{
		{domain.LogLevelInfo, "INFO"},
		{domain.LogLevelWarn, "WARN"},
		{domain.LogLevelError, "ERROR"},
		{domain.LogLevelError + 2, "ERROR+2"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.level.String())
	}
}

func TestInstallVertex(t *testing.T) {
	pkg := domain.Package{Name: "kimai/demobundle", PrettyName: "kimai/DemoBundle"}
	assert.Equal(t, "install kimai/demobundle", domain.InstallVertex(pkg))
}
