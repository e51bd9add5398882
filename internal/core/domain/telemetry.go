package domain

import "log/slog"

// LogLevel is the severity of a line recorded on a telemetry vertex.
// It shares its scale with slog so vertex output and log output agree.
type LogLevel slog.Level

const (
	// LogLevelInfo marks progress lines such as resolved install paths.
	LogLevelInfo = LogLevel(slog.LevelInfo)
	// LogLevelWarn marks recoverable problems such as unsatisfied pins.
	LogLevelWarn = LogLevel(slog.LevelWarn)
	// LogLevelError marks the failure that aborted a vertex.
	LogLevelError = LogLevel(slog.LevelError)
)

// String renders the level the way the slog text handler does.
func (l LogLevel) String() string {
	return slog.Level(l).String()
}

// VertexCheckPins names the vertex recording the pin check of a resolution cycle.
const VertexCheckPins = "check pins"

// InstallVertex names the vertex recording the install path resolution of pkg.
func InstallVertex(pkg Package) string {
	return "install " + pkg.Name
}
