package progrock

import (
	"fmt"
	"io"

	"github.com/vito/progrock"
	"go.trai.ch/kimai-plugins/internal/core/domain"
)

// Vertex implements ports.Vertex on a progrock vertex.
// Warnings and errors go to the vertex's stderr stream, everything else to stdout.
type Vertex struct {
	vertex *progrock.VertexRecorder
}

// Log writes msg to the stream matching level.
func (v *Vertex) Log(level domain.LogLevel, msg string) {
	var w io.Writer = v.vertex.Stdout()
	if level >= domain.LogLevelWarn {
		w = v.vertex.Stderr()
	}
	_, _ = fmt.Fprintf(w, "%s %s\n", level, msg)
}

// Complete finishes the vertex, failed when err is non-nil.
func (v *Vertex) Complete(err error) {
	v.vertex.Done(err)
}
