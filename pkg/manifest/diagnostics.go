package manifest

import (
	"github.com/arthur-debert/showcase/pkg/logging"
	"github.com/rs/zerolog"
)

// attributesToWarnFor are the attributes every example entry is
// expected to end up with; missing ones produce an advisory warning,
// never a failure.
var attributesToWarnFor = []string{"imageUrl", "projectPath"}

// DiagnosticSink receives advisory warnings emitted during assembly
type DiagnosticSink interface {
	Warn(example, message string)
}

// LogSink is the default DiagnosticSink, forwarding warnings to the
// structured logger
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink returns a DiagnosticSink backed by the component logger
func NewLogSink() *LogSink {
	return &LogSink{logger: logging.GetLogger("manifest.diagnostics")}
}

// Warn logs the warning for the given example
func (s *LogSink) Warn(example, message string) {
	s.logger.Warn().Str("example", example).Msg(message)
}

// warnAboutMissingAttributes checks the resolved attribute set for the
// expected attributes and reports each missing one to the sink
func warnAboutMissingAttributes(sink DiagnosticSink, attrs attributeChecker, name string) {
	if sink == nil {
		return
	}
	for _, attribute := range attributesToWarnFor {
		if !attrs.Has(attribute) {
			sink.Warn(name, "missing attribute "+attribute)
		}
	}
}

// attributeChecker is the slice of rules.Attributes the warning pass needs
type attributeChecker interface {
	Has(name string) bool
}
