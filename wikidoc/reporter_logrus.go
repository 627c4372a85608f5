package wikidoc

import (
	"github.com/sirupsen/logrus"
)

// FilePosition is the concrete Position implementation used by callers that
// can attribute a comment to a file/line/column (e.g. goscan). It is not
// required by the core -- Position stays opaque -- but LogReporter knows how
// to pull structured fields out of it when a caller happens to pass one.
type FilePosition struct {
	File string
	Line int
	Col  int
}

// LogReporter is the Diagnostics Adapter: it forwards every warning to a
// logrus.FieldLogger, tagging each entry with source-position fields when
// the Position is a FilePosition. This is the same role logrus.FieldLogger
// plays in the teacher's DatabaseConfig.Open: a caller-supplied structured
// logger, not a package-global one.
type LogReporter struct {
	Logger logrus.FieldLogger
}

func NewLogReporter(logger logrus.FieldLogger) *LogReporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &LogReporter{Logger: logger}
}

func (r *LogReporter) Warning(pos Position, message string) {
	entry := r.Logger
	if fp, ok := pos.(FilePosition); ok {
		entry = r.Logger.WithFields(logrus.Fields{
			"file": fp.File,
			"line": fp.Line,
			"col":  fp.Col,
		})
	}
	entry.Warning(message)
}
