package devhost

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

func newLogger(out io.Writer, level string) *logrus.Logger {
	l := logrus.New()
	l.Out = out
	l.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	if lvl, err := logrus.ParseLevel(level); err == nil {
		l.Level = lvl
	}
	return l
}

// pluginLog is the rwcore.Logger handed to plugins. Lines carrying the
// plugin logger's ERR: prefix are logged as errors.
type pluginLog struct {
	entry *logrus.Entry
}

func (l pluginLog) Out(text string) {
	if strings.HasPrefix(text, "ERR:") {
		l.entry.Error(text)
		return
	}
	l.entry.Info(text)
}
