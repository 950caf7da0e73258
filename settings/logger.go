package settings

import (
	"io"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the logger described by l. Entries are written to console and, if a log file
// is configured, to the rotated file; the returned closer closes the file.
func NewLogger(l Logging, console io.Writer) (*logrus.Logger, io.Closer, error) {
	level, err := logrus.ParseLevel(l.Level)
	if err != nil {
		return nil, nil, err
	}

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})
	log.SetLevel(level)
	if len(l.Debug) > 0 && level < logrus.DebugLevel {
		log.SetLevel(logrus.DebugLevel)
	}

	if l.File == "" {
		log.SetOutput(console)
		return log, closerFunc(func() error { return nil }), nil
	}
	file := &lumberjack.Logger{
		Filename:   l.File,
		MaxSize:    l.MaxSize,
		MaxBackups: l.MaxBackups,
		MaxAge:     l.MaxAge,
		Compress:   l.Compress,
	}
	log.SetOutput(io.MultiWriter(console, file))
	return log, file, nil
}

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}
