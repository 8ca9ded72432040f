package log

import (
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	formatter "github.com/antonfisher/nested-logrus-formatter"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Fields is an alias so callers do not need to import logrus directly
type Fields = logrus.Fields

// SessionKey is the log field naming the tracking session
const SessionKey = "session"

// Options configures the logger
type Options struct {
	// Level is a logrus level name, eg: debug, info, warn
	Level string
	// File is an optional log file path, rotated by lumberjack
	File string
	// NoColors disables ANSI colours on the console output
	NoColors bool
	// Caller adds the file, line and function to each entry
	Caller bool
	// Output is the console writer, defaults to stderr
	Output io.Writer
}

// New creates a logger from opts
func New(opts Options) (*logrus.Logger, error) {

	level := logrus.InfoLevel

	if opts.Level != "" {
		var err error
		level, err = logrus.ParseLevel(opts.Level)

		if err != nil {
			return nil, fmt.Errorf("invalid log level: %w", err)
		}
	}

	logger := logrus.New()
	logger.SetLevel(level)

	logger.SetFormatter(&formatter.Formatter{
		NoColors:        opts.NoColors,
		TimestampFormat: "02 Jan 06 - 15:04:05.000",
		HideKeys:        false,
		CallerFirst:     true,
		CustomCallerFormatter: func(f *runtime.Frame) string {
			s := strings.Split(f.Function, ".")
			funcName := s[len(s)-1]
			return fmt.Sprintf(" [%s:%d][%s()]", path.Base(f.File), f.Line, funcName)
		},
	})

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	writers := []io.Writer{out}

	if opts.File != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.File,
			LocalTime:  true,
			Compress:   true,
			MaxSize:    100,
			MaxAge:     7,
			MaxBackups: 3,
		})
	}

	logger.SetOutput(io.MultiWriter(writers...))
	logger.SetReportCaller(opts.Caller)

	return logger, nil
}

// WithSession returns an entry tagged with a fresh session id
func WithSession(logger logrus.FieldLogger) *logrus.Entry {
	return logger.WithField(SessionKey, uuid.NewString())
}
