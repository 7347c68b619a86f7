package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/npillmayer/schuko/tracing"
)

// newLogger creates the CLI logger. level is one of debug, info, warn or
// error; anything else means info.
func newLogger(w io.Writer, level string) *log.Logger {
	lg := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "svgicon",
	})
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = log.InfoLevel
	}
	lg.SetLevel(lvl)
	return lg
}

// logTracer routes schuko traces of the svgicon packages to a logger.
type logTracer struct {
	logger *log.Logger
	level  tracing.TraceLevel
}

// installTracing makes tracers selected by the svgicon packages write to
// logger, with the tracing key as the log prefix.
func installTracing(logger *log.Logger) {
	level := tracing.LevelInfo
	switch logger.GetLevel() {
	case log.DebugLevel:
		level = tracing.LevelDebug
	case log.WarnLevel, log.ErrorLevel, log.FatalLevel:
		level = tracing.LevelError
	}
	tracing.SetTraceSelector(traceSelector{logger: logger, level: level})
}

type traceSelector struct {
	logger *log.Logger
	level  tracing.TraceLevel
}

func (sel traceSelector) Select(key string) tracing.Trace {
	return &logTracer{logger: sel.logger.WithPrefix(key), level: sel.level}
}

func (t *logTracer) Errorf(msg string, args ...interface{}) {
	t.logger.Errorf(msg, args...)
}

func (t *logTracer) Infof(msg string, args ...interface{}) {
	if t.level >= tracing.LevelInfo {
		t.logger.Infof(msg, args...)
	}
}

func (t *logTracer) Debugf(msg string, args ...interface{}) {
	if t.level >= tracing.LevelDebug {
		t.logger.Debugf(msg, args...)
	}
}

func (t *logTracer) P(key string, value interface{}) tracing.Trace {
	return &logTracer{logger: t.logger.With(key, fmt.Sprint(value)), level: t.level}
}

func (t *logTracer) SetTraceLevel(level tracing.TraceLevel) { t.level = level }

func (t *logTracer) GetTraceLevel() tracing.TraceLevel { return t.level }

func (t *logTracer) SetOutput(w io.Writer) { t.logger.SetOutput(w) }
