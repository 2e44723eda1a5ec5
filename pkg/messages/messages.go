// Package messages provides types.MessageSink implementations: a styled
// console writer, a zerolog bridge, an in-memory collector and a fan-out.
package messages

import (
	"fmt"
	"io"
	"sync"

	"github.com/arthur-debert/mapcat/pkg/style"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/rs/zerolog"
)

// ConsoleSink writes one styled line per message
type ConsoleSink struct {
	mu     sync.Mutex
	w      io.Writer
	styles style.Styles
}

// NewConsoleSink writes to w, coloured only when color is true
func NewConsoleSink(w io.Writer, color bool) *ConsoleSink {
	return &ConsoleSink{
		w:      w,
		styles: style.New(style.NewRenderer(w, color)),
	}
}

// Emit implements types.MessageSink
func (c *ConsoleSink) Emit(msg types.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = fmt.Fprintf(c.w, "%s %s\n", c.styles.Label(msg.Severity), msg.Text)
}

// LogSink forwards messages to a zerolog logger
type LogSink struct {
	logger zerolog.Logger
}

// NewLogSink wraps logger
func NewLogSink(logger zerolog.Logger) *LogSink {
	return &LogSink{logger: logger}
}

// Emit implements types.MessageSink
func (l *LogSink) Emit(msg types.Message) {
	event := l.logger.WithLevel(Level(msg.Severity))
	if msg.Path != "" {
		event = event.Str("path", msg.Path)
	}
	event.Str("severity", string(msg.Severity)).Msg(msg.Text)
}

// Level maps a severity to a zerolog level
func Level(sev types.Severity) zerolog.Level {
	switch sev {
	case types.SeverityError:
		return zerolog.ErrorLevel
	case types.SeverityWarning:
		return zerolog.WarnLevel
	case types.SeverityNote, types.SeverityInfo:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Collector records messages in emission order
type Collector struct {
	mu       sync.Mutex
	messages []types.Message
}

// NewCollector returns an empty collector
func NewCollector() *Collector {
	return &Collector{}
}

// Emit implements types.MessageSink
func (c *Collector) Emit(msg types.Message) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, msg)
}

// Messages returns a copy of everything emitted so far
func (c *Collector) Messages() []types.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]types.Message, len(c.messages))
	copy(out, c.messages)
	return out
}

// Has reports whether any message of severity sev was emitted
func (c *Collector) Has(sev types.Severity) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.messages {
		if m.Severity == sev {
			return true
		}
	}
	return false
}

// Reset drops all recorded messages
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = nil
}

// Multi fans a message out to every non-nil sink
func Multi(sinks ...types.MessageSink) types.MessageSink {
	var live multi
	for _, s := range sinks {
		if s != nil {
			live = append(live, s)
		}
	}
	return live
}

type multi []types.MessageSink

func (m multi) Emit(msg types.Message) {
	for _, s := range m {
		s.Emit(msg)
	}
}
