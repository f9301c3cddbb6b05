// Package logger defines the diagnostic sink the plugin subsystem reports
// through. Every validation problem is surfaced as a log message rather than
// an error return, so the sink is injected to let tests capture diagnostics.
package logger

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Logger receives diagnostic messages. Implementations must not alter
// control flow; callers fire and forget.
type Logger interface {
	LogError(message string)
}

// New returns the production Logger, backed by logrus writing to stderr.
func New() Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	return &logrusLogger{l: l}
}

type logrusLogger struct {
	l *logrus.Logger
}

func (g *logrusLogger) LogError(message string) {
	g.l.Error(message)
}

// Discard is a Logger that drops all messages.
var Discard Logger = discard{}

type discard struct{}

func (discard) LogError(string) {}

// Capture records messages for inspection in tests.
type Capture struct {
	mu       sync.Mutex
	messages []string
}

// LogError appends the message to the captured list.
func (c *Capture) LogError(message string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.messages = append(c.messages, message)
}

// Messages returns a copy of everything logged so far.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.messages))
	copy(out, c.messages)
	return out
}

// Len returns the number of captured messages.
func (c *Capture) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.messages)
}
