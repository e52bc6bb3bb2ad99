package combat

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/samdwyer/roomcrawl/internal/logger"
)

// Log is a fixed-capacity ring of combat messages. Once full, the oldest
// message is overwritten.
type Log struct {
	contents []string
	maxSize  int
	front    int
	now      func() time.Time
}

// NewLog creates a log holding at most maxSize messages.
func NewLog(maxSize int) *Log {
	if maxSize < 1 {
		maxSize = 1
	}
	return &Log{
		contents: make([]string, 0, maxSize),
		maxSize:  maxSize,
		now:      time.Now,
	}
}

// LogCombat records the outcome of an attack made by actor.
func (l *Log) LogCombat(actor string, result Result) {
	verb := "attacked"
	if !result.TargetAlive {
		verb = "killed"
	}
	l.AddMessage(fmt.Sprintf("%s: %s %s %s", l.now().Format("15:04:05"), actor, verb, result.TargetName))

	logger.Component("combat").WithFields(logrus.Fields{
		"actor":        actor,
		"target":       result.TargetName,
		"damage":       result.Damage,
		"target_alive": result.TargetAlive,
	}).Debug("Attack resolved.")
}

// AddMessage appends a raw message.
func (l *Log) AddMessage(msg string) {
	if len(l.contents) < l.maxSize {
		l.contents = append(l.contents, msg)
		return
	}
	l.contents[l.front] = msg
	l.front = (l.front + 1) % l.maxSize
}

// Len returns the number of stored messages.
func (l *Log) Len() int {
	return len(l.contents)
}

// LastN returns up to n of the newest messages, oldest first.
func (l *Log) LastN(n int) []string {
	if n > len(l.contents) {
		n = len(l.contents)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	// Before the ring wraps front is 0 and the newest message is at the end.
	newest := l.front - 1
	if newest < 0 {
		newest = len(l.contents) - 1
	}
	for i := n - 1; i >= 0; i-- {
		out[i] = l.contents[newest]
		newest--
		if newest < 0 {
			newest = len(l.contents) - 1
		}
	}
	return out
}
