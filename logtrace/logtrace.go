// Package logtrace sends parser traces to a commonlog logger instead
// of a plain writer.
package logtrace

import (
	"github.com/tliron/commonlog"

	"github.com/clarete/combinator"
)

// Logger is the subset of commonlog.Logger used by the observer
type Logger interface {
	Debugf(format string, values ...any)
}

// Observer logs one debug message per parser attempt.  The nesting of
// the attempts is carried in the `depth` of the messages.
type Observer struct {
	log        Logger
	depth      int
	previewLen int
}

// New creates an observer logging to the commonlog logger `name`
func New(name string, cfg *combinator.Config) *Observer {
	return NewWithLogger(commonlog.GetLogger(name), cfg)
}

// NewWithLogger creates an observer logging to `log`
func NewWithLogger(log Logger, cfg *combinator.Config) *Observer {
	return &Observer{log: log, previewLen: cfg.GetInt("trace.preview_len")}
}

func (o *Observer) Enter(id string, s *combinator.Scanner) {
	o.log.Debugf("enter %s depth=%d offset=%d input=%q", id, o.depth, s.Offset(), s.Preview(o.previewLen))
	o.depth++
}

func (o *Observer) Exit(id string, s *combinator.Scanner, m combinator.Match) {
	o.depth--
	if m.Success {
		o.log.Debugf("match %s depth=%d offset=%d length=%d", id, o.depth, m.Offset, m.Length)
		return
	}
	o.log.Debugf("fail %s depth=%d offset=%d input=%q", id, o.depth, s.Offset(), s.Preview(o.previewLen))
}
