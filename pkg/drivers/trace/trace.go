// Package trace carries optional diagnostic events out of the analysis.
package trace

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Stage names the pipeline step that emitted an event.
type Stage string

const (
	StageScan     Stage = "scan"
	StageClassify Stage = "classify"
	StageLabel    Stage = "label"
	StageSelect   Stage = "select"
	StageAssemble Stage = "assemble"
	StageFilter   Stage = "filter"
)

// Event is one diagnostic event.
type Event struct {
	Stage   Stage
	Sheet   string
	Cell    string
	Message string
	Fields  map[string]interface{}
}

// Tracer receives events. Implementations must be safe for concurrent use.
type Tracer interface {
	Event(e Event)
}

type nop struct{}

func (nop) Event(Event) {}

// Nop discards every event.
var Nop Tracer = nop{}

// OrNop returns t, or Nop when t is nil.
func OrNop(t Tracer) Tracer {
	if t == nil {
		return Nop
	}
	return t
}

type logTracer struct {
	log logrus.FieldLogger
}

// NewLogger returns a Tracer that writes events at debug level.
func NewLogger(log logrus.FieldLogger) Tracer {
	return &logTracer{log: log}
}

func (t *logTracer) Event(e Event) {
	fields := logrus.Fields{"stage": string(e.Stage)}
	if e.Sheet != "" {
		fields["sheet"] = e.Sheet
	}
	if e.Cell != "" {
		fields["cell"] = e.Cell
	}
	for k, v := range e.Fields {
		fields[k] = v
	}
	t.log.WithFields(fields).Debug(e.Message)
}

// Recorder keeps events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Event records e.
func (r *Recorder) Event(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}
