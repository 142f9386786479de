package provisioning

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-logr/logr"
)

// Logger is the minimal printf-style logging interface phases rely on.
type Logger interface {
	Printf(format string, v ...any)
}

// Observer receives the structured lifecycle events of a provisioning run.
// The pipeline emits phase events; phases emit resource events.
type Observer interface {
	Logger

	// Event records one structured event.
	Event(event Event)

	// Progress reports position within a multi-step operation.
	Progress(phase string, current, total int)

	// WithFields derives an observer that stamps the given fields onto
	// every event it records.
	WithFields(fields map[string]string) Observer
}

// Event is one structured provisioning event.
type Event struct {
	Type      EventType
	Phase     string // emitting phase, e.g. "infrastructure"
	Message   string
	Resource  string // resource name, when the event concerns one
	Timestamp time.Time
	Fields    map[string]string
}

// EventType classifies provisioning events.
type EventType string

// Phase lifecycle events, emitted by RunPhases.
const (
	EventPhaseStarted   EventType = "phase.started"
	EventPhaseCompleted EventType = "phase.completed"
	EventPhaseFailed    EventType = "phase.failed"
)

// Resource lifecycle events, emitted by phases as they reconcile.
const (
	EventResourceCreating EventType = "resource.creating"
	EventResourceCreated  EventType = "resource.created"
	EventResourceExists   EventType = "resource.exists"
	EventResourceDeleting EventType = "resource.deleting"
	EventResourceDeleted  EventType = "resource.deleted"
)

// EventProgress marks position within a long-running operation.
const EventProgress EventType = "progress"

// ConsoleObserver writes events through the standard log package. It is the
// default observer for CLI runs.
type ConsoleObserver struct {
	stamped map[string]string
}

// NewConsoleObserver creates a console-based observer.
func NewConsoleObserver() *ConsoleObserver {
	return &ConsoleObserver{stamped: make(map[string]string)}
}

// Printf implements the Logger interface.
func (o *ConsoleObserver) Printf(format string, v ...any) {
	log.Printf(format, v...)
}

// Event implements the Observer interface.
func (o *ConsoleObserver) Event(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Fields == nil {
		event.Fields = make(map[string]string)
	}
	for k, v := range o.stamped {
		if _, set := event.Fields[k]; !set {
			event.Fields[k] = v
		}
	}
	log.Print(formatEvent(event))
}

// Progress implements the Observer interface.
func (o *ConsoleObserver) Progress(phase string, current, total int) {
	if total == 0 {
		log.Printf("[%s] progress: %d/%d", phase, current, total)
		return
	}
	log.Printf("[%s] progress: %d/%d (%d%%)", phase, current, total, (current*100)/total)
}

// WithFields implements the Observer interface.
func (o *ConsoleObserver) WithFields(fields map[string]string) Observer {
	stamped := make(map[string]string, len(o.stamped)+len(fields))
	for k, v := range o.stamped {
		stamped[k] = v
	}
	for k, v := range fields {
		stamped[k] = v
	}
	return &ConsoleObserver{stamped: stamped}
}

// formatEvent renders an event as a single console line.
func formatEvent(event Event) string {
	parts := []string{string(event.Type)}
	if event.Phase != "" {
		parts = append(parts, fmt.Sprintf("[%s]", event.Phase))
	}
	if event.Resource != "" {
		parts = append(parts, "resource="+event.Resource)
	}
	parts = append(parts, event.Message)

	if len(event.Fields) > 0 {
		pairs := make([]string, 0, len(event.Fields))
		for k, v := range event.Fields {
			pairs = append(pairs, k+"="+v)
		}
		parts = append(parts, "("+strings.Join(pairs, ", ")+")")
	}

	return strings.Join(parts, " ")
}

// LogrObserver emits events through a logr.Logger, for machine-readable
// output or embedding the provisioner in a host program with its own
// logging setup. Event metadata becomes key/value pairs on the log line.
type LogrObserver struct {
	logger logr.Logger
}

// NewLogrObserver creates an observer backed by the given logger.
func NewLogrObserver(logger logr.Logger) *LogrObserver {
	return &LogrObserver{logger: logger}
}

// Printf implements the Logger interface.
func (o *LogrObserver) Printf(format string, v ...any) {
	o.logger.Info(fmt.Sprintf(format, v...))
}

// Event implements the Observer interface.
func (o *LogrObserver) Event(event Event) {
	kv := []any{"type", string(event.Type)}
	if event.Phase != "" {
		kv = append(kv, "phase", event.Phase)
	}
	if event.Resource != "" {
		kv = append(kv, "resource", event.Resource)
	}
	for k, v := range event.Fields {
		kv = append(kv, k, v)
	}
	o.logger.Info(event.Message, kv...)
}

// Progress implements the Observer interface.
func (o *LogrObserver) Progress(phase string, current, total int) {
	o.logger.Info("progress", "phase", phase, "current", current, "total", total)
}

// WithFields implements the Observer interface.
func (o *LogrObserver) WithFields(fields map[string]string) Observer {
	kv := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		kv = append(kv, k, v)
	}
	return &LogrObserver{logger: o.logger.WithValues(kv...)}
}

// LogPhaseStart emits a phase.started event.
func LogPhaseStart(observer Observer, phase string) {
	observer.Event(Event{Type: EventPhaseStarted, Phase: phase, Message: "starting"})
}

// LogPhaseComplete emits a phase.completed event with the phase duration.
func LogPhaseComplete(observer Observer, phase string, duration time.Duration) {
	observer.Event(Event{
		Type:    EventPhaseCompleted,
		Phase:   phase,
		Message: fmt.Sprintf("completed in %v", duration.Round(time.Millisecond)),
	})
}

// LogPhaseFailed emits a phase.failed event carrying the error.
func LogPhaseFailed(observer Observer, phase string, err error) {
	observer.Event(Event{Type: EventPhaseFailed, Phase: phase, Message: fmt.Sprintf("failed: %v", err)})
}

// LogResourceCreating emits a resource.creating event.
func LogResourceCreating(observer Observer, phase, kind, name string) {
	observer.Event(resourceEvent(EventResourceCreating, phase, kind, name, "creating "+kind, ""))
}

// LogResourceCreated emits a resource.created event carrying the provider ID.
func LogResourceCreated(observer Observer, phase, kind, name, id string) {
	observer.Event(resourceEvent(EventResourceCreated, phase, kind, name, kind+" created", id))
}

// LogResourceDeleting emits a resource.deleting event.
func LogResourceDeleting(observer Observer, phase, kind, name string) {
	observer.Event(resourceEvent(EventResourceDeleting, phase, kind, name, "deleting "+kind, ""))
}

// LogResourceDeleted emits a resource.deleted event.
func LogResourceDeleted(observer Observer, phase, kind, name string) {
	observer.Event(resourceEvent(EventResourceDeleted, phase, kind, name, kind+" deleted", ""))
}

func resourceEvent(t EventType, phase, kind, name, message, id string) Event {
	fields := map[string]string{"type": kind}
	if id != "" {
		fields["id"] = id
	}
	return Event{Type: t, Phase: phase, Resource: name, Message: message, Fields: fields}
}
