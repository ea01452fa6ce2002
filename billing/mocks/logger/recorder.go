// Package logger provides a domain.Logger that records entries for assertions.
package logger

import "sync"

type Entry struct {
	Level  string
	Msg    string
	Fields map[string]any
}

type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(msg string, keysAndValues ...any) { r.record("debug", msg, keysAndValues) }
func (r *Recorder) Info(msg string, keysAndValues ...any)  { r.record("info", msg, keysAndValues) }
func (r *Recorder) Warn(msg string, keysAndValues ...any)  { r.record("warn", msg, keysAndValues) }
func (r *Recorder) Error(msg string, keysAndValues ...any) { r.record("error", msg, keysAndValues) }

func (r *Recorder) record(level, msg string, kv []any) {
	fields := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if key, ok := kv[i].(string); ok {
			fields[key] = kv[i+1]
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{Level: level, Msg: msg, Fields: fields})
}

func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

// Find returns the first entry with the given message.
func (r *Recorder) Find(msg string) (Entry, bool) {
	for _, e := range r.Entries() {
		if e.Msg == msg {
			return e, true
		}
	}
	return Entry{}, false
}
