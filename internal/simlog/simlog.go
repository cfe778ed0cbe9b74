// Package simlog records gameplay events as structured, filterable entries.
package simlog

import (
	"fmt"
	"strings"

	"go-grid-arcade/internal/event"
)

// Entry is one recorded event.
type Entry struct {
	TimeMs   float64
	RunID    string
	Category string // combat, ability, board, match
	Key      string // event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[t=003000] combat   AgentRespawned   hostile agent #12 hp=200
func (e Entry) String() string {
	return fmt.Sprintf("[t=%06.0f] %-8s %-18s %s", e.TimeMs, e.Category, e.Key, e.Value)
}

// Clock tells the log which run and simulation time an event belongs to.
type Clock func() (runID string, elapsedMs float64)

// Log collects entries. A zero limit keeps everything; otherwise only the
// newest limit entries are kept.
type Log struct {
	entries []Entry
	limit   int
	clock   Clock
}

// New creates a log stamped by clock.
func New(limit int, clock Clock) *Log {
	return &Log{limit: limit, clock: clock}
}

// Add records an entry stamped with the current run and time.
func (l *Log) Add(category, key, value string, numVal float64) {
	e := Entry{Category: category, Key: key, Value: value, NumVal: numVal}
	if l.clock != nil {
		e.RunID, e.TimeMs = l.clock()
	}
	l.entries = append(l.entries, e)
	if l.limit > 0 && len(l.entries) > l.limit {
		l.entries = l.entries[len(l.entries)-l.limit:]
	}
}

// Attach subscribes the log to every event on d.
func (l *Log) Attach(d *event.Dispatcher) {
	d.SubscribeAll(l)
}

// OnEvent turns a dispatched event into an entry.
func (l *Log) OnEvent(e event.Event) {
	key := string(e.Type)
	switch data := e.Data.(type) {
	case event.EntityData:
		l.Add("combat", key, fmt.Sprintf("%s %s #%d hp=%d", data.Team, data.Role, data.ID, data.Health), float64(data.Health))
	case event.AbilityData:
		detail := fmt.Sprintf("%s %s", data.Team, data.Ability)
		if data.Permanent {
			detail += " permanently"
		}
		l.Add("ability", key, detail, 0)
	case event.TileData:
		l.Add("board", key, fmt.Sprintf("(%d,%d) bomb=%v adjacent=%d", data.At.X, data.At.Y, data.Bomb, data.Adjacent), float64(data.Opened))
	case event.CounterData:
		l.Add("counter", key, fmt.Sprintf("%d", data.Value), float64(data.Value))
	case event.MatchData:
		l.Add("match", key, fmt.Sprintf("%s: %s", data.Phase, data.Reason), 0)
	default:
		l.Add("other", key, fmt.Sprintf("%v", e.Data), 0)
	}
}


// Filter returns entries matching the given category and/or key. Pass an
// empty string to match any value for that field.
func (l *Log) Filter(category, key string) []Entry {
	var out []Entry
	for _, e := range l.entries {
		if category != "" && e.Category != category {
			continue
		}
		if key != "" && e.Key != key {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Count returns how many entries match category and key.
func (l *Log) Count(category, key string) int {
	return len(l.Filter(category, key))
}


// Reset drops every entry.
func (l *Log) Reset() {
	l.entries = nil
}

// String returns the full log, one entry per line.
func (l *Log) String() string {
	var sb strings.Builder
	for _, e := range l.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
