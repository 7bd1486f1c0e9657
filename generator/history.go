package generator

import (
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// summaryRunes is how much of an input is kept in a log record.
const summaryRunes = 50

// Record 记录一次操作。Records are never mutated once appended.
type Record struct {
	ID           uuid.UUID
	Timestamp    time.Time
	Kind         Kind
	InputSummary string
	Result       Result
}

// TimestampISO formats the timestamp as ISO-8601 with microseconds.
func (r Record) TimestampISO() string {
	return r.Timestamp.Format("2006-01-02T15:04:05.000000Z07:00")
}

// History is an append-only operation log. Another sink can replace MemoryHistory
// as long as it keeps insertion order.
type History interface {
	Append(kind Kind, inputSummary string, result Result) Record
	All() []Record
	Clear()
}

// MemoryHistory keeps records for the lifetime of the process. It is not safe for
// concurrent use.
type MemoryHistory struct {
	records []Record
	now     func() time.Time
}

func NewMemoryHistory() *MemoryHistory {
	return &MemoryHistory{now: time.Now}
}

func (h *MemoryHistory) Append(kind Kind, inputSummary string, result Result) Record {
	rec := Record{
		ID:           uuid.New(),
		Timestamp:    h.now(),
		Kind:         kind,
		InputSummary: inputSummary,
		Result:       result,
	}
	h.records = append(h.records, rec)
	return rec
}

// All returns the records oldest first.
func (h *MemoryHistory) All() []Record {
	return h.records
}

func (h *MemoryHistory) Clear() {
	h.records = nil
}

// Summarize keeps the first 50 characters of s followed by an ellipsis.
func Summarize(s string) string {
	if utf8.RuneCountInString(s) <= summaryRunes {
		return s + "..."
	}
	runes := []rune(s)
	return string(runes[:summaryRunes]) + "..."
}
