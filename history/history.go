// Package history keeps the in-memory calculation history: an append-only,
// bounded ring of (expression, result) pairs owned by the presentation
// layer. The expression engine never reads or writes it.
package history

// Entry is one completed calculation.
type Entry struct {
	Expr   string
	Result string
}

// Log is a fixed-capacity ring: appends beyond capacity drop the oldest
// entry. Index 0 is the oldest retained entry.
type Log struct {
	buf   []Entry
	head  int
	count int
}

// New creates a log that retains up to n entries.
func New(n int) *Log {
	if n < 1 {
		n = 1
	}
	return &Log{buf: make([]Entry, n)}
}

func (l *Log) Len() int { return l.count }

func (l *Log) Cap() int { return len(l.buf) }

// Append records an entry, evicting the oldest when full.
func (l *Log) Append(e Entry) {
	l.buf[l.head] = e
	l.head++
	if l.head >= len(l.buf) {
		l.head = 0
	}
	if l.count < len(l.buf) {
		l.count++
	}
}

// At returns the i-th oldest retained entry.
func (l *Log) At(i int) Entry {
	if i < 0 || i >= l.count {
		return Entry{}
	}
	start := l.head - l.count
	if start < 0 {
		start += len(l.buf)
	}
	idx := start + i
	if idx >= len(l.buf) {
		idx -= len(l.buf)
	}
	return l.buf[idx]
}

// LastN returns up to n most recent entries, oldest first.
func (l *Log) LastN(n int) []Entry {
	if n <= 0 || l.count == 0 {
		return nil
	}
	if n > l.count {
		n = l.count
	}
	out := make([]Entry, n)
	start := l.count - n
	for i := 0; i < n; i++ {
		out[i] = l.At(start + i)
	}
	return out
}
