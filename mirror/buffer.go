package mirror

import (
	"container/list"
	"sync"
)

func newBuffer() *buffer {
	return &buffer{rows: list.New()}
}

// buffer holds rows that failed to publish until the next tick.
type buffer struct {
	rows *list.List
	mx   sync.Mutex
}

func (b *buffer) Push(row Row) {
	b.mx.Lock()
	defer b.mx.Unlock()
	b.rows.PushBack(row)
}

func (b *buffer) Append(rows []Row) {
	b.mx.Lock()
	defer b.mx.Unlock()
	for _, row := range rows {
		b.rows.PushBack(row)
	}
}

// Eject removes and returns up to limit rows in arrival order; limit < 0
// means all of them.
func (b *buffer) Eject(limit int) []Row {
	b.mx.Lock()
	defer b.mx.Unlock()

	if limit > b.rows.Len() || limit < 0 {
		limit = b.rows.Len()
	}

	if limit == 0 {
		return nil
	}

	rows := make([]Row, 0, limit)
	it := 0
	for e := b.rows.Front(); e != nil && it < limit; {
		cur := e
		e = e.Next()
		rows = append(rows, b.rows.Remove(cur).(Row))
		it++
	}
	return rows
}

func (b *buffer) Len() int {
	b.mx.Lock()
	defer b.mx.Unlock()
	return b.rows.Len()
}
