package tabular

import (
	"context"
	"fmt"
	"sync"
)

type Memory struct {
	mu     sync.RWMutex
	tables map[string][]Row
}

func NewMemory() *Memory {
	m := &Memory{tables: make(map[string][]Row)}
	for _, t := range Tables {
		m.tables[t] = nil
	}
	return m
}

func (m *Memory) Read(_ context.Context, table string) ([]Row, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows, ok := m.tables[table]
	if !ok {
		return nil, ErrUnknownTable
	}

	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = append(Row(nil), r...)
	}
	return out, nil
}

func (m *Memory) Apply(_ context.Context, ops []Op) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// resolve everything first so a bad op leaves the tables untouched
	type cellRef struct{ row, col int }
	refs := make([]cellRef, len(ops))
	pending := make(map[string]map[string]bool)
	for i, op := range ops {
		if _, ok := m.tables[op.Table]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTable, op.Table)
		}
		switch op.Kind {
		case OpAppend:
			if pending[op.Table] == nil {
				pending[op.Table] = make(map[string]bool)
			}
			pending[op.Table][op.Row.Get(KeyColumn(op.Table))] = true
		case OpUpdateCell:
			col, err := ColumnIndex(op.Table, op.Column)
			if err != nil {
				return err
			}
			row := m.find(op.Table, op.Key)
			if row < 0 && !pending[op.Table][op.Key] {
				return fmt.Errorf("%w: %s/%s", ErrKeyNotFound, op.Table, op.Key)
			}
			refs[i] = cellRef{row: row, col: col}
		default:
			return fmt.Errorf("tabular: unknown op %d", op.Kind)
		}
	}

	for i, op := range ops {
		switch op.Kind {
		case OpAppend:
			m.tables[op.Table] = append(m.tables[op.Table], append(Row(nil), op.Row...))
		case OpUpdateCell:
			row := refs[i].row
			if row < 0 {
				row = m.find(op.Table, op.Key)
			}
			r := m.tables[op.Table][row]
			for len(r) <= refs[i].col {
				r = append(r, "")
			}
			r[refs[i].col] = op.Value
			m.tables[op.Table][row] = r
		}
	}
	return nil
}

func (m *Memory) find(table, key string) int {
	kc := KeyColumn(table)
	for i, r := range m.tables[table] {
		if r.Get(kc) == key {
			return i
		}
	}
	return -1
}
