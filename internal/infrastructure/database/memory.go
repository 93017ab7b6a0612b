package database

import (
	"context"
	"sync/atomic"
)

// MemoryDB is the connection of the in-memory backend. It holds no data;
// it only tracks the lifecycle so the in-memory backend behaves like the
// others at boot and in health checks.
type MemoryDB struct {
	connected atomic.Bool
}

func NewMemoryDB() *MemoryDB {
	return &MemoryDB{}
}

func (m *MemoryDB) Driver() Driver {
	return DriverMemory
}

func (m *MemoryDB) Connect(context.Context) error {
	m.connected.Store(true)
	return nil
}

func (m *MemoryDB) Ping(context.Context) error {
	if !m.connected.Load() {
		return ErrNotInitialized
	}
	return nil
}

func (m *MemoryDB) Close(context.Context) error {
	m.connected.Store(false)
	return nil
}
