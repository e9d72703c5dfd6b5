// Package netmon tracks network reachability for the client.
// Оно заменяет браузерные события online/offline: состояние выставляется
// снаружи (проверкой healthz или результатом запроса), подписчики получают
// уведомления только на переходах.
package netmon

import (
	"log/slog"
	"sync"
)

// Reachability reports whether the remote store is considered reachable
type Reachability interface {
	Online() bool
}

// Monitor holds the current connectivity state and notifies subscribers
// on transitions. Zero value is not usable, use New.
type Monitor struct {
	logger *slog.Logger
	subs   map[int]chan bool
	nextID int
	online bool
	mu     sync.RWMutex
}

// New creates a monitor with the given initial state
func New(logger *slog.Logger, online bool) *Monitor {
	return &Monitor{
		logger: logger,
		subs:   make(map[int]chan bool),
		online: online,
	}
}

// Online returns the current connectivity state
func (m *Monitor) Online() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.online
}

// SetOnline updates the state. Subscribers are notified only when the
// state actually changes.
func (m *Monitor) SetOnline(online bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.online == online {
		return
	}
	m.online = online

	m.logger.Info("connectivity changed", "online", online)

	for _, ch := range m.subs {
		// Не блокируемся на медленном подписчике
		select {
		case ch <- online:
		default:
		}
	}
}

// Subscribe registers a transition listener. The returned function
// removes the subscription and closes the channel.
func (m *Monitor) Subscribe() (<-chan bool, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextID
	m.nextID++

	ch := make(chan bool, 1)
	m.subs[id] = ch

	unsubscribe := func() {
		m.mu.Lock()
		defer m.mu.Unlock()

		if sub, ok := m.subs[id]; ok {
			delete(m.subs, id)
			close(sub)
		}
	}

	return ch, unsubscribe
}
