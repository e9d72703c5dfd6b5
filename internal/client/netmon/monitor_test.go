package netmon

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMonitor(online bool) *Monitor {
	return New(slog.Default(), online)
}

func TestMonitor_InitialState(t *testing.T) {
	assert.True(t, newTestMonitor(true).Online())
	assert.False(t, newTestMonitor(false).Online())
}

func TestMonitor_SetOnline(t *testing.T) {
	m := newTestMonitor(false)

	m.SetOnline(true)
	assert.True(t, m.Online())

	m.SetOnline(false)
	assert.False(t, m.Online())
}

func TestMonitor_SubscribeReceivesTransitions(t *testing.T) {
	m := newTestMonitor(false)

	ch, unsubscribe := m.Subscribe()
	defer unsubscribe()

	m.SetOnline(true)

	select {
	case online := <-ch:
		assert.True(t, online)
	default:
		t.Fatal("expected a notification")
	}
}

func TestMonitor_NoNotificationWithoutTransition(t *testing.T) {
	m := newTestMonitor(true)

	ch, unsubscribe := m.Subscribe()
	defer unsubscribe()

	// Состояние не меняется — уведомления нет
	m.SetOnline(true)

	select {
	case <-ch:
		t.Fatal("unexpected notification")
	default:
	}
}

func TestMonitor_UnsubscribeClosesChannel(t *testing.T) {
	m := newTestMonitor(false)

	ch, unsubscribe := m.Subscribe()
	unsubscribe()

	_, ok := <-ch
	assert.False(t, ok)

	// Повторный вызов безопасен
	unsubscribe()

	// После отписки переходы не паникуют
	require.NotPanics(t, func() {
		m.SetOnline(true)
	})
}

func TestMonitor_SlowSubscriberDoesNotBlock(t *testing.T) {
	m := newTestMonitor(false)

	_, unsubscribe := m.Subscribe()
	defer unsubscribe()

	// Буфер канала равен 1: второй переход не должен блокировать SetOnline
	m.SetOnline(true)
	m.SetOnline(false)
	m.SetOnline(true)

	assert.True(t, m.Online())
}
