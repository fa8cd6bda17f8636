package config

import (
	"sync"

	"fyne.io/fyne/v2"
)

// MemoryPreferences is a fyne.Preferences kept in memory. Headless tools use
// it in place of the app's persistent store.
type MemoryPreferences struct {
	mu        sync.RWMutex
	data      map[string]any
	listeners []func()
}

var _ fyne.Preferences = (*MemoryPreferences)(nil)

// NewMemoryPreferences returns an empty MemoryPreferences.
func NewMemoryPreferences() *MemoryPreferences {
	return &MemoryPreferences{data: make(map[string]any)}
}

func lookup[T any](m *MemoryPreferences, key string, fallback T) T {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.data[key].(T); ok {
		return v
	}
	return fallback
}

func (m *MemoryPreferences) set(key string, value any) {
	m.mu.Lock()
	m.data[key] = value
	listeners := append([]func(){}, m.listeners...)
	m.mu.Unlock()
	for _, l := range listeners {
		l()
	}
}

func (m *MemoryPreferences) Bool(key string) bool { return lookup(m, key, false) }
func (m *MemoryPreferences) BoolWithFallback(key string, fallback bool) bool {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetBool(key string, value bool) { m.set(key, value) }

func (m *MemoryPreferences) BoolList(key string) []bool { return lookup(m, key, []bool{}) }
func (m *MemoryPreferences) BoolListWithFallback(key string, fallback []bool) []bool {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetBoolList(key string, value []bool) { m.set(key, value) }

func (m *MemoryPreferences) Float(key string) float64 { return lookup(m, key, 0.0) }
func (m *MemoryPreferences) FloatWithFallback(key string, fallback float64) float64 {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetFloat(key string, value float64) { m.set(key, value) }

func (m *MemoryPreferences) FloatList(key string) []float64 { return lookup(m, key, []float64{}) }
func (m *MemoryPreferences) FloatListWithFallback(key string, fallback []float64) []float64 {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetFloatList(key string, value []float64) { m.set(key, value) }

func (m *MemoryPreferences) Int(key string) int { return lookup(m, key, 0) }
func (m *MemoryPreferences) IntWithFallback(key string, fallback int) int {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetInt(key string, value int) { m.set(key, value) }

func (m *MemoryPreferences) IntList(key string) []int { return lookup(m, key, []int{}) }
func (m *MemoryPreferences) IntListWithFallback(key string, fallback []int) []int {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetIntList(key string, value []int) { m.set(key, value) }

func (m *MemoryPreferences) String(key string) string { return lookup(m, key, "") }
func (m *MemoryPreferences) StringWithFallback(key string, fallback string) string {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetString(key string, value string) { m.set(key, value) }

func (m *MemoryPreferences) StringList(key string) []string { return lookup(m, key, []string{}) }
func (m *MemoryPreferences) StringListWithFallback(key string, fallback []string) []string {
	return lookup(m, key, fallback)
}
func (m *MemoryPreferences) SetStringList(key string, value []string) { m.set(key, value) }

// RemoveValue deletes key.
func (m *MemoryPreferences) RemoveValue(key string) {
	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()
}

// AddChangeListener registers a callback run after every Set call.
func (m *MemoryPreferences) AddChangeListener(listener func()) {
	m.mu.Lock()
	m.listeners = append(m.listeners, listener)
	m.mu.Unlock()
}

// ChangeListeners returns the registered callbacks.
func (m *MemoryPreferences) ChangeListeners() []func() {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]func(){}, m.listeners...)
}
