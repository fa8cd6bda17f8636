package util

import "sync/atomic"

// SafeCounter is an int counter safe to use concurrently.
type SafeCounter struct {
	value int64
}

// NewSafeCounter creates a counter starting at zero.
func NewSafeCounter() *SafeCounter {
	return &SafeCounter{}
}

// Increment adds one and returns the new value.
func (c *SafeCounter) Increment() int {
	return int(atomic.AddInt64(&c.value, 1))
}

// Value returns the current value.
func (c *SafeCounter) Value() int {
	return int(atomic.LoadInt64(&c.value))
}

// SafeFlag is a bool safe to use concurrently. It doubles as a single-flight
// guard: TryAcquire succeeds for exactly one caller until Release.
type SafeFlag struct {
	value int32
}

// NewSafeFlag creates a cleared flag.
func NewSafeFlag() *SafeFlag {
	return &SafeFlag{}
}

// Value reports whether the flag is set.
func (f *SafeFlag) Value() bool {
	return atomic.LoadInt32(&f.value) != 0
}

// TryAcquire sets the flag and returns true if it was clear.
func (f *SafeFlag) TryAcquire() bool {
	return atomic.CompareAndSwapInt32(&f.value, 0, 1)
}

// Release clears the flag.
func (f *SafeFlag) Release() {
	atomic.StoreInt32(&f.value, 0)
}
