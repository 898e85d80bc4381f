// Package intern provides string interning for go-argparse
// Used for canonical names, aliases and name tokens looked up during parsing
package intern

import (
	"strings"
	"sync"
)

// StringInterner provides thread-safe string interning
type StringInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewStringInterner creates a new string interner with optional pre-allocated capacity
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 64 // Default capacity
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Intern returns the canonical copy of s
func (si *StringInterner) Intern(s string) string {
	// Fast path: read lock for common case
	si.mutex.RLock()
	if interned, exists := si.strings[s]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring write lock
	if interned, exists := si.strings[s]; exists {
		return interned
	}

	// Clone so the table never pins a larger backing array (e.g. an argv token)
	s = strings.Clone(s)
	si.strings[s] = s
	return s
}

// Lookup returns the interned copy of s without inserting it
func (si *StringInterner) Lookup(s string) (string, bool) {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	interned, ok := si.strings[s]
	return interned, ok
}

// PreIntern adds common strings ahead of parsing
func (si *StringInterner) PreIntern(values []string) {
	si.mutex.Lock()
	defer si.mutex.Unlock()

	for _, s := range values {
		si.strings[s] = s
	}
}

// Stats returns the number of interned strings
func (si *StringInterner) Stats() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Clear removes all interned strings (useful for testing)
func (si *StringInterner) Clear() {
	si.mutex.Lock()
	defer si.mutex.Unlock()
	clear(si.strings)
}

// CommonArgumentNames contains frequently used argument names for pre-interning
var CommonArgumentNames = []string{
	"help", "h", "version", "v", "verbose", "quiet", "q",
	"config", "c", "output", "o", "input", "i", "force", "f",
	"debug", "d", "port", "p", "host", "timeout", "count", "color",
}

// GlobalInterner is the process-wide interner used by the argparse package.
var GlobalInterner *StringInterner

//nolint:gochecknoinits // Global interner requires init for pre-interning
func init() {
	GlobalInterner = NewStringInterner(128)
	GlobalInterner.PreIntern(CommonArgumentNames)
}

// Intern interns a string using the global interner
func Intern(s string) string {
	return GlobalInterner.Intern(s)
}
