package argparse

import "os"

// Environment is the read-only key/value source consulted for environment
// fallbacks. It is queried at parse time, never at configuration time.
type Environment interface {
	LookupEnv(key string) (string, bool)
}

// OSEnvironment reads the process environment
type OSEnvironment struct{}

// LookupEnv implements Environment using os.LookupEnv
func (OSEnvironment) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// MapEnvironment is an in-memory Environment, mainly for tests
type MapEnvironment map[string]string

// LookupEnv implements Environment
func (m MapEnvironment) LookupEnv(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}
