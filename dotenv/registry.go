package dotenv

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/gandalfthegui/dotenv/internal/envfile"
)

var (
	// ErrFileNotFound is returned when the env file cannot be opened.
	ErrFileNotFound = errors.New("env file not found")
	// ErrRead is returned when the env file was opened but reading it failed
	// part way through.
	ErrRead = errors.New("env file read failed")
)

// Environment is the variable store a Registry writes to.
type Environment interface {
	Lookup(key string) (string, bool)
	Set(key, value string) error
	Unset(key string) error
}

// processEnv is the real process environment.
type processEnv struct{}

func (processEnv) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (processEnv) Set(key, value string) error      { return os.Setenv(key, value) }
func (processEnv) Unset(key string) error           { return os.Unsetenv(key) }

// ProcessEnv returns the Environment backed by os.LookupEnv/Setenv/Unsetenv.
func ProcessEnv() Environment { return processEnv{} }

// Registry loads env files into an Environment and remembers which keys it
// set, so that Clear can remove exactly those.
//
// Load, Clear, LoadedKeys, IsLoaded and LastError are serialized by a single
// mutex. Get and Has read the Environment directly without it.
//
// The zero value is ready to use and writes to the process environment.
type Registry struct {
	env Environment

	mu      sync.Mutex
	keys    []string // insertion order, no duplicates
	seen    map[string]struct{}
	loaded  bool
	lastErr string
}

// NewRegistry returns a Registry writing to env. A nil env means the
// process environment.
func NewRegistry(env Environment) *Registry {
	if env == nil {
		env = processEnv{}
	}
	return &Registry{
		env:  env,
		seen: make(map[string]struct{}),
	}
}

func (r *Registry) environment() Environment {
	if r.env == nil {
		return processEnv{}
	}
	return r.env
}

// Load reads path with DefaultOptions.
func (r *Registry) Load(path string) error {
	return r.LoadWithOptions(path, DefaultOptions())
}

// LoadWithOptions reads path and applies each parsed entry to the
// environment. When opts.Overwrite is false, keys that already exist are
// left alone. The returned error wraps ErrFileNotFound or ErrRead.
func (r *Registry) LoadWithOptions(path string, opts Options) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(path)
	if err != nil {
		r.lastErr = "could not open the .env file: " + path
		logger().Warn(r.lastErr, "err", err)
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	defer f.Close()

	r.lastErr = ""
	env := r.environment()
	applied := 0
	scanner := envfile.NewScanner(f)
	for scanner.Scan() {
		e, ok := envfile.ParseLine(scanner.Text(), opts)
		if !ok {
			continue
		}
		if !opts.Overwrite {
			if _, exists := env.Lookup(e.Key); exists {
				logger().Debug("keeping existing value", "key", e.Key)
				continue
			}
		}
		if err := env.Set(e.Key, e.Value); err != nil {
			logger().Warn("could not set variable", "key", e.Key, "err", err)
			continue
		}
		r.track(e.Key)
		applied++
		logger().Debug("set variable", "key", e.Key)
	}
	if err := scanner.Err(); err != nil {
		r.lastErr = fmt.Sprintf("could not read the .env file: %s: %v", path, err)
		logger().Warn(r.lastErr)
		return fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}

	r.loaded = true
	logger().Debug("loaded env file", "path", path, "applied", applied)
	return nil
}

// track must be called with r.mu held.
func (r *Registry) track(key string) {
	if _, ok := r.seen[key]; ok {
		return
	}
	if r.seen == nil {
		r.seen = make(map[string]struct{})
	}
	r.seen[key] = struct{}{}
	r.keys = append(r.keys, key)
}

// Get returns the value of key in the environment, or def if it is unset.
func (r *Registry) Get(key, def string) string {
	if v, ok := r.environment().Lookup(key); ok {
		return v
	}
	return def
}

// Has reports whether key is set in the environment.
func (r *Registry) Has(key string) bool {
	_, ok := r.environment().Lookup(key)
	return ok
}

// LoadedKeys returns a copy of the keys this registry has set, in the order
// they were first seen.
func (r *Registry) LoadedKeys() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.keys)
}

// Clear unsets every key this registry has set and resets it to the
// not-loaded state. Keys it did not set are untouched.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	env := r.environment()
	for _, key := range r.keys {
		if err := env.Unset(key); err != nil {
			logger().Warn("could not unset variable", "key", key, "err", err)
		}
	}
	r.keys = nil
	clear(r.seen)
	r.loaded = false
}

// IsLoaded reports whether a file has been opened successfully since
// construction or the last Clear.
func (r *Registry) IsLoaded() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loaded
}

// LastError returns the message recorded by the most recent failed Load,
// or "" if the most recent open succeeded.
func (r *Registry) LastError() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastErr
}
