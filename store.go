package flagtory

import (
	"fmt"
	"strings"

	"github.com/go-kit/kit/log"
)

// Store holds registered flags in insertion order. Entries are never removed or reordered.
//
// A Store is not safe for concurrent use. Register flags and call [Store.Parse] from a single
// goroutine.
type Store struct {
	count     int
	entries   []*Entry
	unmatched []Unmatched
	logger    log.Logger
}

// New returns an empty store.
func New() *Store {
	return &Store{logger: log.NewNopLogger()}
}

// SetLogger sets the logger the parser reports to. Set, toggle and unmatched events are logged at
// debug level. A nil logger disables logging.
func (s *Store) SetLogger(logger log.Logger) {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	s.logger = logger
}

// Entry is a single registered flag.
type Entry struct {
	// Name is the canonical flag name, with spaces and dashes removed.
	Name string
	// Description documents the flag. It is never inspected by the parser.
	Description string

	defValue string
	value    flagValue
}

// Kind returns the scalar kind of the flag's value.
func (e *Entry) Kind() Kind { return e.value.Kind() }

// Set parses s as the flag's kind and stores the result.
func (e *Entry) Set(s string) error { return e.value.Set(s) }

// String returns the current value formatted as text.
func (e *Entry) String() string {
	if e == nil || e.value == nil {
		return ""
	}
	return e.value.String()
}

// Get returns the current value. The dynamic type matches the type the flag was registered with.
func (e *Entry) Get() any { return e.value.Get() }

// Default returns the value the flag held at registration, formatted as text.
func (e *Entry) Default() string { return e.defValue }

// IsBoolFlag reports whether the flag holds a bool and may therefore be toggled.
func (e *Entry) IsBoolFlag() bool { return e.value.IsBoolFlag() }

// Add registers a flag holding value and returns a pointer to the stored value. The pointer stays
// valid for the life of the store and observes every change made by [Store.Parse].
//
// The name is stored in canonical form, see [CanonicalName]. Registering the same name twice is
// allowed, but only the first registration is ever matched by the parser.
func Add[T Scalar](s *Store, name, description string, value T) *T {
	p := new(T)
	*p = value
	AddVar(s, p, name, description)
	return p
}

// AddVar registers a flag backed by the variable p. The current value of *p is the default.
func AddVar[T Scalar](s *Store, p *T, name, description string) {
	if p == nil {
		panic(fmt.Sprintf("flagtory: nil pointer registered for flag %q", name))
	}
	e := &Entry{
		Name:        CanonicalName(name),
		Description: description,
		value:       newValue(p),
	}
	e.defValue = e.value.String()
	s.entries = append(s.entries, e)
	s.count++
}

// Lookup returns the first entry whose name equals name, or nil if there is none.
func (s *Store) Lookup(name string) *Entry {
	for _, e := range s.entries {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// Len returns the number of registrations, including shadowed duplicates.
func (s *Store) Len() int { return s.count }

// Entries returns the registered entries in insertion order.
func (s *Store) Entries() []*Entry {
	out := make([]*Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Get retrieves a flag value by name, with type inference. Example usage:
//
//	verbose := flagtory.Get[bool](store, "verbose")
//	port := flagtory.Get[uint16](store, "port")
//
// Get panics if the flag is not registered or was registered with a different type. Both are
// programming errors in the calling application.
func Get[T Scalar](s *Store, name string) T {
	e := s.Lookup(CanonicalName(name))
	if e == nil {
		panic(fmt.Sprintf("internal error: flag not found: %s", formatFlagName(CanonicalName(name))))
	}
	v, ok := e.Get().(T)
	if !ok {
		panic(fmt.Sprintf("internal error: type mismatch for flag %s: registered %s, requested %T",
			formatFlagName(e.Name), e.Kind(), *new(T)))
	}
	return v
}

var canonicalReplacer = strings.NewReplacer(" ", "", "-", "")

// CanonicalName returns name with every space and dash removed. A flag conceptually named
// "allow net" is stored as "allownet" and matched by --allow-net.
func CanonicalName(name string) string {
	return canonicalReplacer.Replace(name)
}

// formatFlagName renders name the way a user types it.
func formatFlagName(name string) string {
	if len(name) == 1 {
		return "-" + name
	}
	return "--" + name
}
