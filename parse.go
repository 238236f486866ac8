package flagtory

import (
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"

	"github.com/mfridman/flagtory/pkg/suggest"
)

// Parse walks args once and updates the matched flags in place. args must not include the program
// path, typically os.Args[1:].
//
// A flag followed by a value token is set from that token. A flag that is the last argument, or is
// followed by another flag-shaped token, is toggled. Tokens that match no flag are skipped and
// recorded, see [Store.Unmatched].
//
// Parsing stops at the first [*ValueError] or [*ToggleError]. Flags handled before the failure keep
// their new values.
func (s *Store) Parse(args []string) error {
	s.unmatched = nil
	for i, arg := range args {
		name, ok := flagName(arg)
		if !ok {
			// Either the value of the previous flag or a stray token.
			continue
		}
		if name == "" {
			continue
		}
		e := s.Lookup(name)
		if e == nil {
			s.recordUnmatched(arg, name)
			continue
		}
		if i+1 < len(args) && !isFlag(args[i+1]) {
			if err := s.set(e, args[i+1]); err != nil {
				return err
			}
			continue
		}
		if err := s.toggle(e); err != nil {
			return err
		}
	}
	return nil
}

// Unmatched returns the flag-shaped arguments the last call to [Store.Parse] could not match, in
// the order they appeared.
func (s *Store) Unmatched() []Unmatched {
	out := make([]Unmatched, len(s.unmatched))
	copy(out, s.unmatched)
	return out
}

func (s *Store) set(e *Entry, text string) error {
	if err := e.Set(text); err != nil {
		return &ValueError{Flag: e.Name, Kind: e.Kind(), Text: text, Err: err}
	}
	level.Debug(s.log()).Log("msg", "flag set", "flag", e.Name, "value", e.String())
	return nil
}

func (s *Store) toggle(e *Entry) error {
	if !e.value.toggle() {
		return &ToggleError{Flag: e.Name, Kind: e.Kind()}
	}
	level.Debug(s.log()).Log("msg", "flag toggled", "flag", e.Name, "value", e.String())
	return nil
}

func (s *Store) recordUnmatched(token, name string) {
	var names []string
	seen := make(map[string]bool, len(s.entries))
	for _, e := range s.entries {
		if !seen[e.Name] {
			seen[e.Name] = true
			names = append(names, e.Name)
		}
	}
	u := Unmatched{
		Token:       token,
		Name:        name,
		Suggestions: suggest.FindSimilar(name, names, 3),
	}
	s.unmatched = append(s.unmatched, u)
	level.Debug(s.log()).Log("msg", "unmatched flag", "token", token, "suggestions", strings.Join(u.Suggestions, ","))
}

func (s *Store) log() log.Logger {
	if s.logger == nil {
		return log.NewNopLogger()
	}
	return s.logger
}

// flagName classifies arg by prefix and returns the candidate flag name. Dashes inside a
// double-dash token separate words and are dropped.
func flagName(arg string) (string, bool) {
	if rest, ok := strings.CutPrefix(arg, "--"); ok {
		return strings.ReplaceAll(rest, "-", ""), true
	}
	if rest, ok := strings.CutPrefix(arg, "-"); ok {
		return rest, true
	}
	return "", false
}

func isFlag(arg string) bool {
	return strings.HasPrefix(arg, "-")
}
