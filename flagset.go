package flagtory

import (
	"flag"
	"io"

	"github.com/mfridman/xflag"
)

// FlagSet returns a standard library flag set backed by the store's entries. Values set through the
// flag set are visible through the pointers returned by [Add]. Only the first entry of each name is
// included.
func (s *Store) FlagSet(name string) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	for _, e := range s.entries {
		if fset.Lookup(e.Name) != nil {
			continue
		}
		fset.Var(e, e.Name, e.Description)
	}
	return fset
}

// ParseStandard parses args with the standard library syntax (-name=value, -name value for
// non-boolean flags, bare -name to set a boolean to true). Flags may appear after positional
// arguments. It returns the positional arguments.
func (s *Store) ParseStandard(args []string) ([]string, error) {
	fset := s.FlagSet("")
	if err := xflag.ParseToEnd(fset, args); err != nil {
		return nil, err
	}
	return fset.Args(), nil
}
