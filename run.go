package flagtory

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ParseOptions specifies how [ParseOrExit] reports a fatal parse error.
type ParseOptions struct {
	// Stderr receives the diagnostic lines. Defaults to [os.Stderr].
	Stderr io.Writer
	// Exit terminates the process. Defaults to [os.Exit].
	Exit func(code int)
}

// ParseOrExit parses args into s. On failure it writes two diagnostic lines, the first naming the
// target type and the second the offending text, then exits with status 1.
//
// The options parameter may be nil, in which case default values are used. See [ParseOptions] for
// more details.
func ParseOrExit(s *Store, args []string, options *ParseOptions) {
	options = checkAndSetParseOptions(options)
	err := s.Parse(args)
	if err == nil {
		return
	}
	for _, line := range diagnostic(err) {
		fmt.Fprintln(options.Stderr, line)
	}
	options.Exit(1)
}

// ParseOS parses the process arguments, excluding the program path, and exits on failure. See
// [ParseOrExit].
func (s *Store) ParseOS() {
	ParseOrExit(s, os.Args[1:], nil)
}

func diagnostic(err error) [2]string {
	var (
		valueErr  *ValueError
		toggleErr *ToggleError
	)
	switch {
	case errors.As(err, &valueErr):
		return [2]string{
			fmt.Sprintf("error: cannot parse flag %s as %s", formatFlagName(valueErr.Flag), valueErr.Kind),
			fmt.Sprintf("error: invalid value %q", valueErr.Text),
		}
	case errors.As(err, &toggleErr):
		return [2]string{
			fmt.Sprintf("error: flag %s expects a %s value", formatFlagName(toggleErr.Flag), toggleErr.Kind),
			"error: no value given and only bool flags can be toggled",
		}
	}
	return [2]string{"error: failed to parse arguments", "error: " + err.Error()}
}

func checkAndSetParseOptions(opt *ParseOptions) *ParseOptions {
	if opt == nil {
		opt = &ParseOptions{}
	}
	if opt.Stderr == nil {
		opt.Stderr = os.Stderr
	}
	if opt.Exit == nil {
		opt.Exit = os.Exit
	}
	return opt
}
