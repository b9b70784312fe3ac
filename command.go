// Package cmdex implements a single-command flag parser and dispatcher.
package cmdex

import (
	"errors"
	"fmt"
	"io"
	"os"
)

var (
	// ErrInvalidName is returned by AddFlag when an empty short or long
	// flag identifier is specified.
	ErrInvalidName = errors.New("cmdex: invalid flag name")
	// ErrDuplicateName is returned by AddFlag when an already registered
	// short or long flag identifier is specified.
	ErrDuplicateName = errors.New("cmdex: duplicate flag name")
	// ErrNoInput is returned by Execute when arguments contain no
	// positional input for the handler.
	ErrNoInput = errors.New("cmdex: no input")
	// ErrValueRequired is returned by Execute when a non-boolean flag is
	// given as the last argument, with no value following it.
	ErrValueRequired = errors.New("cmdex: flag value required")
	// ErrInvalidValue is returned by Execute when the argument following a
	// non-boolean flag cannot be converted to the flag's value kind.
	ErrInvalidValue = errors.New("cmdex: invalid flag value")
)

const (
	helpShort    = "h"
	helpLong     = "help"
	versionShort = "v"
	versionLong  = "version"
)

// HandlerFunc is a prototype of a function that handles a successful
// Command invocation.
//
// It receives the first positional argument as input and the Command's
// flags excluding the reserved help and version flags, in declaration
// order. Flag values seen on command line are already set when the
// handler runs. The error it returns is passed back to the Execute caller.
type HandlerFunc = func(input string, flags []*Flag) error

// Command is a single command definition. Its Execute method is to be
// invoked with the raw process argument vector. For example:
//  err := command.Execute(os.Args)
//
// A Command always carries two reserved boolean flags registered at
// construction, "-h/--help" and "-v/--version", in that order, ahead of
// any user flags. If either is parsed from arguments Execute renders the
// corresponding text and returns without invoking the handler; help wins
// when both are set. Given no arguments at all Execute behaves as if
// "--help" was specified.
//
// Additional flags are registered with AddFlag before Execute. Boolean
// flags are presence-only. Text, int and float flags take their value
// from the argument immediately following them.
//
// Any argument not addressing a flag is positional; the first positional
// argument is the handler's input. An argument that looks like a flag but
// matches no registered flag is discarded, optionally with a warning.
//
// Help and version rendering are pluggable; see HelpRenderer and
// VersionRenderer. Rendered text and warnings are written to the
// Command's output which defaults to os.Stdout.
type Command struct {
	// name is the program name, used in reserved flag help and version text.
	name string
	// version is the program version, used in version text.
	version string
	// description is the command description shown in help text.
	description string
	// usage is the command usage line shown in help text.
	usage string
	// flags are the command flags in registration order.
	// Reserved flags always occupy the first two slots.
	flags []*Flag
	// run is the handler to invoke when arguments select neither help
	// nor version.
	run HandlerFunc
	// helprender renders help text.
	helprender HelpRenderer
	// versionrender renders version text.
	versionrender VersionRenderer
	// out is the sink for rendered text and warnings.
	out io.Writer
	// warnunknown enables warnings for unrecognized flag arguments.
	warnunknown bool
}

// New returns a new *Command with given name, version, description, usage
// and handler, carrying the reserved help and version flags and the
// default renderers.
//
// Name and version are configuration; they are never read from the
// process environment or build metadata.
func New(name, version, description, usage string, run HandlerFunc) *Command {
	c := &Command{
		name:          name,
		version:       version,
		description:   description,
		usage:         usage,
		run:           run,
		helprender:    DefaultHelpRenderer{},
		versionrender: DefaultVersionRenderer{},
		out:           os.Stdout,
	}
	c.flags = append(c.flags, NewBoolFlag(helpShort, helpLong, "help for "+name))
	c.flags = append(c.flags, NewBoolFlag(versionShort, versionLong, "version for "+name))
	return c
}

// AddFlag registers flag with the Command. Both identifiers are required
// and must be unique among registered flags; registration of an ambiguous
// flag fails here rather than surfacing as a parse ambiguity later.
//
// If an error occurs the flag is not registered.
func (c *Command) AddFlag(flag *Flag) error {
	if flag.short == "" || flag.long == "" {
		return ErrInvalidName
	}
	for _, f := range c.flags {
		if f.short == flag.short || f.long == flag.long {
			return ErrDuplicateName
		}
	}
	c.flags = append(c.flags, flag)
	return nil
}

// Name returns the program name.
func (c *Command) Name() string { return c.name }

// Version returns the program version.
func (c *Command) Version() string { return c.version }

// Description returns the command description.
func (c *Command) Description() string { return c.description }

// Usage returns the command usage line.
func (c *Command) Usage() string { return c.usage }

// Flags returns all registered flags in registration order, reserved
// flags included.
func (c *Command) Flags() []*Flag { return c.flags }

// SetHelpRenderer replaces the help renderer.
func (c *Command) SetHelpRenderer(r HelpRenderer) { c.helprender = r }

// SetVersionRenderer replaces the version renderer.
func (c *Command) SetVersionRenderer(r VersionRenderer) { c.versionrender = r }

// SetOutput replaces the output sink for rendered text and warnings.
func (c *Command) SetOutput(w io.Writer) { c.out = w }

// SetWarnUnknown sets whether an argument that looks like a flag but
// matches no registered flag is reported on the output sink. Unrecognized
// flags are discarded either way, they are never an error.
func (c *Command) SetWarnUnknown(warn bool) { c.warnunknown = warn }

// Execute parses args and either renders help or version text or invokes
// the handler, usually invoked as "Execute(os.Args)".
//
// args is the raw process argument vector; args[0] is by convention the
// program path and is never matched against flags. If args carries no
// user arguments at all Execute substitutes a single "--help" argument
// before parsing.
//
// Returns ErrNoInput if the handler was selected but no positional
// argument exists, a parse error on a bad or missing flag value, or
// whatever the handler returns. Help and version runs return nil.
func (c *Command) Execute(args []string) error {
	c.reset()
	var tokens []string
	if len(args) <= 1 {
		tokens = []string{LongPrefix + helpLong}
	} else {
		tokens = args[1:]
	}
	positional, err := c.partition(tokens)
	if err != nil {
		return err
	}
	if f := c.flag(helpShort); f != nil && f.value.Bool() {
		fmt.Fprintln(c.out, c.helprender.HelpText(c))
		return nil
	}
	if f := c.flag(versionShort); f != nil && f.value.Bool() {
		fmt.Fprintln(c.out, c.versionrender.VersionText(c))
		return nil
	}
	if len(positional) == 0 {
		return ErrNoInput
	}
	return c.run(positional[0], c.userFlags())
}

// partition walks tokens once and returns the positional tokens in
// original order. Flag tokens are matched against every registered flag
// and update the matching flag's value in place; a boolean flag is set to
// true, any other kind consumes the token following the flag as its
// value. Tokens are never removed from the slice being scanned, the
// positional result is built separately.
//
// A flag-prefixed token matching no registered flag is dropped from the
// result. It is reported on the output sink if warnunknown is set.
func (c *Command) partition(tokens []string) ([]string, error) {
	positional := make([]string, 0, len(tokens))
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		if !isFlag(token) {
			positional = append(positional, token)
			continue
		}
		var matched, consumed bool
		for _, f := range c.flags {
			if !f.Match(token) {
				continue
			}
			matched = true
			if f.value.kind != KindBool {
				if i+1 >= len(tokens) {
					return nil, fmt.Errorf("%w: '%s'", ErrValueRequired, token)
				}
				if err := f.value.set(tokens[i+1]); err != nil {
					return nil, fmt.Errorf("%w: '%s' for flag '%s': %v", ErrInvalidValue, tokens[i+1], token, err)
				}
				consumed = true
			} else {
				// Presence-only; no token is consumed.
				f.value.boolval = true
			}
			f.parsed = true
		}
		if consumed {
			i++
		}
		if !matched && c.warnunknown {
			fmt.Fprintln(c.out, "warning: unrecognized flag '"+token+"'")
		}
	}
	return positional, nil
}

// flag returns the registered flag with given short identifier, or nil.
func (c *Command) flag(short string) *Flag {
	for _, f := range c.flags {
		if f.short == short {
			return f
		}
	}
	return nil
}

// userFlags returns registered flags without the reserved help and
// version flags, in registration order.
func (c *Command) userFlags() []*Flag {
	flags := make([]*Flag, 0, len(c.flags))
	for _, f := range c.flags {
		if f.short == helpShort || f.short == versionShort {
			continue
		}
		flags = append(flags, f)
	}
	return flags
}

// reset restores all flag values and parsed states prior to parsing.
func (c *Command) reset() {
	for _, f := range c.flags {
		f.value.reset()
		f.parsed = false
	}
}
