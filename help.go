package cmdex

import (
	"strings"

	"github.com/fatih/color"
)

// HelpRenderer renders a Command's help text. Implement it to replace the
// default rendering via Command.SetHelpRenderer. For example:
//  type shortHelp struct{}
//
//  func (shortHelp) HelpText(c *cmdex.Command) string { return c.Usage() }
type HelpRenderer interface {
	// HelpText returns the help text for command, without a trailing
	// newline.
	HelpText(command *Command) string
}

// DefaultHelpRenderer is the HelpRenderer a Command is constructed with.
//
// It renders the command description, the usage line and one line per
// registered flag in registration order:
//  gives a friendly hello
//
//  Usage:
//    hello TEXT
//
//  Flags:
//    -h, --help	help for hello
//    -v, --version	version for hello
type DefaultHelpRenderer struct{}

// HelpText implements HelpRenderer on DefaultHelpRenderer.
func (DefaultHelpRenderer) HelpText(command *Command) string {
	sb := &strings.Builder{}
	sb.WriteString(command.Description() + "\n")
	sb.WriteString("\n")
	sb.WriteString("Usage:\n")
	sb.WriteString("  " + command.Usage() + "\n")
	sb.WriteString("\n")
	sb.WriteString("Flags:\n")
	for i, flag := range command.Flags() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(flag.String())
	}
	return sb.String()
}

var (
	bold = color.New(color.Bold).SprintFunc()
	cyan = color.New(color.FgCyan).SprintFunc()
)

// ColorHelpRenderer renders the DefaultHelpRenderer layout with styled
// section headers and flag names for terminal display.
type ColorHelpRenderer struct{}

// HelpText implements HelpRenderer on ColorHelpRenderer.
func (ColorHelpRenderer) HelpText(command *Command) string {
	sb := &strings.Builder{}
	sb.WriteString(command.Description() + "\n")
	sb.WriteString("\n")
	sb.WriteString(bold("Usage:") + "\n")
	sb.WriteString("  " + command.Usage() + "\n")
	sb.WriteString("\n")
	sb.WriteString(bold("Flags:") + "\n")
	for i, flag := range command.Flags() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  " + cyan(ShortPrefix+flag.Short()) + ", " + cyan(LongPrefix+flag.Long()) + "\t" + flag.Description())
	}
	return sb.String()
}
