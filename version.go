package cmdex

// VersionRenderer renders a Command's version text. Implement it to
// replace the default rendering via Command.SetVersionRenderer.
type VersionRenderer interface {
	// VersionText returns the version text for command, without a
	// trailing newline.
	VersionText(command *Command) string
}

// DefaultVersionRenderer is the VersionRenderer a Command is constructed
// with. It renders "{name} version {version}".
type DefaultVersionRenderer struct{}

// VersionText implements VersionRenderer on DefaultVersionRenderer.
func (DefaultVersionRenderer) VersionText(command *Command) string {
	return command.Name() + " version " + command.Version()
}

// ColorVersionRenderer renders the default version line with the program
// name styled for terminal display.
type ColorVersionRenderer struct{}

// VersionText implements VersionRenderer on ColorVersionRenderer.
func (ColorVersionRenderer) VersionText(command *Command) string {
	return bold(command.Name()) + " version " + command.Version()
}
