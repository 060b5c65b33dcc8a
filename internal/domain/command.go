package domain

// Command is an operator decision taken after a failing case
type Command int

const (
	CommandUnrecognized Command = iota
	CommandSkip
	CommandUpdate
	CommandEdit
	CommandQuit
)

// ParseCommand maps a single key to a Command. Ctrl-C quits because the key
// reader puts the terminal in raw mode.
func ParseCommand(key byte) Command {
	switch key {
	case 's', 'S':
		return CommandSkip
	case 'u', 'U':
		return CommandUpdate
	case 'e', 'E':
		return CommandEdit
	case 'q', 'Q', 0x03:
		return CommandQuit
	}
	return CommandUnrecognized
}
