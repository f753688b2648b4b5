package tui

import (
	"fmt"
	"strings"
)

// Command names accepted in command mode.
const (
	CmdSearch = "search"
	CmdAttach = "attach"
	CmdDetach = "detach"
	CmdOpen   = "open"
	CmdLogout = "logout"
	CmdHelp   = "help"
	CmdQuit   = "quit"
)

var aliases = map[string]string{
	"s":  CmdSearch,
	"a":  CmdAttach,
	"h":  CmdHelp,
	"q":  CmdQuit,
	"q!": CmdQuit,
}

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) (Command, error) {
	input = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(input), ":"))
	if input == "" {
		return Command{}, fmt.Errorf("empty command")
	}
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if full, ok := aliases[cmd.Name]; ok {
		cmd.Name = full
	}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}

	switch cmd.Name {
	case CmdAttach:
		if cmd.Args == "" {
			return Command{}, fmt.Errorf("usage: :attach <path>")
		}
	case CmdSearch, CmdDetach, CmdOpen, CmdLogout, CmdHelp, CmdQuit:
	default:
		return Command{}, fmt.Errorf("unknown command %q", cmd.Name)
	}
	return cmd, nil
}
