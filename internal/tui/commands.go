package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/pebbles/internal/pebbles"
)

// CommandKind identifies what the user typed
type CommandKind int

const (
	CmdNew CommandKind = iota
	CmdAction
	CmdState
	CmdHelp
	CmdQuit
)

// Command is a parsed line of input
type Command struct {
	Kind   CommandKind
	Config pebbles.Config // CmdNew
	Action pebbles.Action // CmdAction
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrUsage          = errors.New("usage")
)

var helpLines = []string{
	"Available commands:",
	"  <n>, take <n>                    - Take n pebbles",
	"  new <pebbles> <max> [easy|hard]  - Start the game",
	"  restart [<pebbles> <max> [diff]] - Start over, same settings by default",
	"  giveup                           - Concede to the program",
	"  state                            - Refresh the game state",
	"  help                             - Show this help",
	"  quit                             - Leave",
}

// ParseCommand parses one line of input. current supplies the defaults for a
// bare restart and may be nil.
func ParseCommand(input string, current *pebbles.GameState) (Command, error) {
	parts := strings.Fields(strings.ToLower(input))
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: type 'help' for commands", ErrUsage)
	}
	name, args := parts[0], parts[1:]

	if n, err := strconv.ParseUint(name, 10, 32); err == nil && len(args) == 0 {
		return Command{Kind: CmdAction, Action: pebbles.Turn{Count: uint32(n)}}, nil
	}

	switch name {
	case "t", "take":
		if len(args) != 1 {
			return Command{}, fmt.Errorf("%w: take <n>", ErrUsage)
		}
		n, err := parseCount(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Kind: CmdAction, Action: pebbles.Turn{Count: n}}, nil

	case "new", "init":
		cfg, err := parseSettings(args)
		if err != nil {
			return Command{}, fmt.Errorf("%w: new <pebbles> <max> [easy|hard]: %w", ErrUsage, err)
		}
		return Command{Kind: CmdNew, Config: cfg}, nil

	case "r", "restart":
		if len(args) == 0 {
			if current == nil {
				return Command{}, fmt.Errorf("%w: no game to repeat, restart <pebbles> <max> [easy|hard]", ErrUsage)
			}
			return Command{Kind: CmdAction, Action: pebbles.Restart{
				Difficulty:        current.Difficulty,
				PebblesCount:      current.PebblesCount,
				MaxPebblesPerTurn: current.MaxPebblesPerTurn,
			}}, nil
		}
		cfg, err := parseSettings(args)
		if err != nil {
			return Command{}, fmt.Errorf("%w: restart <pebbles> <max> [easy|hard]: %w", ErrUsage, err)
		}
		return Command{Kind: CmdAction, Action: pebbles.Restart{
			Difficulty:        cfg.Difficulty,
			PebblesCount:      cfg.PebblesCount,
			MaxPebblesPerTurn: cfg.MaxPebblesPerTurn,
		}}, nil

	case "g", "giveup", "give-up", "concede":
		return Command{Kind: CmdAction, Action: pebbles.GiveUp{}}, nil
	case "s", "state":
		return Command{Kind: CmdState}, nil
	case "h", "help", "?":
		return Command{Kind: CmdHelp}, nil
	case "q", "quit", "exit":
		return Command{Kind: CmdQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, name)
}

func parseCount(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid count %q", ErrUsage, s)
	}
	return uint32(n), nil
}

// parseSettings reads "<pebbles> <max> [difficulty]". Values are not
// validated here; the host decides.
func parseSettings(args []string) (pebbles.Config, error) {
	if len(args) < 2 || len(args) > 3 {
		return pebbles.Config{}, errors.New("wrong number of arguments")
	}
	count, err := parseCount(args[0])
	if err != nil {
		return pebbles.Config{}, err
	}
	perTurn, err := parseCount(args[1])
	if err != nil {
		return pebbles.Config{}, err
	}
	cfg := pebbles.Config{PebblesCount: count, MaxPebblesPerTurn: perTurn, Difficulty: pebbles.Easy}
	if len(args) == 3 {
		if cfg.Difficulty, err = pebbles.ParseDifficulty(args[2]); err != nil {
			return pebbles.Config{}, err
		}
	}
	return cfg, nil
}
