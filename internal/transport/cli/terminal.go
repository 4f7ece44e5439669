package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-hotseat/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-hotseat/internal/entity"
)

const helpText = `Commands:
  0-8                  place your mark on a cell
  name <1|2> [name]    rename a player, an empty name restores the default
  restart              start a new game
  board                show the board
  help                 show this help
  quit                 leave the game`

var errQuit = errors.New("quit")

type sessionDep interface {
	Play(ctx context.Context, cell int) bool
	Restart(ctx context.Context)
	RenamePlayer(ctx context.Context, slot int, name string) error
	Snapshot() [entity.BoardSize]entity.Mark
	IsOver() bool
	TurnMessage() string
	ResultMessage() string
}

type handler func(ctx context.Context, args []string) error

// Terminal reads one command per line and renders the session after every change.
type Terminal struct {
	logger   *slog.Logger
	session  sessionDep
	in       io.Reader
	out      *termenv.Output
	handlers map[string]handler
}

// New - creates a terminal. With color off the output is plain ASCII.
func New(logger *slog.Logger, session sessionDep, in io.Reader, out io.Writer, color bool) *Terminal {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	terminal := &Terminal{
		logger:   logger.With("component", "terminal"),
		session:  session,
		in:       in,
		out:      termenv.NewOutput(out, opts...),
		handlers: make(map[string]handler),
	}

	terminal.handlers["name"] = terminal.handleName
	terminal.handlers["restart"] = terminal.handleRestart
	terminal.handlers["board"] = terminal.handleBoard
	terminal.handlers["help"] = terminal.handleHelp
	terminal.handlers["quit"] = terminal.handleQuit
	terminal.handlers["exit"] = terminal.handleQuit

	return terminal
}

// Run - renders the board and processes input until quit, end of input or context cancellation.
func (that *Terminal) Run(ctx context.Context) error {
	log := that.logger.With("method", "Run")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines, readErr := that.readLines(ctx)

	that.println("Type help to list commands.")
	that.render()

	for {
		select {
		case <-ctx.Done():
			log.Info("context canceled, leaving the game")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}

				log.Info("end of input")
				return nil
			}

			err := that.processLine(ctx, line)
			if errors.Is(err, errQuit) {
				that.println("Bye!")
				return nil
			}

			if err != nil {
				log.Debug("command failed", "line", line, "error", err)
				that.println(that.out.String(err.Error()).Foreground(that.out.Color("1")).String())
			}
		}
	}
}

// readLines - scans the input in its own goroutine so that Run can also watch the context.
func (that *Terminal) readLines(ctx context.Context) (<-chan string, <-chan error) {
	lines := make(chan string)
	errCh := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(that.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				errCh <- nil
				return
			}
		}

		errCh <- scanner.Err()
	}()

	return lines, errCh
}

// processLine - dispatches a line to the move or command handler.
func (that *Terminal) processLine(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	if len(fields) == 1 {
		cell, err := strconv.Atoi(fields[0])
		if err == nil {
			return that.handleMove(ctx, cell)
		}

		// out of int range
		if errors.Is(err, strconv.ErrRange) {
			return fmt.Errorf("%w: got %s", apperror.ErrInvalidCell, fields[0])
		}
	}

	if handle, ok := that.handlers[strings.ToLower(fields[0])]; ok {
		return handle(ctx, fields[1:])
	}

	return fmt.Errorf("%w: %s", apperror.ErrUnknownCommand, fields[0])
}

// handleMove - a rejected move on the board renders nothing.
func (that *Terminal) handleMove(ctx context.Context, cell int) error {
	if cell < 0 || cell >= entity.BoardSize {
		return fmt.Errorf("%w: got %d", apperror.ErrInvalidCell, cell)
	}

	if !that.session.Play(ctx, cell) {
		return nil
	}

	that.render()

	return nil
}

func (that *Terminal) handleName(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: name <1|2> [name]: %w", apperror.ErrUnknownPlayer)
	}

	slot, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid player %q: %w", args[0], apperror.ErrUnknownPlayer)
	}

	if err = that.session.RenamePlayer(ctx, slot, strings.Join(args[1:], " ")); err != nil {
		return err
	}

	that.render()

	return nil
}

func (that *Terminal) handleRestart(ctx context.Context, _ []string) error {
	that.session.Restart(ctx)
	that.render()

	return nil
}

func (that *Terminal) handleBoard(_ context.Context, _ []string) error {
	that.render()

	return nil
}

func (that *Terminal) handleHelp(_ context.Context, _ []string) error {
	that.println(helpText)

	return nil
}

func (that *Terminal) handleQuit(_ context.Context, _ []string) error {
	return errQuit
}

// render - prints the board followed by the turn line, or the result once the game is over.
func (that *Terminal) render() {
	that.println("")
	that.println(FormatBoard(that.out, that.session.Snapshot()))
	that.println("")

	if that.session.IsOver() {
		that.println(that.out.String(that.session.ResultMessage()).Bold().String())
		that.println("Type restart to play again.")

		return
	}

	that.println(that.session.TurnMessage())
}

func (that *Terminal) println(s string) {
	if _, err := fmt.Fprintln(that.out, s); err != nil {
		that.logger.Error("failed to write output", "error", err)
	}
}
