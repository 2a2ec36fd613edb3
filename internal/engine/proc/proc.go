// Package proc talks to a decision engine running in another process over
// the line protocol served by engine.Serve.
package proc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/threesus/internal/engine"
	"github.com/vovakirdan/threesus/internal/registry"
	"github.com/vovakirdan/threesus/internal/threes"
)

// Name is the registry identifier of the external engine.
const Name = "external"

// ErrRemote wraps failures reported by the engine with a "?" response.
var ErrRemote = errors.New("engine reported an error")

func init() {
	registry.Register(Name, "External engine process speaking the line protocol",
		func(opts registry.Options) (engine.Engine, error) {
			if opts.Command == "" {
				return nil, errors.New("proc: engine command is not configured")
			}
			return Start(opts.Logger, opts.Command, opts.Args...)
		})
}

// Engine is a connection to an engine process.
type Engine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader
	logger *log.Logger

	name string
	mu   sync.Mutex
}

var _ engine.Engine = (*Engine)(nil)

// Start launches command and asks it for its name.
func Start(logger *log.Logger, command string, args ...string) (*Engine, error) {
	cmd := exec.Command(command, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get stdout pipe: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start engine %s: %w", command, err)
	}

	e, err := newEngine(logger, stdout, stdin)
	if err != nil {
		_ = stdin.Close()
		_ = cmd.Wait()
		return nil, err
	}
	e.cmd = cmd
	return e, nil
}

// NewConn wraps an already connected stream pair.
func NewConn(logger *log.Logger, r io.Reader, w io.WriteCloser) (*Engine, error) {
	return newEngine(logger, r, w)
}

func newEngine(logger *log.Logger, r io.Reader, w io.WriteCloser) (*Engine, error) {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		stdin:  w,
		stdout: bufio.NewReader(r),
		logger: logger,
	}

	name, err := e.sendCommand(engine.CmdName)
	if err != nil {
		return nil, fmt.Errorf("failed to query engine name: %w", err)
	}
	e.name = name
	return e, nil
}

// Name returns the name the engine reported.
func (e *Engine) Name() string {
	return e.name
}

// Recommend implements engine.Engine.
func (e *Engine) Recommend(board threes.Board, deck threes.Deck, hint threes.Hint) (threes.Direction, bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	body, err := e.sendCommand(engine.EncodeRequest(engine.Request{Board: board, Deck: deck, Hint: hint}))
	if err != nil {
		return 0, false, err
	}
	return engine.DecodeMove(body)
}

// sendCommand writes one command and reads the response up to the blank
// line that terminates it.
func (e *Engine) sendCommand(cmd string) (string, error) {
	e.logger.Debug("engine command", "cmd", cmd)

	if _, err := fmt.Fprintf(e.stdin, "%s\n", cmd); err != nil {
		return "", fmt.Errorf("failed to send command: %w", err)
	}

	var response strings.Builder
	for {
		line, err := e.stdout.ReadString('\n')
		if err != nil {
			return "", fmt.Errorf("failed to read response: %w", err)
		}

		line = strings.TrimRight(line, "\r\n")
		if line == "" {
			if response.Len() == 0 {
				continue
			}
			break
		}

		if response.Len() > 0 {
			response.WriteString("\n")
		}
		response.WriteString(line)
	}

	result := response.String()
	e.logger.Debug("engine response", "body", result)

	if msg, ok := strings.CutPrefix(result, "?"); ok {
		return "", fmt.Errorf("%w: %s", ErrRemote, strings.TrimSpace(msg))
	}
	if !strings.HasPrefix(result, "=") {
		return "", fmt.Errorf("%w: unexpected response %q", engine.ErrProtocol, result)
	}
	return strings.TrimSpace(strings.TrimPrefix(result, "=")), nil
}

// Close asks the engine to quit and waits for the process to exit.
func (e *Engine) Close() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := e.sendCommand(engine.CmdQuit); err != nil {
		e.logger.Warn("engine quit failed", "error", err)
	}
	err := e.stdin.Close()
	if e.cmd != nil && e.cmd.Process != nil {
		if waitErr := e.cmd.Wait(); waitErr != nil && err == nil {
			err = waitErr
		}
	}
	return err
}
