// Package assist runs the turn-by-turn dialog between the player, the board
// model and the decision engine.
package assist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned when the player's input ends mid-game.
var ErrInputClosed = errors.New("assist: input closed")

// Console is the line-oriented terminal the player types into.
type Console struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewConsole reads answers from r and writes prompts to w.
func NewConsole(r io.Reader, w io.Writer) *Console {
	return &Console{in: bufio.NewScanner(r), out: w}
}

// Prompt writes prompt without a newline and returns the next input line
// with surrounding whitespace removed.
func (c *Console) Prompt(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", fmt.Errorf("assist: read input: %w", err)
		}
		fmt.Fprintln(c.out)
		return "", ErrInputClosed
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// Println writes one line.
func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

// Printf writes formatted output.
func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
