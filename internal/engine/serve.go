package engine

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Serve answers protocol commands read from r with e, writing responses to
// w, until quit or end of input.
func Serve(r io.Reader, w io.Writer, e Engine, logger *log.Logger) error {
	scanner := bufio.NewScanner(r)
	bw := bufio.NewWriter(w)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		logger.Debug("command received", "cmd", fields[0])

		var body string
		var err error
		quit := false

		switch fields[0] {
		case CmdRecommend:
			body, err = serveRecommend(e, fields[1:])
		case CmdName:
			body = e.Name()
		case CmdQuit:
			quit = true
		default:
			err = fmt.Errorf("unknown command %q", fields[0])
		}

		if err != nil {
			logger.Warn("command failed", "cmd", fields[0], "error", err)
			fmt.Fprintf(bw, "? %s\n\n", err)
		} else {
			fmt.Fprintf(bw, "= %s\n\n", body)
		}
		if flushErr := bw.Flush(); flushErr != nil {
			return fmt.Errorf("engine: write response: %w", flushErr)
		}
		if quit {
			return nil
		}
	}

	return scanner.Err()
}

func serveRecommend(e Engine, args []string) (string, error) {
	req, err := DecodeRequest(args)
	if err != nil {
		return "", err
	}
	dir, ok, err := e.Recommend(req.Board, req.Deck, req.Hint)
	if err != nil {
		return "", err
	}
	return EncodeMove(dir, ok), nil
}
