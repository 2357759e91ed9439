package rotation

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"png2pdf/contracts"
)

// Prompter asks the operator, one page at a time, whether to rotate.
// All prompts share one buffered reader so piped answers are not dropped
// between questions.
type Prompter struct {
	in     *bufio.Reader
	out    io.Writer
	logger *slog.Logger
	warned bool
	isTTY  bool
}

func NewPrompter(in io.Reader, out io.Writer, logger *slog.Logger) *Prompter {
	if logger == nil {
		logger = slog.Default()
	}
	isTTY := false
	if f, ok := in.(*os.File); ok {
		isTTY = term.IsTerminal(int(f.Fd()))
	}
	return &Prompter{
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
		isTTY:  isTTY,
	}
}

func orientation(landscape bool) string {
	if landscape {
		return "landscape"
	}
	return "portrait"
}

// Confirm blocks until the operator answers for a page. Empty input or EOF
// means no rotation.
func (p *Prompter) Confirm(pageNum int, name string, landscape bool) (bool, error) {
	if !p.isTTY && !p.warned {
		p.logger.Warn("stdin is not a terminal, reading rotation answers from input stream")
		p.warned = true
	}

	fmt.Fprintf(p.out, "Page %d (%s) is currently %s. Rotate 90°? (y/N): ", pageNum, name, orientation(landscape))

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("%w: reading answer for page %d: %v", contracts.ErrIO, pageNum, err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		fmt.Fprintln(p.out)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
