package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const retryPrompt = "Invalid input. Try again: "

// errInput wraps a failure of the underlying reader other than a clean
// end of input.
var errInput = errors.New("read input")

// Prompter reads operator answers line by line.  Every method prints its
// prompt first and returns io.EOF once input is exhausted.  Lines have no
// length limit.
type Prompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewPrompter reads from in and writes prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{r: bufio.NewReader(in), out: out}
}

func (p *Prompter) next() (string, error) {
	line, err := p.r.ReadString('\n')
	switch {
	case err == nil:
	case errors.Is(err, io.EOF):
		// a final line without a newline still counts
		if line == "" {
			return "", io.EOF
		}
	default:
		return "", fmt.Errorf("%w: %w", errInput, err)
	}
	return strings.TrimSpace(line), nil
}

// Line returns the next line with surrounding whitespace removed.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	return p.next()
}

// Int reads an integer, re-prompting until the line parses.
func (p *Prompter) Int(prompt string) (int, error) {
	fmt.Fprint(p.out, prompt)
	for {
		s, err := p.next()
		if err != nil {
			return 0, err
		}
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		fmt.Fprint(p.out, retryPrompt)
	}
}

// Float reads a finite decimal number, re-prompting until the line parses.
func (p *Prompter) Float(prompt string) (float64, error) {
	fmt.Fprint(p.out, prompt)
	for {
		s, err := p.next()
		if err != nil {
			return 0, err
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
			return f, nil
		}
		fmt.Fprint(p.out, retryPrompt)
	}
}
