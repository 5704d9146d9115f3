package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// RunPlain reads lines from in until EOF or ctx is done, writing each
// expansion to out. It is used when input is not a terminal.
func RunPlain(ctx context.Context, in io.Reader, out io.Writer, opts Options) error {
	logger := opts.logger()
	st := newStyles(opts.Renderer)

	if !opts.Quiet {
		fmt.Fprintln(out, Banner(opts.Version))
	}

	scanner := bufio.NewScanner(in)
	for {
		if !opts.Quiet {
			fmt.Fprint(out, opts.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		res := Evaluate(line)
		logResult(logger, res)
		fmt.Fprintln(out, st.format(res, opts.Grid))
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	if !opts.Quiet {
		fmt.Fprintln(out)
	}
	return nil
}
