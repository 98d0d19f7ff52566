package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/sgaunet/loadbar"
)

const defaultInterval = 50 * time.Millisecond

// runDeps holds the terminal probes used by the run command.
type runDeps struct {
	size       loadbar.SizeFunc
	isTerminal func() bool
}

type runOptions struct {
	total    int
	style    string
	clear    bool
	interval time.Duration
}

func defaultRunDeps() runDeps {
	return runDeps{
		size: loadbar.StdoutSize,
		isTerminal: func() bool {
			fd := os.Stdout.Fd()
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// NewRunCommand creates the run command, which steps a bar from zero to its total.
func NewRunCommand() *cobra.Command {
	return newRunCommand(defaultRunDeps())
}

func newRunCommand(deps runDeps) *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Step a progress bar from zero to its total",
		Example: `  loadbar run --total 200 --style wave --clear
  loadbar run -n 50 --interval 100ms`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBar(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), *opts, deps)
		},
	}

	cmd.Flags().IntVarP(&opts.total, "total", "n", 100, "Number of steps")
	cmd.Flags().StringVarP(&opts.style, "style", "s", loadbar.Standard.String(), "Bar style (standard, wave)")
	cmd.Flags().BoolVar(&opts.clear, "clear", false, "Clear the screen before every frame")
	cmd.Flags().DurationVar(&opts.interval, "interval", defaultInterval, "Delay between steps")

	return cmd
}

func runBar(ctx context.Context, out, errOut io.Writer, opts runOptions, deps runDeps) error {
	if opts.total < 1 {
		return fmt.Errorf("--total must be at least 1, got %d", opts.total)
	}
	if opts.interval < 0 {
		return fmt.Errorf("--interval must not be negative, got %v", opts.interval)
	}
	style, err := loadbar.ParseStyle(opts.style)
	if err != nil {
		return fmt.Errorf("--style %q: %w", opts.style, err)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	if !deps.isTerminal() {
		fmt.Fprintln(errOut, "warning: stdout is not a terminal, progress will not be drawn")
	}

	builder := loadbar.New(opts.total).OfType(style).WithWriter(out).WithSizeFunc(deps.size)
	if opts.clear {
		builder = builder.ShouldClear()
	}
	bar := builder.Init()

	for !bar.Done() {
		select {
		case <-ctx.Done():
			return interrupted(ctx, errOut, bar)
		case <-time.After(opts.interval):
		}
		if ctx.Err() != nil {
			return interrupted(ctx, errOut, bar)
		}
		bar.Step()
	}

	return nil
}

// interrupted reports where a cancelled run stopped. Deadlines are returned as errors.
func interrupted(ctx context.Context, errOut io.Writer, bar *loadbar.Bar) error {
	if errors.Is(ctx.Err(), context.Canceled) {
		fmt.Fprintf(errOut, "interrupted at %d/%d\n", bar.Current(), bar.Total())
		return nil
	}
	return ctx.Err()
}
