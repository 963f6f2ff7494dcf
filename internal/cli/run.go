package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/script"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runCmd = &cobra.Command{
	Use:   "run [script]",
	Short: "Replay an operation script against a vector",
	Long: `Replay an operation script against a vector.

The script is read from the given file, or from stdin when no file (or "-")
is given. One operation per line; '#' starts a comment:

  append <value>          insert <index> <value>   erase <index>
  pop                     reserve <n>              resize <n>
  clear                   at <index>               set <index> <value>
  print`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: bindFlags,
	RunE:    runScript,
}

func init() {
	// add flags
	key := "type"
	runCmd.Flags().String(key, "int", "element type (int, string)")
	key = "reserve"
	runCmd.Flags().Int(key, 0, "capacity to reserve before replaying")
	key = "metrics"
	runCmd.Flags().Bool(key, false, "print Prometheus metrics after the run")
}

// replayOptions carries the resolved configuration of a run.
type replayOptions struct {
	out     io.Writer
	logger  *log.Logger
	reserve int
	metrics bool
}

func runScript(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	name := "stdin"
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening script: %w", err)
		}
		defer f.Close()
		in, name = f, args[0]
	}

	instrs, err := script.Parse(in)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	opts := replayOptions{
		out:     cmd.OutOrStdout(),
		logger:  newLogger(cmd.ErrOrStderr()),
		reserve: viper.GetInt("reserve"),
		metrics: viper.GetBool("metrics"),
	}
	if opts.reserve < 0 {
		return fmt.Errorf("invalid reserve %d", opts.reserve)
	}
	opts.logger.Debug("loaded script", "source", name, "instructions", len(instrs))

	switch typ := viper.GetString("type"); typ {
	case "int":
		return replay[int64](instrs, script.Int64, opts)
	case "string":
		return replay[string](instrs, script.String, opts)
	default:
		return fmt.Errorf("invalid type %s", typ)
	}
}

func replay[T any](instrs []script.Instr, parse script.ValueParser[T], opts replayOptions) error {
	v := vector.NewReserved[T](vector.Reserve(opts.reserve))
	tel := newTelemetry(v.Metrics)

	r := script.NewReplayer(v, parse)
	r.OnStep(func(s script.Step) {
		tel.observe(s)
		opts.logger.Debug("replayed",
			"line", s.Instr.Line,
			"op", s.Instr.Op,
			"size", s.Size,
			"cap", s.Capacity,
			"realloc", s.Reallocated,
			"moves", s.Moves,
		)
		fmt.Fprintln(opts.out, renderStep(s, v.String()))
	})
	if err := r.Run(instrs); err != nil {
		return err
	}

	fmt.Fprintln(opts.out, renderSummary(v.Metrics()))
	if opts.metrics {
		tel.write(opts.out)
	}
	return nil
}
