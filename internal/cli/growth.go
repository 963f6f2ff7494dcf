package cli

import (
	"fmt"

	"github.com/pavanmanishd/vector"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var growthCmd = &cobra.Command{
	Use:     "growth",
	Short:   "Show the capacity sequence of N appends from empty",
	Args:    cobra.NoArgs,
	PreRunE: bindFlags,
	RunE:    runGrowth,
}

func init() {
	key := "count"
	growthCmd.Flags().IntP(key, "n", 16, "number of appends")
}

func runGrowth(cmd *cobra.Command, _ []string) error {
	n := viper.GetInt("count")
	if n < 0 {
		return fmt.Errorf("invalid count %d", n)
	}
	out := cmd.OutOrStdout()
	logger := newLogger(cmd.ErrOrStderr())

	v := vector.New[int]()
	for i := 0; i < n; i++ {
		before := v.Cap()
		v.Append(i)
		if v.Cap() == before {
			continue
		}
		fmt.Fprintf(out, "%s cap %d -> %d, moved %d\n",
			opStyle.Render(fmt.Sprintf("append #%-6d", i+1)), before, v.Cap(), i)
		logger.Debug("grew", "size", v.Len(), "cap", v.Cap(), "reallocations", v.Reallocations())
	}
	fmt.Fprintln(out, renderSummary(v.Metrics()))
	return nil
}
