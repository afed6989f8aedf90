package commands

import (
	"context"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(focus completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(focus completion)
`,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(os.Stdout)
		},
	}

	topLevel.AddCommand(cmd)
}

// pathCompletions offers vault item paths. Completion runs before
// PersistentPreRunE, so settings are loaded here.
func pathCompletions(toComplete string) []string {
	if err := env.load(); err != nil {
		return nil
	}
	p, err := env.persistence()
	if err != nil {
		return nil
	}
	var out []string
	for _, it := range p.ListCandidates(context.Background()) {
		if strings.HasPrefix(it.Path, toComplete) {
			out = append(out, it.Path)
		}
	}
	return out
}
