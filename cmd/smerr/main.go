// Command smerr inspects the sourcemap failure taxonomy: it lists every kind,
// explains a persisted numeric code, and renders messages the way a host
// binding would observe them.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

type options struct {
	verbose bool
	plain   bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "smerr",
		Short:         "Inspect sourcemap error kinds and messages",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := setupLogger(opts.verbose); err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = Logger().Sync()
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&opts.plain, "plain", false, "Disable styled output")

	cmd.AddCommand(
		newListCmd(opts),
		newExplainCmd(opts),
		newBrowseCmd(opts),
	)
	return cmd
}

// styled reports whether output to w should use terminal styling.
func (o *options) styled(w io.Writer) bool {
	if o.plain {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
