package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/wippyai/sourcemap/errors"
)

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every error kind with its code and phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.styled(out) {
				return listStyled(out)
			}
			return listPlain(out)
		},
	}
}

func listPlain(w io.Writer) error {
	for _, k := range errors.Kinds() {
		if _, err := fmt.Fprintf(w, "%2d  %-24s  %s\n", k.Code(), k, k.Phrase()); err != nil {
			return err
		}
	}
	return nil
}

func listStyled(w io.Writer) error {
	if _, err := fmt.Fprintln(w, titleStyle.Render("sourcemap error kinds")); err != nil {
		return err
	}
	for _, k := range errors.Kinds() {
		line := codeStyle.Render(fmt.Sprint(k.Code())) + "  " + nameStyle.Render(k.String()) + k.Phrase()
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
