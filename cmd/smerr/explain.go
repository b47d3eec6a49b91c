package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/sourcemap/errors"
	"github.com/wippyai/sourcemap/host"
)

func newExplainCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "explain <code|name> [reason]",
		Short: "Print the message a host observes for a kind",
		Long: "Resolve a numeric code (as persisted by host bindings) or a kind name\n" +
			"and print the rendered message. A second argument is attached as the reason.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := resolveKind(args[0])
			if err != nil {
				return err
			}

			var e *errors.Error
			if len(args) == 2 {
				e = errors.NewWithReason(k, args[1])
			} else {
				e = errors.New(k)
			}

			msg := render(e)
			Logger().Debug("rendered",
				zap.String("kind", k.String()),
				zap.Uint32("code", k.Code()),
				zap.String("adapter", host.Name),
			)

			out := cmd.OutOrStdout()
			if opts.styled(out) {
				msg = messageStyle.Render(msg)
			}
			_, err = fmt.Fprintln(out, msg)
			return err
		},
	}
}

// resolveKind accepts either a numeric code or a kind name.
func resolveKind(arg string) (errors.Kind, error) {
	if code, err := strconv.ParseUint(arg, 10, 32); err == nil {
		if k, ok := errors.KindFromCode(uint32(code)); ok {
			Logger().Debug("resolved code", zap.String("arg", arg), zap.Stringer("kind", k))
			return k, nil
		}
		return 0, fmt.Errorf("unknown kind %q", arg)
	}
	if k, ok := errors.ParseKind(arg); ok {
		Logger().Debug("resolved name", zap.String("arg", arg), zap.Uint32("code", k.Code()))
		return k, nil
	}
	return 0, fmt.Errorf("unknown kind %q", arg)
}

// render returns the message the compiled host adapter exposes.
func render(e *errors.Error) string {
	return host.Render(e).Message
}
