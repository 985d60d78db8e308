package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/bain-installer/internal/bain"
	"github.com/conn-castle/bain-installer/internal/messages"
)

func newCheckCmd(state *appState) *cobra.Command {
	return &cobra.Command{
		Use:   messages.CheckUse,
		Short: messages.CheckShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fsys, tree, err := loadArchive(args[0])
			if err != nil {
				return err
			}
			inst := newBainInstaller(state, newUI(), fsys)
			out := cmd.OutOrStdout()

			printClassification(out, inst.Classify(tree))
			supported, err := inst.IsArchiveSupported(tree)
			if err != nil {
				return err
			}
			if supported {
				_, _ = fmt.Fprintln(out, color.GreenString(messages.CheckSupported))
			} else {
				_, _ = fmt.Fprintln(out, color.YellowString(messages.CheckNotSupported))
			}
			return nil
		},
	}
}

func printClassification(out io.Writer, c bain.Classification) {
	_, _ = fmt.Fprintf(out, messages.CheckValidFmt, len(c.Valid), joinNames(c.Valid))
	_, _ = fmt.Fprintf(out, messages.CheckInvalidFmt, len(c.Invalid), joinNames(c.Invalid))
	_, _ = fmt.Fprintf(out, messages.CheckIgnoredFmt, len(c.Ignored), joinNames(c.Ignored))
}

func joinNames(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}
