package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conn-castle/bain-installer/internal/bain"
	"github.com/conn-castle/bain-installer/internal/messages"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   messages.InfoUse,
		Short: messages.InfoShort,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			plugin := bain.New(bain.Options{})
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, messages.InfoNameFmt, plugin.Name())
			_, _ = fmt.Fprintf(out, messages.InfoAuthorFmt, plugin.Author())
			_, _ = fmt.Fprintf(out, messages.InfoVersionFmt, plugin.Version().String())
			_, _ = fmt.Fprintf(out, messages.InfoDescriptionFmt, plugin.Description())
			_, _ = fmt.Fprintf(out, messages.InfoPriorityFmt, plugin.Priority())
			_, _ = fmt.Fprintf(out, messages.InfoManualFmt, plugin.IsManualInstaller())
			_, _ = fmt.Fprintf(out, messages.InfoActiveFmt, plugin.IsActive())
			_, _ = fmt.Fprintf(out, messages.InfoSettingsFmt, len(plugin.Settings()))
			return nil
		},
	}
}
