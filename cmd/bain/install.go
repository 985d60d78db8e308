package main

import (
	"fmt"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/installer"
	"github.com/conn-castle/bain-installer/internal/messages"
	"github.com/conn-castle/bain-installer/internal/preview"
)

// Exit codes for outcomes that are not errors.
const (
	exitCanceled        = 1
	exitManualRequested = 2
)

type installFlags struct {
	name      string
	out       string
	dryRun    bool
	diffLines int
}

func newInstallCmd(state *appState) *cobra.Command {
	var flags installFlags

	cmd := &cobra.Command{
		Use:   messages.InstallUse,
		Short: messages.InstallShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("diff-lines") {
				flags.diffLines = state.cfg.Preview.DiffLines
			}
			return runInstall(cmd, state, args[0], flags)
		},
	}
	cmd.Flags().StringVar(&flags.name, "name", "", messages.InstallFlagName)
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", messages.InstallFlagOut)
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, messages.InstallFlagDryRun)
	cmd.Flags().IntVar(&flags.diffLines, "diff-lines", preview.DefaultMaxLines, messages.InstallFlagDiffLines)
	return cmd
}

func runInstall(cmd *cobra.Command, state *appState, dir string, flags installFlags) error {
	if !flags.dryRun {
		if strings.TrimSpace(flags.out) == "" {
			return fmt.Errorf(messages.InstallOutRequired)
		}
		if err := ensureOutsideSource(dir, flags.out); err != nil {
			return err
		}
	}

	fsys, tree, err := loadArchive(dir)
	if err != nil {
		return err
	}
	name := guessName(dir, flags.name)
	before := tree.Paths()

	registry := installer.NewRegistry(state.log)
	registry.Register(newBainInstaller(state, newUI(), fsys))

	result, _, err := registry.Install(name, tree)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch result {
	case installer.ResultSuccess:
		_, _ = fmt.Fprintln(out, color.GreenString(messages.InstallSucceededFmt, name.Value()))
		printPreview(out, preview.Render(before, tree.Paths(), flags.diffLines))
		if flags.dryRun {
			_, _ = fmt.Fprintln(out, messages.InstallDryRunSkipped)
			return nil
		}
		return writeTree(out, tree, fsys, flags.out)
	case installer.ResultManualRequested:
		_, _ = fmt.Fprintln(out, color.YellowString(messages.InstallManualRequestedFmt, name.Value()))
		return &SilentExitError{Code: exitManualRequested}
	case installer.ResultCanceled:
		_, _ = fmt.Fprintln(out, color.YellowString(messages.InstallCanceled))
		return &SilentExitError{Code: exitCanceled}
	case installer.ResultNotAttempted:
		return fmt.Errorf(messages.InstallNotBainFmt, dir)
	default:
		return fmt.Errorf(messages.InstallUnexpectedResultFmt, result)
	}
}

// guessName seeds the mod name from the archive directory and an optional flag.
func guessName(dir string, flagName string) *installer.GuessedValue {
	name := installer.NewGuessedValue(filepath.Base(filepath.Clean(dir)), installer.GuessFallback)
	name.Update(flagName, installer.GuessPreset)
	return name
}

func printPreview(out io.Writer, p preview.Preview) {
	if p.Empty() {
		_, _ = fmt.Fprintln(out, messages.InstallPreviewUnchanged)
		return
	}
	_, _ = fmt.Fprintln(out, messages.InstallPreviewHeader)
	_, _ = fmt.Fprint(out, p.UnifiedDiff)
}

func writeTree(out io.Writer, tree *filetree.Dir, fsys fs.FS, dest string) error {
	if err := tree.WriteTo(fsys, dest); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, messages.InstallWroteFmt, dest)
	return nil
}

// ensureOutsideSource rejects an output directory inside the archive directory.
func ensureOutsideSource(src string, dest string) error {
	absSrc, err := filepath.Abs(src)
	if err != nil {
		return err
	}
	absDest, err := filepath.Abs(dest)
	if err != nil {
		return err
	}
	rel, err := filepath.Rel(absSrc, absDest)
	if err != nil {
		return nil
	}
	if rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))) {
		return fmt.Errorf(messages.InstallOutInsideSourceFmt, dest, src)
	}
	return nil
}
