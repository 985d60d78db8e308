package main

import (
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/conn-castle/bain-installer/internal/bain"
	"github.com/conn-castle/bain-installer/internal/config"
	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/logging"
	"github.com/conn-castle/bain-installer/internal/messages"
	"github.com/conn-castle/bain-installer/internal/prompt"
	"github.com/conn-castle/bain-installer/internal/selector"
)

// newUI builds the interactive UI; tests replace it with a scripted one.
var newUI = func() prompt.UI { return prompt.NewHuhUI() }

// openArchiveDir exposes an extracted archive directory as an fs.FS.
var openArchiveDir = func(dir string) fs.FS { return os.DirFS(dir) }

// appState is filled in by the root command before any subcommand runs.
type appState struct {
	cfg *config.Config
	log *logrus.Logger
}

func newRootCmd() *cobra.Command {
	var configPath string
	var verbose bool
	state := &appState{cfg: config.Default(), log: logging.Discard()}

	cmd := &cobra.Command{
		Use:           messages.RootUse,
		Short:         messages.RootShort,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return state.load(cmd, configPath, verbose)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", messages.RootFlagConfig)
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, messages.RootFlagVerbose)

	cmd.AddCommand(
		newCheckCmd(state),
		newInstallCmd(state),
		newInfoCmd(),
	)
	return cmd
}

// load reads the config file and sets up logging and colour output.
func (s *appState) load(cmd *cobra.Command, configPath string, verbose bool) error {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if verbose {
		level = logrus.DebugLevel.String()
	}
	log, err := logging.New(level, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if !cfg.Output.Color {
		color.NoColor = true
	}
	log.WithField("config", path).Debug("configuration loaded")
	s.cfg = cfg
	s.log = log
	return nil
}

// loadArchive builds the in-memory tree for an extracted archive directory.
func loadArchive(dir string) (fs.FS, *filetree.Dir, error) {
	fsys := openArchiveDir(dir)
	tree, err := filetree.Load(fsys, ".")
	if err != nil {
		return nil, nil, err
	}
	return fsys, tree, nil
}

// newBainInstaller wires the BAIN plugin to the terminal UI and the archive directory.
func newBainInstaller(state *appState, ui prompt.UI, fsys fs.FS) *bain.Installer {
	return bain.New(bain.Options{
		Confirmer: prompt.UIConfirmer{UI: ui},
		NewDialog: selector.Factory(ui),
		Extractor: filetree.FSExtractor{FS: fsys},
		Log:       state.log,
	})
}
