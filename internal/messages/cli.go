package messages

// CLI messages for user-facing commands.
const (
	// RootUse is the CLI command name.
	RootUse = "bain"
	// RootShort is the short description for the root command.
	RootShort       = "Inspect and install BAIN mod archives"
	RootFlagConfig  = "Path to the config file (default $XDG_CONFIG_HOME/bain/config.toml or ~/.config/bain/config.toml)"
	RootFlagVerbose = "Enable debug logging"

	// VersionCommitFmt formats the commit hash for version display.
	VersionCommitFmt = "commit %s"
	VersionBuildFmt  = "built %s"
	VersionFullFmt   = "%s (%s)"
	VersionTemplate  = "{{.Version}}\n"

	// CheckUse is the check command usage.
	CheckUse          = "check <dir>"
	CheckShort        = "Report whether an extracted archive is a BAIN package"
	CheckSupported    = "supported: installable as a BAIN package"
	CheckNotSupported = "not supported: not a BAIN package"
	CheckValidFmt     = "valid option directories (%d): %s\n"
	CheckInvalidFmt   = "invalid option directories (%d): %s\n"
	CheckIgnoredFmt   = "ignored directories (%d): %s\n"

	// InstallUse is the install command usage.
	InstallUse                 = "install <dir>"
	InstallShort               = "Select BAIN packages from an extracted archive and write the result"
	InstallFlagName            = "Mod name to start from (default: the archive directory name)"
	InstallFlagOut             = "Directory to write the selected files to"
	InstallFlagDryRun          = "Show the resulting layout without writing files"
	InstallFlagDiffLines       = "Maximum number of preview diff lines"
	InstallOutRequired         = "--out is required unless --dry-run is set"
	InstallOutInsideSourceFmt  = "output directory %s must not be inside the archive directory %s"
	InstallSucceededFmt        = "Installed %q"
	InstallManualRequestedFmt  = "Manual installation requested for %q"
	InstallCanceled            = "Installation canceled"
	InstallNotBainFmt          = "%s is not a BAIN package"
	InstallUnexpectedResultFmt = "unexpected install result: %s"
	InstallPreviewHeader       = "Layout changes:"
	InstallPreviewUnchanged    = "Layout unchanged."
	InstallDryRunSkipped       = "Dry run: no files written."
	InstallWroteFmt            = "Wrote %s\n"

	// InfoUse is the info command usage.
	InfoUse            = "info"
	InfoShort          = "Show the BAIN installer plugin details"
	InfoNameFmt        = "name:        %s\n"
	InfoAuthorFmt      = "author:      %s\n"
	InfoVersionFmt     = "version:     %s\n"
	InfoDescriptionFmt = "description: %s\n"
	InfoPriorityFmt    = "priority:    %d\n"
	InfoManualFmt      = "manual:      %t\n"
	InfoActiveFmt      = "active:      %t\n"
	InfoSettingsFmt    = "settings:    %d\n"
)
