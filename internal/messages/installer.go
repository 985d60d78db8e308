package messages

// Installer and BAIN plugin messages.
const (
	// InstallerTreeRequired indicates an install was attempted without a tree.
	InstallerTreeRequired          = "file tree is required"
	InstallerNameRequired          = "mod name guess is required"
	InstallerSupportCheckFailedFmt = "%s: support check failed: %w"
	InstallerInstallFailedFmt      = "%s: %w"

	// BainMaybeTitle is the title of the ambiguous-archive question.
	BainMaybeTitle = "May be BAIN installer"
	// BainMaybeText is the body of the ambiguous-archive question.
	BainMaybeText = "This installer looks like it may contain a BAIN installer but I'm not sure. Install as BAIN installer?"

	BainConfirmerRequired     = "a confirmation prompt is required for ambiguous archives"
	BainConfirmFailedFmt      = "confirmation prompt failed: %w"
	BainDialogRequired        = "a package selection dialog is required"
	BainDialogFailedFmt       = "package selection dialog failed: %w"
	BainUpdateTreeFailedFmt   = "failed to apply package selection: %w"
	BainExtractorRequired     = "an extractor is required to read package.txt"
	BainReadManifestFailedFmt = "failed to read package.txt: %w"
)
