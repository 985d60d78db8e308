package messages

// File tree messages.
const (
	FileTreeStatFailedFmt      = "failed to stat %s: %w"
	FileTreeRootNotDirFmt      = "%s is not a directory"
	FileTreeWalkFailedFmt      = "failed to read %s: %w"
	FileTreeMissingParentFmt   = "parent directory of %s missing from tree"
	FileTreeCaseCollisionFmt   = "%s clashes with %s: names differ only in case"
	FileTreeCreateDirFailedFmt = "failed to create directory %s: %w"
	FileTreeOpenFailedFmt      = "failed to open %s: %w"
	FileTreeWriteFailedFmt     = "failed to write %s: %w"
	FileTreeExtractNilFile     = "no file to extract"
	FileTreeExtractNoFS        = "extractor has no filesystem"
	FileTreeExtractFailedFmt   = "failed to extract %s: %w"
	FileTreeDecodeFailedFmt    = "failed to decode %s: %w"
)
