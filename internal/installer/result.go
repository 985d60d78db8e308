// Package installer defines the contract between the mod-management host and
// its installer plugins: identity metadata, install results, and the guessed
// mod name that installers refine while they run.
package installer

// Result is the terminal outcome of an install attempt.
type Result int

const (
	// ResultFailed means the installer hit an error.
	ResultFailed Result = iota
	// ResultSuccess means the tree was rewritten and the mod can be installed.
	ResultSuccess
	// ResultCanceled means the user dismissed the installer.
	ResultCanceled
	// ResultManualRequested means the user asked to arrange the files by hand.
	ResultManualRequested
	// ResultNotAttempted means the installer did not handle the archive.
	ResultNotAttempted
)

// String returns a lower-case label for r.
func (r Result) String() string {
	switch r {
	case ResultFailed:
		return "failed"
	case ResultSuccess:
		return "success"
	case ResultCanceled:
		return "canceled"
	case ResultManualRequested:
		return "manual requested"
	case ResultNotAttempted:
		return "not attempted"
	default:
		return "unknown"
	}
}
