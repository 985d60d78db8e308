package bain

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/conn-castle/bain-installer/internal/filetree"
	"github.com/conn-castle/bain-installer/internal/messages"
)

// minOptionDirectories is the least number of valid option directories a BAIN
// package offers; with fewer there is nothing to choose between.
const minOptionDirectories = 2

// Classification is the outcome of counting an archive's option directories.
type Classification struct {
	Valid   []string
	Invalid []string
	Ignored []string
}

// Verdict states what a Classification means before any user input.
type Verdict int

const (
	// VerdictUnsupported means fewer than two valid option directories.
	VerdictUnsupported Verdict = iota
	// VerdictSupported means at least two valid and no invalid option directories.
	VerdictSupported
	// VerdictAmbiguous means the user has to decide.
	VerdictAmbiguous
)

// Verdict applies the BAIN decision policy to c.
func (c Classification) Verdict() Verdict {
	switch {
	case len(c.Valid) < minOptionDirectories:
		return VerdictUnsupported
	case len(c.Invalid) == 0:
		return VerdictSupported
	default:
		return VerdictAmbiguous
	}
}

// IsValidTopLayer reports whether dir could be installed as the game's data
// directory: at least one child is a known data directory or a file with a
// known plugin/resource suffix.
func (i *Installer) IsValidTopLayer(dir *filetree.Dir) bool {
	for _, entry := range dir.Entries() {
		if entry.IsDir() {
			if IsTopLevelDirectory(entry.Name()) {
				i.log.Debugf("BAIN: %s on the top level.", entry.Name())
				return true
			}
		} else if IsTopLevelSuffix(entry.Suffix()) {
			return true
		}
	}
	return false
}

// Classify sorts the archive's top-level directories into valid, invalid and
// ignored option directories. Files at the root are not counted. tree is not modified.
func (i *Installer) Classify(tree *filetree.Dir) Classification {
	var c Classification
	for _, entry := range tree.Entries() {
		dir, ok := entry.(*filetree.Dir)
		if !ok {
			continue
		}
		switch {
		case IsIgnoredOptionDirectory(dir.Name()):
			c.Ignored = append(c.Ignored, dir.Name())
		case i.IsValidTopLayer(dir):
			c.Valid = append(c.Valid, dir.Name())
		default:
			c.Invalid = append(c.Invalid, dir.Name())
		}
	}
	return c
}

// IsArchiveSupported reports whether tree looks like a BAIN package. When some
// option directories look valid and others do not, the Confirmer decides.
// This is a heuristic; false positives and negatives are possible.
func (i *Installer) IsArchiveSupported(tree *filetree.Dir) (bool, error) {
	if tree == nil {
		return false, fmt.Errorf(messages.InstallerTreeRequired)
	}
	c := i.Classify(tree)
	i.log.WithFields(logrus.Fields{
		"valid":   len(c.Valid),
		"invalid": len(c.Invalid),
		"ignored": len(c.Ignored),
	}).Debug("BAIN: classified option directories")

	switch c.Verdict() {
	case VerdictUnsupported:
		return false, nil
	case VerdictSupported:
		return true, nil
	default:
		return i.confirmAmbiguous()
	}
}
