package bain

import (
	"sort"
	"strings"
)

// foldedSet is an immutable case-insensitive name set.
type foldedSet map[string]struct{}

func newFoldedSet(names ...string) foldedSet {
	set := make(foldedSet, len(names))
	for _, name := range names {
		set[strings.ToLower(name)] = struct{}{}
	}
	return set
}

func (s foldedSet) contains(name string) bool {
	_, ok := s[strings.ToLower(name)]
	return ok
}

func (s foldedSet) sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// topLevelDirectories are data-directory names the supported game engines load from.
var topLevelDirectories = newFoldedSet(
	"fonts", "interface", "menus", "meshes", "music", "scripts", "shaders",
	"sound", "strings", "textures", "trees", "video", "facegen", "materials",
	"skse", "obse", "mwse", "nvse", "fose", "f4se", "distantlod", "asi",
	"SkyProc Patchers", "Tools", "MCM", "icons", "bookart", "distantland",
	"mits", "splash", "dllplugins", "Docs", "INITweaks", "CalienteTools",
	"NetScriptFramework", "shadersfx",
)

// topLevelSuffixes are plugin and resource-archive extensions, without the dot.
// A file named .modgroups has the suffix modgroups.
var topLevelSuffixes = newFoldedSet("esp", "esm", "esl", "bsa", "ba2", "modgroups")

// ignoredOptionDirectories hold installer metadata rather than selectable content.
var ignoredOptionDirectories = newFoldedSet("fomod", "omod conversion data")

// ignorePrefix marks option directories that packagers want skipped.
const ignorePrefix = "--"

// IsTopLevelDirectory reports whether name is a known data-directory name.
func IsTopLevelDirectory(name string) bool {
	return topLevelDirectories.contains(name)
}

// IsTopLevelSuffix reports whether suffix is a known plugin or resource extension.
func IsTopLevelSuffix(suffix string) bool {
	return topLevelSuffixes.contains(suffix)
}

// IsIgnoredOptionDirectory reports whether a top-level directory is excluded
// from classification and selection.
func IsIgnoredOptionDirectory(name string) bool {
	return ignoredOptionDirectories.contains(name) || strings.HasPrefix(name, ignorePrefix)
}

// TopLevelDirectories returns the known data-directory names in lower case.
func TopLevelDirectories() []string {
	return topLevelDirectories.sorted()
}

// TopLevelSuffixes returns the known extensions in lower case.
func TopLevelSuffixes() []string {
	return topLevelSuffixes.sorted()
}
