// Package preview renders before/after listings of an archive tree as a unified diff.
package preview

import (
	"fmt"
	"strings"

	"github.com/aymanbagabas/go-udiff"
)

const (
	// DefaultMaxLines is the default maximum number of diff lines shown.
	DefaultMaxLines = 40
	// maxLinesFlagName is the CLI flag that raises the cap.
	maxLinesFlagName = "--diff-lines"
)

// Preview is a rendered tree diff.
type Preview struct {
	UnifiedDiff string
	Truncated   bool
}

// Empty reports whether the listings were identical.
func (p Preview) Empty() bool {
	return p.UnifiedDiff == ""
}

// NormalizeMaxLines returns value, or DefaultMaxLines when value is not positive.
func NormalizeMaxLines(value int) int {
	if value <= 0 {
		return DefaultMaxLines
	}
	return value
}

// Render diffs two path listings, truncating the output to maxLines lines.
func Render(before []string, after []string, maxLines int) Preview {
	diff := udiff.Unified("archive", "install", joinLines(before), joinLines(after))
	rendered, truncated := truncate(diff, maxLines)
	return Preview{UnifiedDiff: rendered, Truncated: truncated}
}

func truncate(diff string, maxLines int) (string, bool) {
	limit := NormalizeMaxLines(maxLines)
	lines := splitDiffLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := lines[:limit]
	truncated = append(
		truncated,
		fmt.Sprintf("... (truncated to %d lines; rerun with %s <n> to see more)", limit, maxLinesFlagName),
	)
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func splitDiffLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" {
		return ""
	}
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
