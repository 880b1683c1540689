package utils

import (
	"fmt"
	"regexp"
	"strings"
)

const maxFilenameRunes = 200

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Any run of whitespace, including newlines and tabs
	whitespaceRuns = regexp.MustCompile(`\s+`)
	// Obsidian treats these as link or tag syntax
	obsidianReplacer = strings.NewReplacer("#", "", "^", "", "[", "(", "]", ")")
)

// SanitizeFilename turns a book title into a name usable as an Obsidian note.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = whitespaceRuns.ReplaceAllString(filename, " ")
	filename = obsidianReplacer.Replace(filename)
	filename = strings.TrimSpace(filename)

	// Truncate on rune boundaries so multi-byte titles stay valid UTF-8
	if runes := []rune(filename); len(runes) > maxFilenameRunes {
		filename = strings.TrimSpace(string(runes[:maxFilenameRunes]))
	}

	if filename == "" {
		filename = "Untitled"
	}
	return filename
}

// UniqueFilenames sanitizes titles and disambiguates repeats, case-insensitively,
// with " (2)", " (3)"... suffixes in input order. A suffixed name never collides
// with a name handed out earlier, including a title that already ends in " (N)".
func UniqueFilenames(titles []string) []string {
	names := make([]string, len(titles))
	used := make(map[string]bool, len(titles))
	next := make(map[string]int, len(titles))
	for i, title := range titles {
		base := SanitizeFilename(title)
		baseKey := strings.ToLower(base)

		name := base
		if used[baseKey] {
			n := next[baseKey]
			if n < 2 {
				n = 2
			}
			for used[strings.ToLower(fmt.Sprintf("%s (%d)", base, n))] {
				n++
			}
			name = fmt.Sprintf("%s (%d)", base, n)
			next[baseKey] = n + 1
		}

		used[strings.ToLower(name)] = true
		names[i] = name
	}
	return names
}
