package tokenizer

import (
	"bufio"
	"bytes"
	"embed"
	"sort"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"
)

// Language resource lists. The files are loaded once at construction time
// and treated thereafter as immutable, read-only lookup data.
//
//go:embed data
var dataFiles embed.FS

// readList returns the entries of an embedded word list, longest first.
// Lines starting with # and blank lines are skipped.
func readList(name string) []string {
	raw, err := dataFiles.ReadFile("data/" + name)
	if err != nil {
		panic("tokenizer: missing embedded word list " + name)
	}
	var items []string
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	// longest first, so that alternations prefer the longest entry;
	// ties broken lexicographically to keep rule construction deterministic
	sort.Slice(items, func(i, j int) bool {
		if len(items[i]) != len(items[j]) {
			return len(items[i]) > len(items[j])
		}
		return items[i] < items[j]
	})
	return items
}

// newSet builds a membership set from items, optionally case-folded.
func newSet(items []string, foldCase bool) *hashset.Set {
	set := hashset.New()
	for _, item := range items {
		if foldCase {
			item = strings.ToLower(item)
		}
		set.Add(item)
	}
	return set
}
