package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/bubbles/table"

	"github.com/nzsnyn/bejalen/app"
	"github.com/nzsnyn/bejalen/models"
)

// colorPalette defines a list of readable background colors
var colorPalette = []string{
	"27",  // Blue
	"29",  // Green
	"124", // Red
	"130", // Orange
	"93",  // Purple
	"172", // Yellow
	"37",  // Cyan
	"64",  // Olive
}

// colorForGroup picks a deterministic color for a group key
func colorForGroup(group string) string {
	hash := 0
	for _, char := range group {
		hash += int(char)
	}
	return colorPalette[hash%len(colorPalette)]
}

// formatSize converts bytes to a human-readable string
func formatSize(bytes int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)
	if bytes >= MB {
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	} else if bytes >= KB {
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	}
	return fmt.Sprintf("%d B", bytes)
}

// sortedGroups returns the group keys with the root group first.
func sortedGroups(groups map[string][]models.AssetNode) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		if k != app.RootGroup {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := groups[app.RootGroup]; ok {
		keys = append([]string{app.RootGroup}, keys...)
	}
	return keys
}

// pickerEntry is one selectable row of the picker.
type pickerEntry struct {
	Group string
	Asset models.AssetNode
}

// buildEntries lays the grouped images out section by section.
func buildEntries(groups map[string][]models.AssetNode) []pickerEntry {
	var entries []pickerEntry
	for _, g := range sortedGroups(groups) {
		for _, a := range groups[g] {
			entries = append(entries, pickerEntry{Group: g, Asset: a})
		}
	}
	return entries
}

func entryRows(entries []pickerEntry) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, table.Row{e.Group, e.Asset.Name, formatSize(e.Asset.Size)})
	}
	return rows
}

// nextSection returns the index of the first entry of the section after the
// one containing cursor, wrapping around.
func nextSection(entries []pickerEntry, cursor int) int {
	if len(entries) == 0 {
		return 0
	}
	for i := cursor + 1; i < len(entries); i++ {
		if entries[i].Group != entries[cursor].Group {
			return i
		}
	}
	return 0
}

// prevSection returns the index of the first entry of the previous section,
// or of the current one when cursor is inside it.
func prevSection(entries []pickerEntry, cursor int) int {
	if len(entries) == 0 {
		return 0
	}
	start := cursor
	for start > 0 && entries[start-1].Group == entries[cursor].Group {
		start--
	}
	if start != cursor || start == 0 {
		return start
	}
	prev := start - 1
	for prev > 0 && entries[prev-1].Group == entries[start-1].Group {
		prev--
	}
	return prev
}
