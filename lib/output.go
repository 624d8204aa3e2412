package lib

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"gopkg.in/yaml.v3"
)

const noneLabel = "<none>"

func optionalLabel(s *string) string {
	if s == nil {
		return noneLabel
	}
	return fmt.Sprintf("%q", *s)
}

func writeHeader(result *CommonPath, w io.Writer) {
	fmt.Fprintf(w, "root: %s\n", optionalLabel(result.CommonRoot))
	fmt.Fprintf(w, "dir:  %s\n", optionalLabel(result.CommonDir))
}

// FormatText writes the common root and directory, then each path below it in input order.
func FormatText(result *CommonPath, w io.Writer) {
	writeHeader(result, w)
	for _, parts := range result.ParsedPaths {
		fmt.Fprintln(w, parts.SubPart+parts.BasePart)
	}
}

// FormatTree writes paths as an ASCII tree of their subdirectories, naturally sorted.
// sep splits subdirectories into tree levels.
func FormatTree(result *CommonPath, sep string, w io.Writer) {
	writeHeader(result, w)
	if result.CommonDir == nil {
		for _, parts := range result.ParsedPaths {
			fmt.Fprintln(w, parts.Path)
		}
		return
	}
	type entry struct {
		dirs []string
		name string
	}
	entries := make([]entry, 0, len(result.ParsedPaths))
	for _, parts := range result.ParsedPaths {
		var dirs []string
		if parts.Subdir != nil && *parts.Subdir != "" {
			for _, dir := range strings.Split(*parts.Subdir, sep) {
				if dir != "" {
					dirs = append(dirs, dir)
				}
			}
		}
		entries = append(entries, entry{dirs: dirs, name: parts.BasePart})
	}
	sortKey := func(e entry) string { return strings.Join(append(append([]string{}, e.dirs...), e.name), "\x00") }
	sort.SliceStable(entries, func(firstIndex, secondIndex int) bool {
		return natural.Less(sortKey(entries[firstIndex]), sortKey(entries[secondIndex]))
	})
	seenDirs := make(map[string]bool)
	for _, e := range entries {
		for depth := 1; depth <= len(e.dirs); depth++ {
			prefix := strings.Join(e.dirs[:depth], "\x00")
			if !seenDirs[prefix] {
				seenDirs[prefix] = true
				fmt.Fprintf(w, "%s%s%s\n", strings.Repeat("  ", depth-1), e.dirs[depth-1], sep)
			}
		}
		fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", len(e.dirs)), e.name)
	}
}

// FormatTable writes one tab-separated row per path in input order.
func FormatTable(result *CommonPath, w io.Writer) {
	fmt.Fprintln(w, "path\tcommon\tsub\tbase\tname\text")
	for _, parts := range result.ParsedPaths {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", parts.Path, parts.CommonPart, parts.SubPart, parts.BasePart, parts.NamePart, parts.ExtPart)
	}
}

// FormatJSON writes the result as indented JSON.
func FormatJSON(result *CommonPath, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// FormatYAML writes the result as YAML.
func FormatYAML(result *CommonPath, w io.Writer) error {
	encoder := yaml.NewEncoder(w)
	defer encoder.Close()
	return encoder.Encode(result)
}

// FormatResult writes result in the named format: text, tree, table, json or yaml.
func FormatResult(format string, result *CommonPath, sep string, w io.Writer) error {
	switch format {
	case "", "text":
		FormatText(result, w)
	case "tree":
		FormatTree(result, sep, w)
	case "table":
		FormatTable(result, w)
	case "json":
		return FormatJSON(result, w)
	case "yaml":
		return FormatYAML(result, w)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	return nil
}
