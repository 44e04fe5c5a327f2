package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/rgehrsitz/lifegrid/internal/domain"
)

// Formatter defines a pluggable output formatter that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic formatting).
type Formatter interface {
	Format(snap *domain.Snapshot) ([]byte, error)
	// Name returns a short identifier for logging / debugging.
	Name() string
}

// FormatterFunc adapter to allow ordinary functions to act as a Formatter.
type FormatterFunc struct {
	ID string
	F  func(*domain.Snapshot) ([]byte, error)
}

func (ff FormatterFunc) Format(s *domain.Snapshot) ([]byte, error) { return ff.F(s) }
func (ff FormatterFunc) Name() string                              { return ff.ID }

// WriteFormatted runs a formatter and writes output to a timestamped file
// with extension in the working directory.
func WriteFormatted(f Formatter, snap *domain.Snapshot, ext string) (string, error) {
	return WriteFormattedTo(".", f, snap, ext)
}

// WriteFormattedTo is WriteFormatted with an explicit target directory.
func WriteFormattedTo(dir string, f Formatter, snap *domain.Snapshot, ext string) (string, error) {
	data, err := f.Format(snap)
	if err != nil {
		return "", err
	}
	filename := filepath.Join(dir, fmt.Sprintf("lifegrid_%s.%s", time.Now().Format("20060102_150405"), ext))
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return filename, nil
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	ConsoleFormatter{},
	ConsoleLiteFormatter{},
	HTMLFormatter{},
	SVGFormatter{},
	JSONFormatter{},
	JSONFormatter{IncludeCells: true},
	CSVFormatter{},
	ICSFormatter{},
}

// GetFormatterByName fetches a registered formatter, resolving aliases.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"text":     "console",
	"txt":      "console",
	"stats":    "console-lite",
	"lite":     "console-lite",
	"web":      "html",
	"page":     "html",
	"grid":     "svg",
	"cells":    "json-full",
	"ical":     "ics",
	"calendar": "ics",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if mapped, ok := aliasMap[n]; ok {
		return mapped
	}
	return n
}

// AvailableFormatterNames returns the canonical formatter names.
func AvailableFormatterNames() []string {
	names := make([]string, 0, len(builtInFormatters))
	for _, f := range builtInFormatters {
		names = append(names, f.Name())
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases returns the supported alias keys.
func AvailableFormatAliases() []string {
	keys := make([]string, 0, len(aliasMap))
	for k := range aliasMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FileExtension is the file suffix used when writing a formatter's output.
func FileExtension(f Formatter) string {
	switch f.Name() {
	case "console", "console-lite":
		return "txt"
	case "json-full":
		return "json"
	default:
		return f.Name()
	}
}
