package output

import "strings"

// Formatter defines a pluggable report renderer that returns a byte slice.
// Implementations should be pure (no side effects besides deterministic
// formatting).
type Formatter interface {
	Format(report *Report) ([]byte, error)
	// Name returns a short identifier used for selection and logging.
	Name() string
}

// builtInFormatters stores available formatters.
var builtInFormatters = []Formatter{
	CSVFormatter{},
	ConsoleFormatter{},
}

// aliasMap provides user-friendly synonyms for format names.
var aliasMap = map[string]string{
	"table": "console",
	"text":  "console",
}

// NormalizeFormatName lowers and resolves aliases.
func NormalizeFormatName(name string) string {
	n := strings.ToLower(strings.TrimSpace(name))
	if resolved, ok := aliasMap[n]; ok {
		return resolved
	}
	return n
}

// GetFormatterByName fetches a registered formatter, nil when unknown.
func GetFormatterByName(name string) Formatter {
	n := NormalizeFormatName(name)
	for _, f := range builtInFormatters {
		if f.Name() == n {
			return f
		}
	}
	return nil
}
