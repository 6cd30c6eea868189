package summary

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/codepdf/pkg/types"
)

// extensionLabels maps file extensions to the human-readable names
// used in rule-based summaries.
var extensionLabels = map[string]string{
	".js":     "JavaScript",
	".jsx":    "React JSX",
	".ts":     "TypeScript",
	".tsx":    "React TSX",
	".py":     "Python",
	".html":   "HTML",
	".css":    "CSS",
	".styl":   "Stylus",
	".pug":    "Pug templates",
	".json":   "JSON config",
	".md":     "Markdown",
	".txt":    "Text files",
	".sh":     "Shell scripts",
	".sql":    "SQL queries",
	".php":    "PHP",
	".java":   "Java",
	".cpp":    "C++",
	".c":      "C",
	".h":      "Header files",
	".xml":    "XML",
	".yaml":   "YAML",
	".yml":    "YAML",
	".rb":     "Ruby",
	".go":     "Go",
	".rs":     "Rust",
	".swift":  "Swift",
	".kt":     "Kotlin",
	".scala":  "Scala",
	".vue":    "Vue.js",
	".svelte": "Svelte",
}

// contextSuffixes are appended when a keyword appears in any processed
// path; first match wins, at most one suffix.
var contextSuffixes = []struct {
	keyword string
	suffix  string
}{
	{"components", " UI components included."},
	{"views", " Page templates included."},
	{"gulp", " Build scripts included."},
	{"assets", " Asset files included."},
}

type extCount struct {
	ext   string
	count int
}

// RuleBased builds the deterministic fallback summary: the top three
// extensions by frequency, mapped to readable labels, plus the page
// count and at most one contextual suffix.
func RuleBased(processed []types.ProcessedFile, pageCount int) string {
	counts := make(map[string]int)
	for _, f := range processed {
		ext := strings.ToLower(filepath.Ext(f.AbsolutePath))
		if ext != "" {
			counts[ext]++
		}
	}

	main := make([]extCount, 0, len(counts))
	for ext, count := range counts {
		main = append(main, extCount{ext: ext, count: count})
	}
	// Count descending; extension ascending keeps ties deterministic.
	sort.Slice(main, func(i, j int) bool {
		if main[i].count != main[j].count {
			return main[i].count > main[j].count
		}
		return main[i].ext < main[j].ext
	})
	if len(main) > 3 {
		main = main[:3]
	}

	var summary string
	switch len(main) {
	case 0:
		summary = fmt.Sprintf("%d files. %s.", len(processed), pagesPhrase(pageCount))
	case 1:
		if main[0].count == 1 {
			summary = fmt.Sprintf("Single %s file. %s.", label(main[0].ext), pagesPhrase(pageCount))
		} else {
			summary = fmt.Sprintf("%d %s files. %s.", main[0].count, label(main[0].ext), pagesPhrase(pageCount))
		}
	default:
		parts := make([]string, len(main))
		for i, mc := range main {
			parts[i] = fmt.Sprintf("%d %s", mc.count, label(mc.ext))
		}
		summary = fmt.Sprintf("%s. %s.", strings.Join(parts, ", "), pagesPhrase(pageCount))
	}

	return summary + contextSuffix(processed)
}

func label(ext string) string {
	if name, ok := extensionLabels[ext]; ok {
		return name
	}
	return strings.ToUpper(strings.TrimPrefix(ext, "."))
}

func contextSuffix(processed []types.ProcessedFile) string {
	for _, cs := range contextSuffixes {
		for _, f := range processed {
			if strings.Contains(f.AbsolutePath, cs.keyword) || strings.Contains(f.RelativePath, cs.keyword) {
				return cs.suffix
			}
		}
	}
	return ""
}
