package types

import (
	"fmt"
	"regexp"
	"strings"
)

// Language identifies the programming language of reviewed code.
type Language string

const (
	LanguagePython     Language = "python"
	LanguageJavaScript Language = "javascript"
	LanguageTypeScript Language = "typescript"
	LanguageJava       Language = "java"
	LanguageGo         Language = "go"
	LanguageUnknown    Language = "unknown"
)

// ParseLanguage normalizes a caller-supplied language string. An empty
// string is valid and means "auto-detect".
func ParseLanguage(raw string) (Language, error) {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return LanguageUnknown, nil
	case LanguagePython:
		return LanguagePython, nil
	case LanguageJavaScript:
		return LanguageJavaScript, nil
	case LanguageTypeScript:
		return LanguageTypeScript, nil
	case LanguageJava:
		return LanguageJava, nil
	case LanguageGo:
		return LanguageGo, nil
	case LanguageUnknown:
		return LanguageUnknown, nil
	default:
		return LanguageUnknown, fmt.Errorf("unsupported language %q", raw)
	}
}

// languageHints maps each language to regexes whose matches vote for it.
// Order is fixed so detection is deterministic on ties.
var languageHints = []struct {
	lang     Language
	patterns []*regexp.Regexp
}{
	{LanguagePython, compileAll(
		`(?m)^\s*def\s+\w+\s*\(`,
		`(?m)^\s*class\s+\w+`,
		`(?m)^\s*import\s+\w+`,
		`(?m)^\s*from\s+\w+\s+import`,
		`(?m):\s*$`,
		`(?m)^\s*@\w+`,
	)},
	{LanguageJavaScript, compileAll(
		`(?m)^\s*function\s+\w+\s*\(`,
		`(?m)^\s*const\s+\w+\s*=`,
		`(?m)^\s*let\s+\w+\s*=`,
		`(?m)^\s*var\s+\w+\s*=`,
		`=>`,
		`console\.log`,
	)},
	{LanguageTypeScript, compileAll(
		`:\s*(string|number|boolean|any)\s*[;=)]`,
		`interface\s+\w+`,
		`type\s+\w+\s*=`,
		`<\w+>`,
	)},
	{LanguageJava, compileAll(
		`public\s+class\s+\w+`,
		`private\s+\w+\s+\w+`,
		`System\.out\.println`,
		`public\s+static\s+void\s+main`,
	)},
	{LanguageGo, compileAll(
		`(?m)^package\s+\w+`,
		`(?m)^func\s+\w+\s*\(`,
		`fmt\.Println`,
		`:=`,
	)},
}

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		compiled[i] = regexp.MustCompile(p)
	}
	return compiled
}

// DetectLanguage guesses the language of a code snippet by scoring
// characteristic patterns. Returns LanguageUnknown when nothing matches.
func DetectLanguage(code string) Language {
	best := LanguageUnknown
	bestScore := 0

	for _, hint := range languageHints {
		score := 0
		for _, p := range hint.patterns {
			if p.MatchString(code) {
				score++
			}
		}
		if score > bestScore {
			best = hint.lang
			bestScore = score
		}
	}

	return best
}
