package security

import (
	"regexp"

	"github.com/rmaia/critic/pkg/types"
)

// Rule defines a single security pattern check against one source line.
type Rule struct {
	Pattern *regexp.Regexp
	// Exclude suppresses a match when it also matches the line; used
	// where the dangerous form is "call X without Y".
	Exclude    *regexp.Regexp
	Message    string
	Severity   types.Severity
	Suggestion string
}

var pythonRules = []Rule{
	{
		Pattern:    regexp.MustCompile(`(?i)eval\s*\(`),
		Message:    "Use of eval()",
		Severity:   types.SeverityCritical,
		Suggestion: "Avoid eval(); use ast.literal_eval or json.loads for data",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)exec\s*\(`),
		Message:    "Use of exec()",
		Severity:   types.SeverityCritical,
		Suggestion: "Avoid exec(); restructure so dynamic code execution is unnecessary",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)os\.system\s*\(`),
		Message:    "Use of os.system()",
		Severity:   types.SeverityHigh,
		Suggestion: "Use subprocess.run with a list of arguments and shell=False",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)subprocess\.call\s*\(.*shell\s*=\s*True`),
		Message:    "Shell injection risk",
		Severity:   types.SeverityCritical,
		Suggestion: "Pass arguments as a list and drop shell=True",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)pickle\.loads?`),
		Message:    "Unsafe deserialization with pickle",
		Severity:   types.SeverityHigh,
		Suggestion: "Never unpickle untrusted data; prefer json or a schema-validated format",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)yaml\.load\s*\(`),
		Exclude:    regexp.MustCompile(`Loader`),
		Message:    "Unsafe YAML loading",
		Severity:   types.SeverityHigh,
		Suggestion: "Use yaml.safe_load or pass an explicit safe Loader",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)__import__\s*\(`),
		Message:    "Dynamic import",
		Severity:   types.SeverityMedium,
		Suggestion: "Use importlib with a validated module name",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)input\s*\(`),
		Message:    "User input without validation",
		Severity:   types.SeverityLow,
		Suggestion: "Validate and sanitize interactive input before use",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)password\s*=\s*["'][^"']+["']`),
		Message:    "Hardcoded password",
		Severity:   types.SeverityCritical,
		Suggestion: "Load credentials from the environment or a secrets manager",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)api_key\s*=\s*["'][^"']+["']`),
		Message:    "Hardcoded API key",
		Severity:   types.SeverityCritical,
		Suggestion: "Load credentials from the environment or a secrets manager",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)secret\s*=\s*["'][^"']+["']`),
		Message:    "Hardcoded secret",
		Severity:   types.SeverityCritical,
		Suggestion: "Load credentials from the environment or a secrets manager",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)from\s+[\w.]+\s+import\s+\*`),
		Message:    "Wildcard import",
		Severity:   types.SeverityMedium,
		Suggestion: "Import the specific names you need",
	},
}

var javascriptRules = []Rule{
	{
		Pattern:    regexp.MustCompile(`(?i)eval\s*\(`),
		Message:    "Use of eval()",
		Severity:   types.SeverityCritical,
		Suggestion: "Avoid eval(); use JSON.parse for data",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)new\s+Function\s*\(`),
		Message:    "Dynamic code via the Function constructor",
		Severity:   types.SeverityCritical,
		Suggestion: "Avoid constructing code from strings",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)innerHTML\s*=`),
		Message:    "XSS vulnerability via innerHTML",
		Severity:   types.SeverityHigh,
		Suggestion: "Use textContent, or sanitize HTML before assignment",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)document\.write\s*\(`),
		Message:    "Use of document.write()",
		Severity:   types.SeverityMedium,
		Suggestion: "Manipulate the DOM with createElement/appendChild instead",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)\$\(.*\)\.html\s*\(`),
		Message:    "Potential XSS in jQuery .html()",
		Severity:   types.SeverityHigh,
		Suggestion: "Use .text(), or sanitize the markup first",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)require\s*\(\s*["']child_process["']\s*\)`),
		Message:    "Shell invocation via child_process",
		Severity:   types.SeverityHigh,
		Suggestion: "If a subprocess is required, use execFile with fixed arguments",
	},
	{
		Pattern:    regexp.MustCompile(`(?i)(password|api_?key|secret)\s*[:=]\s*["'][^"']+["']`),
		Message:    "Hardcoded credential",
		Severity:   types.SeverityCritical,
		Suggestion: "Load credentials from the environment or a secrets manager",
	},
}

// RulesFor returns the security rule catalogue for a language.
// Languages without their own catalogue fall back to the Python rules.
func RulesFor(lang types.Language) []Rule {
	switch lang {
	case types.LanguageJavaScript, types.LanguageTypeScript:
		return javascriptRules
	default:
		return pythonRules
	}
}
