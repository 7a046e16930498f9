// Package ai provides optional Gemini-backed review suggestions.
package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"

	"github.com/rmaia/critic/pkg/types"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.0-flash"

// promptIssueLimit caps how many detected issues are fed to the model.
const promptIssueLimit = 10

// Reviewer asks Gemini for fix suggestions on a reviewed snippet.
// A Reviewer without an API key is valid and reports unavailable.
type Reviewer struct {
	client *genai.Client
	model  string
}

// NewReviewer builds a Reviewer. The key falls back to the
// GOOGLE_API_KEY environment variable; with no key at all the
// Reviewer is returned in an unavailable state rather than failing.
func NewReviewer(ctx context.Context, apiKey, model string) (*Reviewer, error) {
	if model == "" {
		model = DefaultModel
	}
	if apiKey == "" {
		apiKey = os.Getenv("GOOGLE_API_KEY")
	}
	if apiKey == "" {
		return &Reviewer{model: model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &Reviewer{client: client, model: model}, nil
}

// Available reports whether suggestions can be requested.
func (r *Reviewer) Available() bool {
	return r != nil && r.client != nil
}

// Suggest returns markdown-formatted fix suggestions for the code and
// its detected issues.
func (r *Reviewer) Suggest(ctx context.Context, code string, lang types.Language, issues []types.Issue) (string, error) {
	if !r.Available() {
		return "", fmt.Errorf("gemini reviewer is not configured")
	}

	prompt := buildPrompt(code, lang, issues)
	resp, err := r.client.Models.GenerateContent(ctx, r.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}
	return resp.Text(), nil
}

func buildPrompt(code string, lang types.Language, issues []types.Issue) string {
	var issueLines []string
	for i, issue := range issues {
		if i >= promptIssueLimit {
			break
		}
		line := fmt.Sprintf("%d. [%s] %s", i+1, strings.ToUpper(string(issue.Severity)), issue.Message)
		if issue.LineNumber > 0 {
			line += fmt.Sprintf(" (Line %d)", issue.LineNumber)
		}
		issueLines = append(issueLines, line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "You are an expert %s code reviewer. Analyze this code and provide specific fixes.\n\n", lang)
	fmt.Fprintf(&b, "## Code:\n```%s\n%s\n```\n\n", lang, code)
	fmt.Fprintf(&b, "## Issues Detected:\n%s\n\n", strings.Join(issueLines, "\n"))
	b.WriteString("## Your Task:\n")
	b.WriteString("1. Explain each issue briefly (1-2 sentences)\n")
	b.WriteString("2. Provide corrected code snippets\n")
	b.WriteString("3. Give best practice recommendations\n\n")
	b.WriteString("Keep your response concise and actionable. Use markdown formatting.\n")
	return b.String()
}
