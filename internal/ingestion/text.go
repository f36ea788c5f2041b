// Package ingestion loads resume and job description text from files and
// URLs and normalizes it for analysis.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var multiSpaceRe = regexp.MustCompile(`\s+`)
var blankRunRe = regexp.MustCompile(`\n\n\n+`)

// CleanText normalizes text content while preserving line structure.
// Line endings become LF, runs of spaces collapse, and blank-line runs
// shrink to at most one blank line. Bullet indentation is kept because
// downstream section and experience parsing is line oriented.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned = append(cleaned, cleanLine(line))
	}

	result := strings.Join(cleaned, "\n")
	result = blankRunRe.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// cleanLine normalizes one line, keeping leading indentation.
func cleanLine(line string) string {
	line = strings.TrimRight(line, " \t")
	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		return ""
	}

	indent := len(line) - len(trimmed)
	content := multiSpaceRe.ReplaceAllString(trimmed, " ")
	if indent > 0 {
		return strings.Repeat(" ", indent) + content
	}
	return content
}

// LoadFile reads a text file and returns its cleaned content.
func LoadFile(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("file not found: %w", err)
		}
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	cleaned := CleanText(string(content))
	if cleaned == "" {
		return "", fmt.Errorf("file %s contains no text", path)
	}
	return cleaned, nil
}
