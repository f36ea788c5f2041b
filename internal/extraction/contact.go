package extraction

import (
	"regexp"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

var (
	emailRe    = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe    = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	linkedinRe = regexp.MustCompile(`(?:https?://)?(?:www\.)?linkedin\.com/in/[\w-]+`)
	githubRe   = regexp.MustCompile(`(?:https?://)?(?:www\.)?github\.com/[\w-]+`)
	siteRe     = regexp.MustCompile(`(?:https?://)?(?:www\.)?[\w-]+\.(?:com|io|dev|me|net|org)(?:/[\w./-]*)?`)
)

// ExtractContact pulls contact details from the full resume text. Each
// field takes the first match; the portfolio field skips LinkedIn and
// GitHub URLs.
func ExtractContact(text string) types.ContactInfo {
	contact := types.ContactInfo{
		Email:    emailRe.FindString(text),
		Phone:    strings.TrimSpace(phoneRe.FindString(text)),
		LinkedIn: linkedinRe.FindString(text),
		GitHub:   githubRe.FindString(text),
	}

	for _, candidate := range siteRe.FindAllString(text, -1) {
		lower := strings.ToLower(candidate)
		if strings.Contains(lower, "linkedin.com") || strings.Contains(lower, "github.com") {
			continue
		}
		if contact.Email != "" && strings.Contains(contact.Email, strings.TrimPrefix(lower, "www.")) {
			continue // domain fragment of the email address
		}
		contact.Portfolio = candidate
		break
	}

	return contact
}
