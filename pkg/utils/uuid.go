package utils

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	slugInvalid = regexp.MustCompile("[^a-z0-9-]")
	slugDashes  = regexp.MustCompile("-+")
)

// Slugify turns a store name into a subdomain-safe slug.
func Slugify(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "-")
	s = slugInvalid.ReplaceAllString(s, "")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// GenerateInvoiceNo returns prefix plus a random 8-character suffix.
func GenerateInvoiceNo(prefix string) string {
	return prefix + strings.ToUpper(uuid.New().String()[:8])
}
