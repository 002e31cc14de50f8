// Package util contains small pure helpers shared across the application.
package util

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const maxSlugLength = 50

var (
	slugStripPattern = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
	hyphenRuns       = regexp.MustCompile(`-+`)
	nonDigitPattern  = regexp.MustCompile(`\D`)
)

// Slugify derives a URL-safe identifier from a business name: lowercase,
// trimmed, special characters stripped, whitespace runs collapsed to a single
// hyphen, repeated hyphens collapsed, capped at 50 characters. It is
// deterministic and total; an empty result is the caller's problem to reject.
// Uniqueness is enforced only by the store's unique constraint at write time.
func Slugify(businessName string) string {
	slug := strings.ToLower(strings.TrimSpace(businessName))
	slug = slugStripPattern.ReplaceAllString(slug, "")
	slug = whitespaceRuns.ReplaceAllString(slug, "-")
	slug = hyphenRuns.ReplaceAllString(slug, "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}

	return slug
}

// FormatE164 combines a dial code and a local phone number into E.164 form
// without the leading plus: non-digits are stripped and a single leading zero
// on the local part is dropped.
func FormatE164(countryCode, phoneNumber string) string {
	digits := nonDigitPattern.ReplaceAllString(phoneNumber, "")
	digits = strings.TrimPrefix(digits, "0")

	dialCode := strings.TrimPrefix(countryCode, "+")

	return dialCode + digits
}

// WhatsAppLink builds a wa.me link with a pre-filled greeting for an E.164
// number.
func WhatsAppLink(e164 string) string {
	message := url.QueryEscape("Hi I found you from your QR code")

	return fmt.Sprintf("https://wa.me/%s?text=%s", e164, message)
}

// MapsLink builds a Google Maps search link for a free-text address.
func MapsLink(address string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(address)
}
