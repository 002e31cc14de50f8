package impl

import "strings"

// socialURL expands a bare handle into the platform's canonical profile URL.
// A leading @ is stripped first; an empty handle maps to an empty URL.
func socialURL(platform, handle string) string {
	handle = strings.TrimSpace(handle)
	if handle == "" {
		return ""
	}
	clean := strings.TrimPrefix(handle, "@")

	switch platform {
	case "instagram":
		return "https://instagram.com/" + clean
	case "twitter":
		return "https://x.com/" + clean
	case "tiktok":
		return "https://tiktok.com/@" + clean
	case "facebook":
		return "https://facebook.com/" + clean
	case "linkedin":
		return "https://linkedin.com/in/" + clean
	case "youtube":
		return "https://youtube.com/@" + clean
	default:
		return ""
	}
}

// websiteURL normalizes a free-form website entry, defaulting to https when
// no scheme is present.
func websiteURL(website string) string {
	website = strings.TrimSpace(website)
	if website == "" {
		return ""
	}
	if !strings.HasPrefix(website, "http://") && !strings.HasPrefix(website, "https://") {
		website = "https://" + website
	}

	return website
}
