package backend

import "strings"

// PlaceholderImage is served when a record has no image.
const PlaceholderImage = "/static/placeholder.svg"

// ProjectImageURL resolves a project image reference to a URL.
func (c *Client) ProjectImageURL(ref string) string {
	return resolveImage(c.baseURL, "projects", ref)
}

// TestimonialImageURL resolves an avatar reference to a URL. It returns "" for
// a missing avatar so the caller can fall back to an initials avatar.
func (c *Client) TestimonialImageURL(ref string) string {
	if strings.TrimSpace(ref) == "" {
		return ""
	}
	return resolveImage(c.baseURL, "testimonials", ref)
}

// IsInlineImage reports whether ref is a base64 data URL of an image.
func IsInlineImage(ref string) bool {
	return strings.HasPrefix(ref, "data:image/") && strings.Contains(ref, ";base64,")
}

func resolveImage(base, dir, ref string) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return PlaceholderImage
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"), IsInlineImage(ref):
		return ref
	case strings.Contains(ref, ":"):
		return PlaceholderImage
	}
	return base + "/" + dir + "/" + strings.TrimLeft(ref, "/")
}
