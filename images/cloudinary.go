// Package images rewrites Cloudinary delivery URLs. The backend never talks
// to the image service directly; it only decorates the URL strings stored on
// documents with format/quality hints before they reach the frontend.
package images

import "strings"

const uploadSegment = "/image/upload/"

// defaultTransform lets Cloudinary pick the best format and quality for the
// requesting browser (WebP/AVIF where supported).
const defaultTransform = "f_auto,q_auto"

// Deliver injects the default transformation into a Cloudinary delivery URL.
// Non-Cloudinary URLs and URLs that already carry a transformation pass
// through untouched, so calling it repeatedly is safe.
func Deliver(rawURL string) string {
	if !strings.Contains(rawURL, "res.cloudinary.com") {
		return rawURL
	}

	idx := strings.Index(rawURL, uploadSegment)
	if idx < 0 {
		return rawURL
	}

	rest := rawURL[idx+len(uploadSegment):]
	if hasTransform(rest) {
		return rawURL
	}

	return rawURL[:idx+len(uploadSegment)] + defaultTransform + "/" + rest
}

// hasTransform reports whether the first path segment after /upload/ is a
// transformation string rather than a version or public id.
func hasTransform(rest string) bool {
	seg, _, _ := strings.Cut(rest, "/")
	if strings.Contains(seg, ",") {
		return true
	}
	for _, p := range []string{"f_", "q_", "w_", "h_", "c_"} {
		if strings.HasPrefix(seg, p) {
			return true
		}
	}
	return false
}
