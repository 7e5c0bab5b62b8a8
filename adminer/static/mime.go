// CLASSIFICATION: COMMUNITY
// Filename: mime.go v0.1
// Author: Lukas Bower
// Date Modified: 2026-10-14
// License: SPDX-License-Identifier: MIT OR Apache-2.0

package static

// mimeTypes maps a file extension, without the leading dot, to the content
// type sent for it. Lookups are case-sensitive. Never mutated.
var mimeTypes = map[string]string{
	"css": "text/css",
	"js":  "application/javascript",
	"png": "image/png",
	"jpg": "image/jpeg",
	"gif": "image/gif",
	"ico": "image/x-icon",
	"svg": "image/svg+xml",
}

// ContentType reports the content type served for ext.
func ContentType(ext string) (string, bool) {
	ct, ok := mimeTypes[ext]
	return ct, ok
}
