// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import "net/http"

// SecureHeaders adds security-related HTTP headers to every response.
// The API only serves JSON, so framing and referrers are denied outright.
func SecureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()

		// Prevent the browser from MIME-sniffing the Content-Type.
		h.Set("X-Content-Type-Options", "nosniff")

		// JSON responses are never meant to be framed.
		h.Set("X-Frame-Options", "DENY")

		// Generated prompts are per-request; never cache them in shared caches.
		h.Set("Cache-Control", "no-store")

		h.Set("Referrer-Policy", "no-referrer")

		next.ServeHTTP(w, r)
	})
}
