// Copyright (C) 2026 Ben Grimm. Licensed under AGPL-3.0 (https://www.gnu.org/licenses/agpl-3.0.txt)

package i18n

import (
	"net/http"
)

// Middleware extracts the Accept-Language header and injects a printer into the context.
// A "lang" query parameter takes precedence over the header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accept := r.Header.Get("Accept-Language")
		if lang := r.URL.Query().Get("lang"); lang != "" {
			accept = lang
		}
		p := NewPrinter(MatchLanguage(accept))

		w.Header().Set("Content-Language", p.Language().String())
		ctx := WithPrinter(r.Context(), p)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
