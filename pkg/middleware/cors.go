package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

// CORSOptions configures the CORS middleware.
type CORSOptions struct {
	AllowedOrigins []string         // exact origins, e.g. ["https://shopstore-sooty.vercel.app"]
	OriginPattern  *regexp.Regexp   // optional pattern for preview deployments
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         string // seconds for preflight cache
}

// shopstorePattern matches the Vercel preview deployments of the frontend.
var shopstorePattern = regexp.MustCompile(`^https://shopstore.*\.vercel\.app$`)

// DefaultCORSOptions allows the known frontend deployments plus any extra
// origins from configuration.
func DefaultCORSOptions(extraOrigins []string) CORSOptions {
	origins := []string{
		"https://shopstore-mdoo5f1sq-hyrahs-projects.vercel.app",
		"https://shopstore-sooty.vercel.app",
		"https://shopstore-git-main-hyrahs-projects.vercel.app",
	}
	origins = append(origins, extraOrigins...)

	return CORSOptions{
		AllowedOrigins: origins,
		OriginPattern:  shopstorePattern,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         "300",
	}
}

// CORS restricts browser-origin callers to the allow-listed frontends.
// Requests without an Origin header (curl, server-to-server) pass through
// untouched.
func CORS(opts CORSOptions) func(http.Handler) http.Handler {
	methods := strings.Join(opts.AllowedMethods, ", ")
	headers := strings.Join(opts.AllowedHeaders, ", ")

	allowed := func(origin string) bool {
		for _, o := range opts.AllowedOrigins {
			if o == origin {
				return true
			}
		}
		return opts.OriginPattern != nil && opts.OriginPattern.MatchString(origin)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			if !allowed(origin) {
				http.Error(w, "CORS policy: this origin is not allowed", http.StatusForbidden)
				return
			}

			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", methods)
			w.Header().Set("Access-Control-Allow-Headers", headers)
			w.Header().Add("Vary", "Origin")
			if opts.MaxAge != "" {
				w.Header().Set("Access-Control-Max-Age", opts.MaxAge)
			}

			// Preflight requests stop here.
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
