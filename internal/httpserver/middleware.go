package httpserver

import (
	"net/http"
	"strings"
	"time"

	"careerbot/backend/internal/logging"
)

type responseRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *responseRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

func withLogging(next http.Handler, log logging.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &responseRecorder{ResponseWriter: w}
		next.ServeHTTP(recorder, r)
		status := recorder.status
		if status == 0 {
			status = http.StatusOK
		}
		log.Info(r.Context(), "http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", recorder.size,
			"duration", time.Since(start),
		)
	})
}

func withCORS(next http.Handler, allowedOrigins []string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		switch {
		case origin == "":
		case isOriginListed(origin, allowedOrigins):
			// Only explicitly listed origins may send the session cookie.
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		case isOriginListed("*", allowedOrigins):
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func isOriginListed(origin string, allowed []string) bool {
	for _, candidate := range allowed {
		if strings.EqualFold(candidate, origin) {
			return true
		}
	}
	return false
}

// loadSession attaches the verified session, if the cookie carries one, to
// the request context. A bad token is cleared and treated as no session.
func (s *Server) loadSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := s.sessions.token(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}
		session, err := s.authService.VerifySession(token)
		if err != nil {
			s.log.Debug(r.Context(), "discarding invalid session cookie", "error", err)
			s.sessions.end(w)
			next.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r.WithContext(withSession(r.Context(), session)))
	})
}

// authGate lets public paths through, answers 401 on API paths without a
// session and redirects every other anonymous request to the login page.
func (s *Server) authGate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if _, ok := s.publicPaths[path]; ok {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := currentSession(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		if _, ok := s.apiPaths[path]; ok {
			writeMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
			return
		}
		http.Redirect(w, r, "/login", http.StatusFound)
	})
}
