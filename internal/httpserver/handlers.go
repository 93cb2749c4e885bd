package httpserver

import (
	"errors"
	"net/http"

	authdomain "careerbot/backend/internal/domain/auth"
)

const (
	msgMissingFields       = "Email, password, and username are required."
	msgPasswordTooShort    = "Password must be at least 6 characters long."
	msgPasswordTooLong     = "Password must be at most 72 bytes long."
	msgAccountExists       = "Email or username already registered."
	msgRegistered          = "Registration successful! Please log in."
	msgRegistrationFailed  = "Registration failed. Please try again."
	msgMissingCredentials  = "Email and password are required."
	msgInvalidCredentials  = "Invalid email or password."
	msgLoggedIn            = "Login successful!"
	msgLoginFailed         = "Login failed. Please try again."
	msgLoggedOut           = "Logged out successfully."
	msgNotAuthenticated    = "Not authenticated."
	msgProfileNotFound     = "Profile data not found."
	msgProfileFetchFailure = "Failed to fetch profile data."
)

func (s *Server) registerRoutes() {
	s.router.HandleFunc("/", s.handleHome)
	s.router.HandleFunc("/health", s.handleHealth)
	s.router.Handle("/static/", staticHandler())

	s.router.HandleFunc("/login", s.handleLoginPage)
	s.router.HandleFunc("/register", s.handleRegisterPage)
	s.router.HandleFunc("/profile", s.pageHandler(pageProfile, "Profile"))
	s.router.HandleFunc("/chat_app", s.pageHandler(pageChatApp, "Chat"))

	s.router.HandleFunc("/register_user", s.handleRegister)
	s.router.HandleFunc("/login_user", s.handleLogin)
	s.router.HandleFunc("/logout_user", s.handleLogout)
	s.router.HandleFunc("/get_user_profile", s.handleProfile)
	s.router.HandleFunc("/chat", s.handleChat)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, ok := currentSession(r.Context()); ok {
		http.Redirect(w, r, "/chat_app", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (s *Server) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	s.anonymousPage(w, r, pageLogin, "Log in")
}

func (s *Server) handleRegisterPage(w http.ResponseWriter, r *http.Request) {
	s.anonymousPage(w, r, pageRegister, "Register")
}

// anonymousPage renders a login or registration page, sending signed-in
// users straight to the chat.
func (s *Server) anonymousPage(w http.ResponseWriter, r *http.Request, page, title string) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	if _, ok := currentSession(r.Context()); ok {
		http.Redirect(w, r, "/chat_app", http.StatusFound)
		return
	}
	s.renderPage(w, r, page, pageData{Title: title})
}

func (s *Server) pageHandler(page, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			writeMethodNotAllowed(w, http.MethodGet)
			return
		}
		session, ok := currentSession(r.Context())
		if !ok {
			http.Redirect(w, r, "/login", http.StatusFound)
			return
		}
		s.renderPage(w, r, page, pageData{Title: title, Username: session.Username})
	}
}

func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, page string, data pageData) {
	if err := s.pages.render(w, page, data); err != nil {
		s.log.Error(r.Context(), "render page failed", "page", page, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	// A malformed body is validated as an empty one.
	_ = decodeJSON(w, r, &payload)

	user, err := s.authService.Register(r.Context(), authdomain.Registration{
		Username: payload.Username,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrMissingFields):
			writeMessage(w, http.StatusBadRequest, msgMissingFields)
		case errors.Is(err, authdomain.ErrPasswordTooShort):
			writeMessage(w, http.StatusBadRequest, msgPasswordTooShort)
		case errors.Is(err, authdomain.ErrPasswordTooLong):
			writeMessage(w, http.StatusBadRequest, msgPasswordTooLong)
		case errors.Is(err, authdomain.ErrAccountExists):
			writeMessage(w, http.StatusConflict, msgAccountExists)
		default:
			s.log.Error(r.Context(), "registration failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, msgRegistrationFailed)
		}
		return
	}

	s.log.Info(r.Context(), "user registered", "user_id", user.ID, "username", user.Username)
	writeMessage(w, http.StatusCreated, msgRegistered)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}

	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = decodeJSON(w, r, &payload)

	token, session, err := s.authService.Login(r.Context(), authdomain.Credentials{
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrMissingCredentials):
			writeMessage(w, http.StatusBadRequest, msgMissingCredentials)
		case errors.Is(err, authdomain.ErrInvalidCredentials):
			writeMessage(w, http.StatusUnauthorized, msgInvalidCredentials)
		default:
			s.log.Error(r.Context(), "login failed", "error", err)
			writeMessage(w, http.StatusInternalServerError, msgLoginFailed)
		}
		return
	}

	s.sessions.start(w, token)
	s.log.Info(r.Context(), "user logged in", "user_id", session.UserID, "username", session.Username)
	writeMessage(w, http.StatusOK, msgLoggedIn)
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	if session, ok := currentSession(r.Context()); ok {
		s.chatService.Forget(r.Context(), session.ID)
	}
	s.sessions.end(w)
	writeMessage(w, http.StatusOK, msgLoggedOut)
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeMethodNotAllowed(w, http.MethodGet)
		return
	}
	session, ok := currentSession(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	profile, err := s.userService.Profile(r.Context(), session.UserID)
	if err != nil {
		switch {
		case errors.Is(err, authdomain.ErrUserNotFound):
			writeMessage(w, http.StatusNotFound, msgProfileNotFound)
		case errors.Is(err, authdomain.ErrNotAuthenticated):
			writeMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
		default:
			s.log.Error(r.Context(), "fetch profile failed", "user_id", session.UserID, "error", err)
			writeMessage(w, http.StatusInternalServerError, msgProfileFetchFailure)
		}
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeMethodNotAllowed(w, http.MethodPost)
		return
	}
	session, ok := currentSession(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	var payload struct {
		Message string `json:"message"`
	}
	_ = decodeJSON(w, r, &payload)

	res := s.chatService.Reply(r.Context(), session.ID, payload.Message)
	writeJSON(w, http.StatusOK, replyResponse{Reply: res.Reply})
}
