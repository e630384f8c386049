package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/docuvault-labs/docuvault-core/internal/core/domain"
	"github.com/docuvault-labs/docuvault-core/internal/core/ports/driving"
	"github.com/docuvault-labs/docuvault-core/internal/metrics"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Message string `json:"message" example:"No token provided."`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  StatusResponse
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "database unavailable"})
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "cache unavailable"})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleSignup godoc
// @Summary      Create an account
// @Description  Register a new user; the account starts logged in and a token is returned
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      driving.SignupRequest  true  "Account details"
// @Success      201      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Missing or invalid fields, or username/email taken"
// @Router       /api/users [post]
func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req driving.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Please provide the username, firstname, lastname, email, and password values")
		return
	}

	resp, err := s.authService.Signup(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "Please provide the username, firstname, lastname, email, and password values")
		case domain.ErrUnknownRole:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid role title", req.Role))
		case domain.ErrAlreadyExists:
			writeError(w, http.StatusBadRequest, "The User already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create the user")
		}
		return
	}

	metrics.UsersCreated.Inc()
	metrics.AuthAttempts.WithLabelValues("signup", "success").Inc()
	writeJSON(w, http.StatusCreated, resp)
}

// handleLogin godoc
// @Summary      User login
// @Description  Authenticate with username and password to receive a JWT token
// @Tags         Users
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Wrong password"
// @Failure      404      {object}  ErrorResponse  "Unknown user"
// @Router       /api/users/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Please provide the username and password values")
		return
	}

	resp, err := s.authService.Login(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			metrics.AuthAttempts.WithLabelValues("login", "user_not_found").Inc()
			writeError(w, http.StatusNotFound, "Authentication failed. User Not Found.")
		case domain.ErrWrongPassword:
			metrics.AuthAttempts.WithLabelValues("login", "wrong_password").Inc()
			writeError(w, http.StatusUnauthorized, "Authentication failed. Wrong password.")
		default:
			writeError(w, http.StatusInternalServerError, "Authentication failed")
		}
		return
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	writeJSON(w, http.StatusOK, resp)
}

// handleLogout godoc
// @Summary      Logout
// @Description  End the session identified by the request token
// @Tags         Users
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse  "Token could not be decoded"
// @Router       /api/users/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := ExtractToken(r)
	if token == "" {
		writeError(w, http.StatusForbidden, "No token provided.")
		return
	}

	if err := s.authService.Logout(r.Context(), token); err != nil {
		switch err {
		case domain.ErrTokenInvalid:
			writeError(w, http.StatusUnauthorized, "Failed to authenticate token.")
		case domain.ErrNotFound:
			writeError(w, http.StatusUnauthorized, "Authentication failed. User Not Found.")
		default:
			writeError(w, http.StatusInternalServerError, "Logout failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// handleSession godoc
// @Summary      Session status
// @Description  Report whether the token holder's session is active; never errors
// @Tags         Users
// @Produce      json
// @Success      200  {object}  domain.SessionStatus
// @Router       /api/users/session [get]
func (s *Server) handleSession(w http.ResponseWriter, r *http.Request) {
	status, err := s.authService.Session(r.Context(), ExtractToken(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check the session")
		return
	}
	writeJSON(w, http.StatusOK, status)
}

// User endpoints

// handleListUsers godoc
// @Summary      List all users
// @Description  Get a list of all users (admin only)
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  ErrorResponse  "Forbidden - admin only"
// @Router       /api/users [get]
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.List(r.Context(), GetPrincipal(r.Context()))
	if err != nil {
		if err == domain.ErrForbidden {
			writeError(w, http.StatusForbidden, "Unauthorized Access")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to list users")
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// handleGetUser godoc
// @Summary      Get user profile
// @Description  Get a user profile; a principal may read their own, an admin any
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  ErrorResponse  "Not your profile"
// @Failure      404  {object}  ErrorResponse  "User not found"
// @Router       /api/users/{id} [get]
func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := s.userService.Get(r.Context(), GetPrincipal(r.Context()), r.PathValue("id"))
	if err != nil {
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// handleUpdateUser godoc
// @Summary      Update user profile
// @Description  Update a user profile; role changes are admin only
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "User ID"
// @Param        request  body      driving.UpdateUserRequest  true  "Fields to update"
// @Success      200      {object}  domain.User
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      403      {object}  ErrorResponse  "Not your profile or role change denied"
// @Failure      404      {object}  ErrorResponse  "User not found"
// @Router       /api/users/{id} [put]
func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	var req driving.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := s.userService.Update(r.Context(), GetPrincipal(r.Context()), r.PathValue("id"), req)
	if err != nil {
		if err == domain.ErrUnknownRole && req.Role != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid role title", *req.Role))
			return
		}
		writeUserError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, user)
}

// handleDeleteUser godoc
// @Summary      Delete user account
// @Description  Delete a user account; a principal may delete their own, an admin any
// @Tags         Users
// @Security     BearerAuth
// @Param        id  path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse  "Not your profile"
// @Failure      404  {object}  ErrorResponse  "User not found"
// @Router       /api/users/{id} [delete]
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := s.userService.Delete(r.Context(), GetPrincipal(r.Context()), r.PathValue("id")); err != nil {
		writeUserError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleUserDocuments godoc
// @Summary      List a user's documents
// @Description  List documents created by a user, filtered by the requester's rank
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {array}   domain.Document
// @Router       /api/users/{id}/documents [get]
func (s *Server) handleUserDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docService.AllByOwner(r.Context(), GetPrincipal(r.Context()), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// Document endpoints

// handleCreateDocument godoc
// @Summary      Create document
// @Description  Create a document owned by the authenticated principal
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateDocumentRequest  true  "Document details"
// @Success      201      {object}  domain.Document
// @Failure      400      {object}  ErrorResponse  "Missing title, invalid role, or title already taken"
// @Router       /api/documents [post]
func (s *Server) handleCreateDocument(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "The document title is required")
		return
	}

	doc, err := s.docService.Create(r.Context(), GetPrincipal(r.Context()), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "The document title is required")
		case domain.ErrUnknownRole:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid role title", req.Role))
		case domain.ErrAlreadyExists:
			writeError(w, http.StatusBadRequest, "Document already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create the document")
		}
		return
	}

	metrics.DocumentsCreated.Inc()
	writeJSON(w, http.StatusCreated, doc)
}

// handleListDocuments godoc
// @Summary      List documents
// @Description  List documents visible to the principal, newest first
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Maximum number of documents (default 10)"
// @Success      200    {array}   domain.Document
// @Router       /api/documents [get]
func (s *Server) handleListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docService.All(r.Context(), GetPrincipal(r.Context()), queryLimit(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// handleGetDocument godoc
// @Summary      Get document
// @Description  Get a document, subject to the access policy
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Document ID"
// @Success      200  {object}  domain.Document
// @Failure      403  {object}  ErrorResponse  "Access denied"
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /api/documents/{id} [get]
func (s *Server) handleGetDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.docService.Get(r.Context(), GetPrincipal(r.Context()), r.PathValue("id"))
	if err != nil {
		writeDocumentError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleUpdateDocument godoc
// @Summary      Update document
// @Description  Update a document, subject to the access policy
// @Tags         Documents
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                         true  "Document ID"
// @Param        request  body      driving.UpdateDocumentRequest  true  "Fields to update"
// @Success      200      {object}  domain.Document
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      403      {object}  ErrorResponse  "Access denied"
// @Failure      404      {object}  ErrorResponse  "Document not found"
// @Router       /api/documents/{id} [put]
func (s *Server) handleUpdateDocument(w http.ResponseWriter, r *http.Request) {
	var req driving.UpdateDocumentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	doc, err := s.docService.Update(r.Context(), GetPrincipal(r.Context()), r.PathValue("id"), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "The document title is required")
		case domain.ErrUnknownRole:
			role := ""
			if req.Role != nil {
				role = *req.Role
			}
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid role title", role))
		default:
			writeDocumentError(w, err)
		}
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// handleDeleteDocument godoc
// @Summary      Delete document
// @Description  Delete a document; owner or admin only
// @Tags         Documents
// @Security     BearerAuth
// @Param        id  path  string  true  "Document ID"
// @Success      204
// @Failure      403  {object}  ErrorResponse  "Delete denied"
// @Failure      404  {object}  ErrorResponse  "Document not found"
// @Router       /api/documents/{id} [delete]
func (s *Server) handleDeleteDocument(w http.ResponseWriter, r *http.Request) {
	if err := s.docService.Delete(r.Context(), GetPrincipal(r.Context()), r.PathValue("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "Document not found")
		case domain.ErrForbidden, domain.ErrRoleUndeclared:
			writeError(w, http.StatusForbidden, "You are not allowed to delete this document")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to delete the document")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleDocumentsByDate godoc
// @Summary      List documents by creation date
// @Description  List visible documents created on a given day (YYYY-MM-DD)
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        date   path      string  true   "Creation date (YYYY-MM-DD)"
// @Param        limit  query     int     false  "Maximum number of documents (default 10)"
// @Success      200    {array}   domain.Document
// @Failure      400    {object}  ErrorResponse  "Malformed date"
// @Router       /api/documents/created/{date} [get]
func (s *Server) handleDocumentsByDate(w http.ResponseWriter, r *http.Request) {
	docs, err := s.docService.AllByDate(r.Context(), GetPrincipal(r.Context()), r.PathValue("date"), queryLimit(r))
	if err != nil {
		if err == domain.ErrInvalidInput {
			writeError(w, http.StatusBadRequest, "Date must be in the format YYYY-MM-DD")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// handleDocumentsByRole godoc
// @Summary      List documents by role
// @Description  List visible documents requiring a given role
// @Tags         Documents
// @Produce      json
// @Security     BearerAuth
// @Param        role   path      string  true   "Role title"
// @Param        limit  query     int     false  "Maximum number of documents (default 10)"
// @Success      200    {array}   domain.Document
// @Failure      400    {object}  ErrorResponse  "Unknown role title"
// @Router       /api/documents/roles/{role} [get]
func (s *Server) handleDocumentsByRole(w http.ResponseWriter, r *http.Request) {
	role := r.PathValue("role")
	docs, err := s.docService.AllByRole(r.Context(), GetPrincipal(r.Context()), role, queryLimit(r))
	if err != nil {
		if err == domain.ErrUnknownRole {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid role title", role))
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to list documents")
		return
	}

	writeJSON(w, http.StatusOK, docs)
}

// Role endpoints

// handleCreateRole godoc
// @Summary      Create role
// @Description  Create a role record for a title from the enumeration
// @Tags         Roles
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      object{title=string}  true  "Role title"
// @Success      201      {object}  domain.Role
// @Failure      400      {object}  ErrorResponse  "Missing or unknown title, or role already exists"
// @Router       /api/roles [post]
func (s *Server) handleCreateRole(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "The role title is required")
		return
	}

	role, err := s.roleService.Create(r.Context(), req.Title)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "The role title is required")
		case domain.ErrUnknownRole:
			writeError(w, http.StatusBadRequest, fmt.Sprintf("%s is not a valid role title", req.Title))
		case domain.ErrAlreadyExists:
			writeError(w, http.StatusBadRequest, "Role already exists")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create the role")
		}
		return
	}

	writeJSON(w, http.StatusCreated, role)
}

// handleListRoles godoc
// @Summary      List roles
// @Description  List all role records ordered by rank
// @Tags         Roles
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Role
// @Router       /api/roles [get]
func (s *Server) handleListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := s.roleService.All(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list roles")
		return
	}

	writeJSON(w, http.StatusOK, roles)
}

// Helpers

func writeUserError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrNotFound:
		writeError(w, http.StatusNotFound, "User not found")
	case domain.ErrForbidden:
		writeError(w, http.StatusForbidden, "Unauthorized Access")
	case domain.ErrAlreadyExists:
		writeError(w, http.StatusBadRequest, "The User already exists")
	default:
		writeError(w, http.StatusInternalServerError, "Request failed")
	}
}

func writeDocumentError(w http.ResponseWriter, err error) {
	switch err {
	case domain.ErrNotFound:
		writeError(w, http.StatusNotFound, "Document not found")
	case domain.ErrForbidden, domain.ErrRoleUndeclared:
		writeError(w, http.StatusForbidden, "You are not allowed to access this document")
	case domain.ErrAlreadyExists:
		writeError(w, http.StatusBadRequest, "Document already exists")
	default:
		writeError(w, http.StatusInternalServerError, "Request failed")
	}
}

func queryLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}
