package api

import (
	"encoding/json"
	"net/http"
	"time"

	"soyhub-be/internal/user"
	"soyhub-be/internal/utils"
)

type AuthHandler struct {
	userSvc user.Service
}

func NewAuthHandler(userSvc user.Service) *AuthHandler {
	return &AuthHandler{userSvc: userSvc}
}

func setAccessTokenCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     "access_token",
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Contact  string `json:"contact"`
		Facebook string `json:"facebook"`
		Campus   string `json:"campus"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.userSvc.SignUp(r.Context(), user.SignUpParams{
		Username: body.Username,
		Password: body.Password,
		Contact:  body.Contact,
		Facebook: body.Facebook,
		Campus:   body.Campus,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, http.StatusCreated, map[string]any{
		"token": token,
		"user":  u,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.WriteJSONError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	token, u, err := h.userSvc.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	setAccessTokenCookie(w, token)
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"token": token,
		"user":  u,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	au, err := h.userSvc.CurrentUser(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, au)
}
