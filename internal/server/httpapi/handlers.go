package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/ayushchouksey/jeclens/internal/categories"
	"github.com/ayushchouksey/jeclens/internal/common"
	domain "github.com/ayushchouksey/jeclens/internal/facts"
)

type loginRequest struct {
	IDToken string `json:"idToken"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type sessionResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	User         any    `json:"user"`
}

type factsResponse struct {
	Facts []domain.Fact `json:"facts"`
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", common.ErrValidation)
	}
	return nil
}

func (s *Server) loginGoogle(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.IDToken == "" {
		writeError(w, fmt.Errorf("%w: idToken is required", common.ErrValidation))
		return
	}

	id, pair, err := s.sessions.LoginWithGoogle(r.Context(), req.IDToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         id,
	})
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.RefreshToken == "" {
		writeError(w, fmt.Errorf("%w: refreshToken is required", common.ErrValidation))
		return
	}

	id, pair, err := s.sessions.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         id,
	})
}

func (s *Server) listFacts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		category = categories.All
	}

	list, err := s.facts.List(r.Context(), identityFromContext(r.Context()), category)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []domain.Fact{}
	}

	writeJSON(w, http.StatusOK, factsResponse{Facts: list})
}

func (s *Server) createFact(w http.ResponseWriter, r *http.Request) {
	var c domain.Candidate
	if err := decodeBody(r, &c); err != nil {
		writeError(w, err)
		return
	}

	created, err := s.facts.Submit(r.Context(), identityFromContext(r.Context()), c)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) vote(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	factID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: bad fact id", common.ErrValidation))
		return
	}

	metric, err := domain.ParseMetric(vars["metric"])
	if err != nil {
		writeError(w, err)
		return
	}

	updated, err := s.facts.Vote(r.Context(), identityFromContext(r.Context()), factID, metric)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) approve(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	factID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		writeError(w, fmt.Errorf("%w: bad fact id", common.ErrValidation))
		return
	}

	updated, err := s.facts.Approve(r.Context(), identityFromContext(r.Context()), factID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, updated)
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categories.List)
}

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
