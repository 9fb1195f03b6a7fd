package server

import (
	"net/http"
	"strings"

	"household-hub/internal/household"
)

type registerRequest struct {
	HouseholdName string `json:"household_name"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
}

type authResponse struct {
	Token       string `json:"token"`
	MemberID    int64  `json:"member_id"`
	HouseholdID int64  `json:"household_id"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.HouseholdName == "" || req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "household_name, name and email are required")
		return
	}
	if len(req.Password) < 8 {
		writeError(w, http.StatusBadRequest, "password must be at least 8 characters")
		return
	}

	hash, err := household.HashPassword(req.Password)
	if err != nil {
		writeServerError(w, err)
		return
	}

	householdID, memberID, err := s.households.CreateWithOwner(r.Context(), req.HouseholdName, household.Member{
		Name:         req.Name,
		Email:        strings.ToLower(req.Email),
		PasswordHash: hash,
		Role:         household.RoleAdult,
	})
	if err != nil {
		writeServerError(w, err)
		return
	}

	token, err := s.tokens.Issue(household.Member{ID: memberID, HouseholdID: householdID})
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, authResponse{
		Token:       token,
		MemberID:    memberID,
		HouseholdID: householdID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeBody(w, r, &req) {
		return
	}

	member, err := s.households.GetMemberByEmail(r.Context(), req.Email)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if member == nil || !household.CheckPassword(member.PasswordHash, req.Password) {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.tokens.Issue(*member)
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, authResponse{
		Token:       token,
		MemberID:    member.ID,
		HouseholdID: member.HouseholdID,
	})
}
