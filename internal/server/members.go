package server

import (
	"net/http"
	"strings"

	"household-hub/internal/allowance"
	"household-hub/internal/household"
)

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)
	members, err := s.households.ListMembers(r.Context(), session.HouseholdID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, members)
}

type memberRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	Role                 string `json:"role"`
	WeeklyAllowanceCents int64  `json:"weekly_allowance_cents"`
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	caller, err := s.households.GetMember(r.Context(), session.MemberID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if caller == nil || caller.Role != household.RoleAdult {
		writeError(w, http.StatusForbidden, "only adults can add members")
		return
	}

	var req memberRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Name == "" || req.Email == "" {
		writeError(w, http.StatusBadRequest, "name and email are required")
		return
	}
	role := household.Role(req.Role)
	if role != household.RoleAdult && role != household.RoleKid {
		writeError(w, http.StatusBadRequest, "role must be adult or kid")
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

	id, err := s.households.AddMember(r.Context(), household.Member{
		HouseholdID:          session.HouseholdID,
		Name:                 req.Name,
		Email:                strings.ToLower(req.Email),
		PasswordHash:         hash,
		Role:                 role,
		WeeklyAllowanceCents: req.WeeklyAllowanceCents,
	})
	if err != nil {
		writeServerError(w, err)
		return
	}

	member, err := s.households.GetMember(r.Context(), id)
	if err != nil {
		writeServerError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, member)
}

type allowanceResponse struct {
	MemberID     int64             `json:"member_id"`
	BalanceCents int64             `json:"balance_cents"`
	Entries      []allowance.Entry `json:"entries"`
}

func (s *Server) handleGetAllowance(w http.ResponseWriter, r *http.Request) {
	member, ok := s.householdMember(w, r)
	if !ok {
		return
	}

	balance, err := s.allowances.Balance(r.Context(), member.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	entries, err := s.allowances.ListEntries(r.Context(), member.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if entries == nil {
		entries = []allowance.Entry{}
	}

	writeJSON(w, http.StatusOK, allowanceResponse{
		MemberID:     member.ID,
		BalanceCents: balance,
		Entries:      entries,
	})
}

type allowanceEntryRequest struct {
	AmountCents int64  `json:"amount_cents"`
	Memo        string `json:"memo"`
}

func (s *Server) handleAddAllowanceEntry(w http.ResponseWriter, r *http.Request) {
	session := sessionFrom(r)

	caller, err := s.households.GetMember(r.Context(), session.MemberID)
	if err != nil {
		writeServerError(w, err)
		return
	}
	if caller == nil || caller.Role != household.RoleAdult {
		writeError(w, http.StatusForbidden, "only adults can adjust allowances")
		return
	}

	member, ok := s.householdMember(w, r)
	if !ok {
		return
	}

	var req allowanceEntryRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := s.allowances.AddEntry(r.Context(), member.ID, req.AmountCents, req.Memo)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	balance, err := s.allowances.Balance(r.Context(), member.ID)
	if err != nil {
		writeServerError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]int64{
		"entry_id":      id,
		"balance_cents": balance,
	})
}

// householdMember loads the member referenced by the {id} path parameter and
// enforces that it belongs to the caller's household.
func (s *Server) householdMember(w http.ResponseWriter, r *http.Request) (*household.Member, bool) {
	session := sessionFrom(r)
	id, ok := pathID(w, r, "id")
	if !ok {
		return nil, false
	}

	member, err := s.households.GetMember(r.Context(), id)
	if err != nil {
		writeServerError(w, err)
		return nil, false
	}
	if member == nil || member.HouseholdID != session.HouseholdID {
		writeError(w, http.StatusNotFound, "member not found")
		return nil, false
	}
	return member, true
}
