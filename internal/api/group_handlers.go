package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mverdier/coinsplit/internal/domain"
	"github.com/mverdier/coinsplit/internal/middleware"
	"github.com/mverdier/coinsplit/internal/service"
	"github.com/mverdier/coinsplit/internal/storage"
)

type createGroupRequest struct {
	Name string `json:"name"`
}

type createGroupResponse struct {
	GroupID string `json:"group_id"`
}

type addMemberRequest struct {
	UserID string `json:"user_id"`
}

type userSummaryResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type groupSummaryResponse struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	Owner     userSummaryResponse `json:"owner"`
	CreatedAt string              `json:"created_at"`
}

type groupsPageResponse struct {
	Groups     []groupSummaryResponse `json:"groups"`
	TotalItems int                    `json:"total_items"`
}

func (s *Server) handleCreateGroup(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}

	var req createGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	name, err := domain.ParseGroupname(req.Name)
	if err != nil {
		writeError(w, err)
		return
	}

	cmd := service.CreateEmptyGroupCommand{Name: name, OwnerID: userID}
	var groupID domain.GroupID
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		groupID, err = cmd.Handle(r.Context(), tx)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createGroupResponse{GroupID: groupID.String()})
}

func (s *Server) handleListGroups(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}

	pagination, err := parsePagination(r)
	if err != nil {
		writeError(w, err)
		return
	}

	q := service.GetGroupsForUserQuery{CurrentUser: userID, Pagination: pagination}
	var page service.GroupsPage
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		var err error
		page, err = q.Handle(r.Context(), tx)
		return err
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := groupsPageResponse{
		Groups:     make([]groupSummaryResponse, 0, len(page.Groups)),
		TotalItems: page.TotalItems,
	}
	for _, g := range page.Groups {
		resp.Groups = append(resp.Groups, groupSummaryResponse{
			ID:   g.ID.String(),
			Name: g.Name.Value(),
			Owner: userSummaryResponse{
				ID:   g.Owner.ID.String(),
				Name: g.Owner.Name.Value(),
			},
			CreatedAt: g.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAddMember(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r.Context())
	if !ok {
		writeErrorCode(w, http.StatusUnauthorized, "UNAUTHORIZED", "not authenticated")
		return
	}

	groupID, err := groupIDParam(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorCode(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	memberID, err := domain.ParseUserID(req.UserID)
	if err != nil {
		writeError(w, err)
		return
	}

	cmd := service.AddGroupMemberCommand{
		GroupID:       groupID,
		UserIDToAdd:   memberID,
		CurrentUserID: actorID,
	}
	err = s.store.InTx(r.Context(), func(tx storage.Tx) error {
		return cmd.Handle(r.Context(), tx)
	})
	if err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
