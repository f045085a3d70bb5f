package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/unilodge/rental-portal/internal/model"
	"github.com/unilodge/rental-portal/internal/service"
	"github.com/unilodge/rental-portal/internal/validator"
	"github.com/unilodge/rental-portal/internal/view"
)

// GroupHandler serves the rental group pages: the listing and the
// detail view/edit workflow.
type GroupHandler struct {
	groupService *service.GroupService
}

// NewGroupHandler creates a new GroupHandler.
func NewGroupHandler(groupService *service.GroupService) *GroupHandler {
	return &GroupHandler{groupService: groupService}
}

// ListGroups godoc
// GET /groups
// Renders the table of all group codes linking to the detail page.
func (h *GroupHandler) ListGroups(c *gin.Context) {
	groups, err := h.groupService.ListGroups(c.Request.Context())
	if err != nil {
		view.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	view.HTML(c, http.StatusOK, "groups.tmpl", gin.H{"Groups": groups})
}

// ShowGroup godoc
// GET /groups/detail?group_id=X
// Renders the preference table, the hidden edit form and the student
// roster. A missing or empty group_id is terminal: no query is issued.
func (h *GroupHandler) ShowGroup(c *gin.Context) {
	groupCode := c.Query("group_id")
	if groupCode == "" {
		view.Error(c, http.StatusBadRequest, view.MsgNoGroupSelected)
		return
	}

	gv, err := h.groupService.FetchGroupView(c.Request.Context(), groupCode)
	if err != nil {
		view.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	view.HTML(c, http.StatusOK, "group_detail.tmpl", gin.H{
		"GroupCode": gv.GroupCode,
		"Group":     gv.Group,
		"Students":  gv.Students,
	})
}

// UpdateGroup godoc
// POST /groups/detail?group_id=X
// Applies the seven-field preference overwrite, then redirects back to
// the detail view so the next request re-reads fresh state. A failed
// write renders the error page and never redirects.
func (h *GroupHandler) UpdateGroup(c *gin.Context) {
	groupCode := c.Query("group_id")
	if groupCode == "" {
		view.Error(c, http.StatusBadRequest, view.MsgNoGroupSelected)
		return
	}

	var req model.UpdatePreferencesRequest
	if fields := validator.BindForm(c, &req); fields != nil {
		view.ErrorWithFields(c, http.StatusBadRequest, view.MsgInvalidForm, fields)
		return
	}

	redirect, err := h.groupService.ApplyPreferenceUpdate(c.Request.Context(), groupCode, req)
	if err != nil {
		view.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.Redirect(http.StatusSeeOther, redirect.Location())
}
