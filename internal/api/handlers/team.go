package handlers

import (
	"net/http"

	"asset-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team delegation
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// GetRoster handles GET /team
// @Summary List team members and pending invitations
// @Description Only primary owners on a premium plan can view the roster
// @Tags team
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Successfully retrieved roster"
// @Failure 402 {object} map[string]interface{} "Team features require premium"
// @Failure 403 {object} map[string]interface{} "Caller is not a primary owner"
// @Security BearerAuth
// @Router /team [get]
func (h *TeamHandler) GetRoster(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}

	members, invitations, err := h.teamService.Roster(actor)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"members":     members,
		"invitations": invitations,
	})
}

// InviteMember handles POST /team/invitations
// @Summary Invite a team member
// @Description Create a pending invitation. The email must not already have an account or an open invitation.
// @Tags team
// @Accept json
// @Produce json
// @Param invitation body service.InviteRequest true "Invitation data"
// @Success 201 {object} service.InvitationResponse "Invitation created"
// @Failure 402 {object} map[string]interface{} "Team features require premium"
// @Failure 403 {object} map[string]interface{} "Caller is not a primary owner"
// @Failure 409 {object} map[string]interface{} "Account or invitation already exists"
// @Security BearerAuth
// @Router /team/invitations [post]
func (h *TeamHandler) InviteMember(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}

	var req service.InviteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	invitation, err := h.teamService.Invite(actor, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, invitation)
}

// AcceptInvitation handles POST /team/invitations/accept
// @Summary Accept a team invitation
// @Description Redeem an invitation token and create a delegated team member account. No authentication required.
// @Tags team
// @Accept json
// @Produce json
// @Param acceptance body service.AcceptInvitationRequest true "Token and account details"
// @Success 201 {object} service.TeamMemberResponse "Team member account created"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 409 {object} map[string]interface{} "Invitation already accepted"
// @Router /team/invitations/accept [post]
func (h *TeamHandler) AcceptInvitation(c *gin.Context) {
	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.teamService.Accept(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// RevokeInvitation handles DELETE /team/invitations/:id
// @Summary Revoke a pending invitation
// @Tags team
// @Accept json
// @Produce json
// @Param id path string true "Invitation ID (UUID)"
// @Success 204 "Invitation revoked"
// @Failure 404 {object} map[string]interface{} "Invitation not found"
// @Failure 409 {object} map[string]interface{} "Invitation already accepted"
// @Security BearerAuth
// @Router /team/invitations/{id} [delete]
func (h *TeamHandler) RevokeInvitation(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invitation ID"})
		return
	}

	if err := h.teamService.RevokeInvitation(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RemoveMember handles DELETE /team/members/:id
// @Summary Remove a team member
// @Description Delete a delegated account from the caller's team. The owner's data is unaffected.
// @Tags team
// @Accept json
// @Produce json
// @Param id path string true "Member account ID (UUID)"
// @Success 204 "Team member removed"
// @Failure 404 {object} map[string]interface{} "Team member not found"
// @Security BearerAuth
// @Router /team/members/{id} [delete]
func (h *TeamHandler) RemoveMember(c *gin.Context) {
	actor, ok := currentAccount(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid member ID"})
		return
	}

	if err := h.teamService.RemoveMember(actor, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
