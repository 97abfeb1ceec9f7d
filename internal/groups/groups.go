package groups

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/respond"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/types"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
)

// Controller serves group endpoints.
type Controller struct {
	svc *session.Service
}

func NewController(svc *session.Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) List(c *fiber.Ctx) error {
	groups, err := ct.svc.GetGroups(c.UserContext())
	if err != nil {
		log.Session(c, "GetGroups").WithError(err).Error("Failed to fetch groups")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get groups", groups)
}

func (ct *Controller) Get(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	group, err := ct.svc.GetGroupByID(c.UserContext(), groupID)
	if err != nil {
		log.Session(c, "GetGroup").WithError(err).Error("Failed to fetch group")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get group", group)
}

func (ct *Controller) Create(c *fiber.Ctx) error {
	var req types.RequestCreateGroup
	if err := c.BodyParser(&req); err != nil {
		return router.ResponseBadRequest(c, "Failed parse body request")
	}

	log.Session(c, "CreateGroup").
		WithField("name", req.Name).
		WithField("participants", len(req.Participants)).
		Info("Creating group")

	group, err := ct.svc.CreateGroup(c.UserContext(), req.Name, req.Participants)
	if err != nil {
		log.Session(c, "CreateGroup").WithError(err).Error("Failed to create group")
		return respond.Error(c, err)
	}
	return router.ResponseCreatedWithData(c, "Success create group", group)
}

// Update changes the group subject and/or topic.
func (ct *Controller) Update(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	var req types.RequestUpdateGroup
	if err := c.BodyParser(&req); err != nil {
		return router.ResponseBadRequest(c, "Failed parse body request")
	}

	if err := ct.svc.UpdateGroup(c.UserContext(), groupID, req.Name, req.Description); err != nil {
		log.Session(c, "UpdateGroup").WithError(err).Error("Failed to update group")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success update group")
}

func (ct *Controller) Leave(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	if err := ct.svc.LeaveGroup(c.UserContext(), groupID); err != nil {
		log.Session(c, "LeaveGroup").WithError(err).Error("Failed to leave group")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success leave group")
}

func (ct *Controller) AddParticipants(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	var req types.RequestGroupParticipants
	if err := c.BodyParser(&req); err != nil {
		return router.ResponseBadRequest(c, "Failed parse body request")
	}

	if err := ct.svc.AddParticipants(c.UserContext(), groupID, req.Participants); err != nil {
		log.Session(c, "AddParticipants").WithError(err).Error("Failed to add participants")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success add participants")
}

func (ct *Controller) RemoveParticipants(c *fiber.Ctx) error {
	groupID := c.Params("groupId")

	var req types.RequestGroupParticipants
	if err := c.BodyParser(&req); err != nil {
		return router.ResponseBadRequest(c, "Failed parse body request")
	}

	if err := ct.svc.RemoveParticipants(c.UserContext(), groupID, req.Participants); err != nil {
		log.Session(c, "RemoveParticipants").WithError(err).Error("Failed to remove participants")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success remove participants")
}

// InviteLink returns the group invite URL; ?reset=true revokes the old one
// first.
func (ct *Controller) InviteLink(c *fiber.Ctx) error {
	groupID := c.Params("groupId")
	reset := c.QueryBool("reset", false)

	link, err := ct.svc.GetInviteLink(c.UserContext(), groupID, reset)
	if err != nil {
		log.Session(c, "GetInviteLink").WithError(err).Error("Failed to fetch invite link")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get invite link", fiber.Map{"inviteLink": link})
}
