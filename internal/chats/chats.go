package chats

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/respond"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/types"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
)

// Controller serves chat endpoints.
type Controller struct {
	svc *session.Service
}

func NewController(svc *session.Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) List(c *fiber.Ctx) error {
	chats, err := ct.svc.GetChats(c.UserContext())
	if err != nil {
		log.Session(c, "GetChats").WithError(err).Error("Failed to fetch chats")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get chats", chats)
}

func (ct *Controller) Get(c *fiber.Ctx) error {
	chatID := c.Params("chatId")

	chat, err := ct.svc.GetChatByID(c.UserContext(), chatID)
	if err != nil {
		log.Session(c, "GetChat").WithError(err).Error("Failed to fetch chat")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get chat", chat)
}

// Indefinite mutes are modeled as a far-future expiry.
const indefiniteMute = 10 * 365 * 24 * time.Hour

// Mute silences a chat for the requested number of seconds; a missing
// duration mutes indefinitely.
func (ct *Controller) Mute(c *fiber.Ctx) error {
	chatID := c.Params("chatId")

	var req types.RequestMuteChat
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return router.ResponseBadRequest(c, "Failed parse body request")
		}
	}

	duration := indefiniteMute
	if req.DurationSeconds != nil {
		if *req.DurationSeconds <= 0 {
			return router.ResponseBadRequest(c, "durationSeconds must be positive")
		}
		duration = time.Duration(*req.DurationSeconds) * time.Second
	}

	if err := ct.svc.MuteChat(c.UserContext(), chatID, duration); err != nil {
		log.Session(c, "MuteChat").WithError(err).Error("Failed to mute chat")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success mute chat")
}

// Unmute lifts a previous mute.
func (ct *Controller) Unmute(c *fiber.Ctx) error {
	chatID := c.Params("chatId")

	if err := ct.svc.MuteChat(c.UserContext(), chatID, 0); err != nil {
		log.Session(c, "UnmuteChat").WithError(err).Error("Failed to unmute chat")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success unmute chat")
}

func (ct *Controller) Archive(c *fiber.Ctx) error {
	chatID := c.Params("chatId")

	var req types.RequestArchiveChat
	if err := c.BodyParser(&req); err != nil {
		return router.ResponseBadRequest(c, "Failed parse body request")
	}
	if req.Archive == nil {
		return router.ResponseBadRequest(c, "archive is required")
	}

	if err := ct.svc.ArchiveChat(c.UserContext(), chatID, *req.Archive); err != nil {
		log.Session(c, "ArchiveChat").WithError(err).Error("Failed to update chat archive")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success update chat archive")
}

func (ct *Controller) Pin(c *fiber.Ctx) error {
	chatID := c.Params("chatId")

	var req types.RequestPinChat
	if err := c.BodyParser(&req); err != nil {
		return router.ResponseBadRequest(c, "Failed parse body request")
	}
	if req.Pin == nil {
		return router.ResponseBadRequest(c, "pin is required")
	}

	if err := ct.svc.PinChat(c.UserContext(), chatID, *req.Pin); err != nil {
		log.Session(c, "PinChat").WithError(err).Error("Failed to update chat pin")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success update chat pin")
}
