package contacts

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/respond"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
)

// Controller serves contact endpoints.
type Controller struct {
	svc *session.Service
}

func NewController(svc *session.Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) List(c *fiber.Ctx) error {
	contacts, err := ct.svc.GetContacts(c.UserContext())
	if err != nil {
		log.Session(c, "GetContacts").WithError(err).Error("Failed to fetch contacts")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get contacts", contacts)
}

func (ct *Controller) Get(c *fiber.Ctx) error {
	contactID := c.Params("contactId")

	contact, err := ct.svc.GetContactByID(c.UserContext(), contactID)
	if err != nil {
		log.Session(c, "GetContact").WithError(err).Error("Failed to fetch contact")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get contact", contact)
}

// CheckRegistered reports whether a phone number has an account on the
// network.
func (ct *Controller) CheckRegistered(c *fiber.Ctx) error {
	phone := c.Params("contactId")

	registered, err := ct.svc.IsRegistered(c.UserContext(), phone)
	if err != nil {
		log.Session(c, "CheckRegistered").WithError(err).Error("Failed to check registration")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success check registration", fiber.Map{
		"phone":      phone,
		"registered": registered,
	})
}

func (ct *Controller) Block(c *fiber.Ctx) error {
	contactID := c.Params("contactId")

	if err := ct.svc.BlockContact(c.UserContext(), contactID); err != nil {
		log.Session(c, "BlockContact").WithError(err).Error("Failed to block contact")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success block contact")
}

func (ct *Controller) Unblock(c *fiber.Ctx) error {
	contactID := c.Params("contactId")

	if err := ct.svc.UnblockContact(c.UserContext(), contactID); err != nil {
		log.Session(c, "UnblockContact").WithError(err).Error("Failed to unblock contact")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success unblock contact")
}
