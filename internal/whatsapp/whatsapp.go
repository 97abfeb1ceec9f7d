package whatsapp

import (
	"context"
	"encoding/base64"

	"github.com/gofiber/fiber/v2"
	"github.com/skip2/go-qrcode"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/respond"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
)

const qrImageSize = 256

// Controller serves session lifecycle and status endpoints.
type Controller struct {
	svc *session.Service
}

func NewController(svc *session.Service) *Controller {
	return &Controller{svc: svc}
}

func (ct *Controller) Status(c *fiber.Ctx) error {
	return router.ResponseSuccessWithData(c, "Success get session status", ct.svc.Status())
}

// QR returns the outstanding pairing challenge, both as the raw code and as
// a PNG data URI ready to drop into an <img> tag.
func (ct *Controller) QR(c *fiber.Ctx) error {
	challenge, ok := ct.svc.QRChallenge()
	if !ok {
		return router.ResponseNotFound(c, "No QR challenge outstanding")
	}

	data := fiber.Map{"qr": challenge}
	if png, err := qrcode.Encode(challenge, qrcode.Medium, qrImageSize); err == nil {
		data["image"] = "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
	} else {
		log.Session(c, "QR").WithError(err).Warn("Failed to render QR image")
	}

	return router.ResponseSuccessWithData(c, "Success get QR challenge", data)
}

// Lifecycle calls run on a background context: an impatient HTTP client
// dropping the request must not abort a half-done teardown or connect.

func (ct *Controller) Initialize(c *fiber.Ctx) error {
	log.Session(c, "Initialize").Info("Initializing whatsapp client")

	if err := ct.svc.Initialize(context.Background()); err != nil {
		log.Session(c, "Initialize").WithError(err).Error("Failed to initialize whatsapp client")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success initialize whatsapp client")
}

func (ct *Controller) Restart(c *fiber.Ctx) error {
	log.Session(c, "Restart").Info("Restarting whatsapp client")

	if err := ct.svc.Restart(context.Background()); err != nil {
		log.Session(c, "Restart").WithError(err).Error("Failed to restart whatsapp client")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success restart whatsapp client")
}

func (ct *Controller) Logout(c *fiber.Ctx) error {
	log.Session(c, "Logout").Info("Logging out whatsapp session")

	if err := ct.svc.Logout(context.Background()); err != nil {
		log.Session(c, "Logout").WithError(err).Error("Failed to log out whatsapp session")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success logout whatsapp session")
}
