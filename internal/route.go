package internal

import (
	"github.com/gofiber/fiber/v2"
	swagger "github.com/gofiber/swagger"

	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/auth"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/metrics"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"

	ctlChats "github.com/gdbrns/go-whatsapp-session-gateway/internal/chats"
	ctlContacts "github.com/gdbrns/go-whatsapp-session-gateway/internal/contacts"
	ctlGroups "github.com/gdbrns/go-whatsapp-session-gateway/internal/groups"
	ctlIndex "github.com/gdbrns/go-whatsapp-session-gateway/internal/index"
	ctlMessages "github.com/gdbrns/go-whatsapp-session-gateway/internal/messages"
	ctlWhatsApp "github.com/gdbrns/go-whatsapp-session-gateway/internal/whatsapp"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"

	_ "github.com/gdbrns/go-whatsapp-session-gateway/docs"
)

// Routes registers every endpoint against the one session service created at
// process start.
func Routes(app *fiber.App, svc *session.Service) {
	whatsAppCtl := ctlWhatsApp.NewController(svc)
	messagesCtl := ctlMessages.NewController(svc)
	contactsCtl := ctlContacts.NewController(svc)
	chatsCtl := ctlChats.NewController(svc)
	groupsCtl := ctlGroups.NewController(svc)

	// Route for Index
	// ---------------------------------------------
	if router.BaseURL == "" {
		app.Get("/", ctlIndex.Index)
	} else {
		app.Get(router.BaseURL, ctlIndex.Index)
		app.Get(router.BaseURL+"/", ctlIndex.Index)
	}

	// Route for OpenAPI / Swagger
	// ---------------------------------------------
	app.Get(router.BaseURL+"/docs/*", swagger.New(swagger.Config{}))

	// Route for Prometheus Metrics
	// ---------------------------------------------
	app.Get(router.BaseURL+"/metrics", metrics.Handler())

	// API v1 (X-API-Key / Bearer authentication)
	// ---------------------------------------------
	api := app.Group(router.BaseURL+"/api/v1", auth.APIKeyAuth())

	// Session Lifecycle
	api.Get("/whatsapp/status", whatsAppCtl.Status)
	api.Get("/whatsapp/qr", whatsAppCtl.QR)
	api.Post("/whatsapp/initialize", whatsAppCtl.Initialize)
	api.Post("/whatsapp/restart", whatsAppCtl.Restart)
	api.Post("/whatsapp/logout", whatsAppCtl.Logout)

	// Event Streams
	api.Get("/whatsapp/events", whatsAppCtl.Events)
	api.Use("/whatsapp/ws", ctlWhatsApp.SocketUpgrade)
	api.Get("/whatsapp/ws", whatsAppCtl.Socket())

	// Messages
	api.Post("/messages/send", messagesCtl.Send)
	api.Post("/messages/send-media", messagesCtl.SendMedia)
	api.Post("/messages/reaction", messagesCtl.Reaction)
	api.Get("/messages/:chatId", messagesCtl.History)

	// Contacts
	api.Get("/contacts", contactsCtl.List)
	api.Get("/contacts/:contactId", contactsCtl.Get)
	api.Get("/contacts/:contactId/registered", contactsCtl.CheckRegistered)
	api.Post("/contacts/:contactId/block", contactsCtl.Block)
	api.Delete("/contacts/:contactId/block", contactsCtl.Unblock)

	// Chats
	api.Get("/chats", chatsCtl.List)
	api.Get("/chats/:chatId", chatsCtl.Get)
	api.Post("/chats/:chatId/mute", chatsCtl.Mute)
	api.Delete("/chats/:chatId/mute", chatsCtl.Unmute)
	api.Post("/chats/:chatId/archive", chatsCtl.Archive)
	api.Post("/chats/:chatId/pin", chatsCtl.Pin)

	// Groups
	api.Get("/groups", groupsCtl.List)
	api.Post("/groups", groupsCtl.Create)
	api.Get("/groups/:groupId", groupsCtl.Get)
	api.Put("/groups/:groupId", groupsCtl.Update)
	api.Delete("/groups/:groupId", groupsCtl.Leave)
	api.Post("/groups/:groupId/participants", groupsCtl.AddParticipants)
	api.Delete("/groups/:groupId/participants", groupsCtl.RemoveParticipants)
	api.Get("/groups/:groupId/invite-link", groupsCtl.InviteLink)
}
