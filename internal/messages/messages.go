package messages

import (
	"bytes"
	"encoding/base64"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/forPelevin/gomoji"
	"github.com/gofiber/fiber/v2"
	"github.com/rivo/uniseg"

	"github.com/gdbrns/go-whatsapp-session-gateway/internal/respond"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/session"
	"github.com/gdbrns/go-whatsapp-session-gateway/internal/types"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/log"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/router"
	"github.com/gdbrns/go-whatsapp-session-gateway/pkg/waclient"
)

// Controller serves messaging endpoints.
type Controller struct {
	svc *session.Service
}

func NewController(svc *session.Service) *Controller {
	return &Controller{svc: svc}
}

func convertFileToBytes(file multipart.File) ([]byte, error) {
	buffer := bytes.NewBuffer(nil)
	if _, err := io.Copy(buffer, file); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// decodeInlineMedia accepts either a bare base64 string or a data URI and
// returns the payload with its detected mime type.
func decodeInlineMedia(encoded string) (waclient.Media, error) {
	mimeType := ""
	if strings.HasPrefix(encoded, "data:") {
		meta, rest, found := strings.Cut(encoded[len("data:"):], ",")
		if found {
			mimeType = strings.TrimSuffix(meta, ";base64")
			encoded = rest
		}
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return waclient.Media{}, err
	}
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}
	return waclient.Media{Data: data, MimeType: mimeType}, nil
}

// Send handles text messages plus inline base64 media in one endpoint.
func (ct *Controller) Send(c *fiber.Ctx) error {
	var req types.RequestSendMessage
	if err := c.BodyParser(&req); err != nil {
		log.MessageOp("Send", "").Warn("Failed to parse body request")
		return router.ResponseBadRequest(c, "Failed parse body request")
	}

	if req.To == "" {
		return router.ResponseBadRequest(c, "to is required")
	}

	ctx := c.UserContext()

	if req.Type == "media" || req.Media != "" {
		if req.Media == "" {
			return router.ResponseBadRequest(c, "media is required for media messages")
		}
		media, err := decodeInlineMedia(req.Media)
		if err != nil {
			return router.ResponseBadRequest(c, "media must be valid base64")
		}
		caption := req.Caption
		if caption == "" {
			caption = req.Message
		}

		sent, err := ct.svc.SendMedia(ctx, req.To, media, caption)
		if err != nil {
			log.MessageOp("Send", req.To).WithError(err).Error("Failed to send media message")
			return respond.Error(c, err)
		}
		return router.ResponseSuccessWithData(c, "Success send media message", sent)
	}

	sent, err := ct.svc.SendMessage(ctx, req.To, req.Message)
	if err != nil {
		log.MessageOp("Send", req.To).WithError(err).Error("Failed to send message")
		return respond.Error(c, err)
	}

	log.MessageOp("Send", req.To).WithField("message_id", sent.ID).Info("Message sent")
	return router.ResponseSuccessWithData(c, "Success send message", sent)
}

// SendMedia handles multipart uploads.
func (ct *Controller) SendMedia(c *fiber.Ctx) error {
	to := c.FormValue("to")
	caption := c.FormValue("caption")

	if to == "" {
		return router.ResponseBadRequest(c, "to is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		log.MessageOp("SendMedia", to).Warn("No file provided")
		return router.ResponseBadRequest(c, "file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return router.ResponseBadRequest(c, "Failed to open uploaded file")
	}
	defer file.Close()

	data, err := convertFileToBytes(file)
	if err != nil {
		return router.ResponseInternalError(c, "Failed to read uploaded file")
	}

	media := waclient.Media{
		Data:     data,
		MimeType: fileHeader.Header.Get(fiber.HeaderContentType),
		FileName: fileHeader.Filename,
	}
	if media.MimeType == "" {
		media.MimeType = http.DetectContentType(data)
	}

	log.MessageOp("SendMedia", to).
		WithField("filename", fileHeader.Filename).
		WithField("size", fileHeader.Size).
		Info("Sending media message")

	sent, err := ct.svc.SendMedia(c.UserContext(), to, media, caption)
	if err != nil {
		log.MessageOp("SendMedia", to).WithError(err).Error("Failed to send media message")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success send media message", sent)
}

// Reaction sends an emoji reaction to an existing message. An empty emoji
// removes a previous reaction.
func (ct *Controller) Reaction(c *fiber.Ctx) error {
	var req types.RequestSendReaction
	if err := c.BodyParser(&req); err != nil {
		log.MessageOp("Reaction", "").Warn("Failed to parse body request")
		return router.ResponseBadRequest(c, "Failed parse body request")
	}

	if req.Emoji != "" && !gomoji.ContainsEmoji(req.Emoji) && uniseg.GraphemeClusterCount(req.Emoji) != 1 {
		return router.ResponseBadRequest(c, "emoji must be a single emoji character")
	}

	if err := ct.svc.SendReaction(c.UserContext(), req.ChatID, req.MessageID, req.Emoji); err != nil {
		log.MessageOp("Reaction", req.ChatID).WithError(err).Error("Failed to send reaction")
		return respond.Error(c, err)
	}
	return router.ResponseSuccess(c, "Success send reaction")
}

// History returns one page of a chat's recent messages, newest first.
func (ct *Controller) History(c *fiber.Ctx) error {
	chatID := c.Params("chatId")
	limit := c.QueryInt("limit", 50)
	page := c.QueryInt("page", 1)

	messages, err := ct.svc.GetMessages(c.UserContext(), chatID, limit, page)
	if err != nil {
		log.MessageOp("History", chatID).WithError(err).Error("Failed to fetch messages")
		return respond.Error(c, err)
	}
	return router.ResponseSuccessWithData(c, "Success get messages", messages)
}
