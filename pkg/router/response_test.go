package router

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func performRequest(t *testing.T, handler fiber.Handler) (int, Response) {
	t.Helper()

	app := fiber.New()
	app.Get("/test", handler)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/test", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}

	var envelope Response
	if err := json.Unmarshal(body, &envelope); err != nil {
		t.Fatalf("unmarshal %q: %v", body, err)
	}
	return resp.StatusCode, envelope
}

func TestResponseEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		handler     fiber.Handler
		wantStatus  int
		wantSuccess bool
	}{
		{"success with data", func(c *fiber.Ctx) error {
			return ResponseSuccessWithData(c, "ok", fiber.Map{"value": 1})
		}, fiber.StatusOK, true},
		{"created", func(c *fiber.Ctx) error {
			return ResponseCreated(c, "made")
		}, fiber.StatusCreated, true},
		{"bad request", func(c *fiber.Ctx) error {
			return ResponseBadRequest(c, "nope")
		}, fiber.StatusBadRequest, false},
		{"not found", func(c *fiber.Ctx) error {
			return ResponseNotFound(c, "missing")
		}, fiber.StatusNotFound, false},
		{"unauthorized", func(c *fiber.Ctx) error {
			return ResponseUnauthorized(c, "who are you")
		}, fiber.StatusUnauthorized, false},
		{"internal error", func(c *fiber.Ctx) error {
			return ResponseInternalError(c, "boom")
		}, fiber.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, envelope := performRequest(t, tt.handler)
			if status != tt.wantStatus {
				t.Fatalf("status = %d, want %d", status, tt.wantStatus)
			}
			if envelope.Success != tt.wantSuccess {
				t.Fatalf("success = %v, want %v", envelope.Success, tt.wantSuccess)
			}
			if envelope.Timestamp.IsZero() {
				t.Fatal("timestamp not set")
			}
			if !tt.wantSuccess && envelope.Error == "" {
				t.Fatal("failure envelope missing error text")
			}
		})
	}
}
