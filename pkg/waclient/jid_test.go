package waclient

import (
	"testing"

	"go.mau.fi/whatsmeow/types"
)

func TestComposeJID(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantUser   string
		wantServer string
	}{
		{"bare phone", "5511999999999", "5511999999999", types.DefaultUserServer},
		{"phone with plus", "+5511999999999", "5511999999999", types.DefaultUserServer},
		{"legacy user form", "5511999999999@c.us", "5511999999999", types.DefaultUserServer},
		{"legacy group form", "123456789-987654321@g.us", "123456789-987654321", types.GroupServer},
		{"native user form", "5511999999999@s.whatsapp.net", "5511999999999", types.DefaultUserServer},
		{"native group form", "120363041234567890@g.us", "120363041234567890", types.GroupServer},
		{"bare group id with dash", "123456789-987654321", "123456789-987654321", types.GroupServer},
		{"long bare group id", "120363041234567890", "120363041234567890", types.GroupServer},
		{"whitespace", "  5511999999999  ", "5511999999999", types.DefaultUserServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jid := ComposeJID(tt.input)
			if jid.User != tt.wantUser || jid.Server != tt.wantServer {
				t.Fatalf("ComposeJID(%q) = %s@%s, want %s@%s",
					tt.input, jid.User, jid.Server, tt.wantUser, tt.wantServer)
			}
		})
	}
}

func TestIsGroupID(t *testing.T) {
	if !IsGroupID("123456789-987654321@g.us") {
		t.Fatal("group jid not detected as group")
	}
	if IsGroupID("5511999999999@c.us") {
		t.Fatal("user jid detected as group")
	}
}

func TestDecomposeJID(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"5511999999999@s.whatsapp.net", "5511999999999"},
		{"+5511999999999", "5511999999999"},
		{"5511999999999", "5511999999999"},
		{"123456789-987654321@g.us", "123456789-987654321"},
	}

	for _, tt := range tests {
		if got := DecomposeJID(tt.input); got != tt.want {
			t.Fatalf("DecomposeJID(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
