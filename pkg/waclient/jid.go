package waclient

import (
	"strings"

	"go.mau.fi/whatsmeow/types"
)

// ComposeJID parses a phone number or serialized identifier into a JID.
// Identifiers in the legacy "@c.us" / "@g.us" form are mapped onto the
// servers the underlying network actually uses; bare numbers fall back to
// heuristics for group identifiers.
func ComposeJID(id string) types.JID {
	trimmed := strings.TrimSpace(id)
	if strings.ContainsRune(trimmed, '@') {
		parts := strings.SplitN(trimmed, "@", 2)
		user := strings.TrimPrefix(parts[0], "+")
		switch parts[1] {
		case types.GroupServer:
			return types.NewJID(user, types.GroupServer)
		case "c.us", types.DefaultUserServer:
			return types.NewJID(user, types.DefaultUserServer)
		}
		if parsed, err := types.ParseJID(trimmed); err == nil {
			return parsed
		}
	}

	bare := DecomposeJID(trimmed)
	if strings.ContainsRune(bare, '-') || len(bare) >= 18 {
		return types.NewJID(bare, types.GroupServer)
	}
	return types.NewJID(bare, types.DefaultUserServer)
}

// IsGroupID reports whether an identifier addresses a group chat.
func IsGroupID(id string) bool {
	return ComposeJID(id).Server == types.GroupServer
}

// DecomposeJID strips the server suffix and leading plus sign from an
// identifier, leaving the bare phone number or group id.
func DecomposeJID(id string) string {
	if strings.ContainsRune(id, '@') {
		buffers := strings.Split(id, "@")
		id = buffers[0]
	}

	if len(id) > 0 && id[0] == '+' {
		id = id[1:]
	}

	return strings.TrimSpace(id)
}
