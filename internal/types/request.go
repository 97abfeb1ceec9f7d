package types

type RequestSendMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Media   string `json:"media"`
	Caption string `json:"caption"`
}

type RequestSendReaction struct {
	ChatID    string `json:"chatId"`
	MessageID string `json:"messageId"`
	Emoji     string `json:"emoji"`
}

type RequestMuteChat struct {
	// Absent means mute indefinitely.
	DurationSeconds *int `json:"durationSeconds"`
}

type RequestArchiveChat struct {
	Archive *bool `json:"archive"`
}

type RequestPinChat struct {
	Pin *bool `json:"pin"`
}

type RequestCreateGroup struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
}

type RequestUpdateGroup struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type RequestGroupParticipants struct {
	Participants []string `json:"participants"`
}
