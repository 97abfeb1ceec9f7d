package session

import "fmt"

// Stable failure codes surfaced in the response envelope. One code per
// facade operation plus the shared precondition/validation kinds.
const (
	CodeSessionNotReady = "SESSION_NOT_READY"
	CodeValidation      = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"

	CodeInitialize = "INITIALIZE_ERROR"
	CodeRestart    = "RESTART_ERROR"
	CodeLogout     = "LOGOUT_ERROR"

	CodeSend         = "SEND_ERROR"
	CodeSendMedia    = "SEND_MEDIA_ERROR"
	CodeSendReaction = "SEND_REACTION_ERROR"
	CodeGetMessages  = "GET_MESSAGES_ERROR"

	CodeGetContacts     = "GET_CONTACTS_ERROR"
	CodeGetContact      = "GET_CONTACT_ERROR"
	CodeCheckRegistered = "CHECK_REGISTERED_ERROR"
	CodeBlockContact    = "BLOCK_CONTACT_ERROR"
	CodeUnblockContact  = "UNBLOCK_CONTACT_ERROR"

	CodeGetChats    = "GET_CHATS_ERROR"
	CodeGetChat     = "GET_CHAT_ERROR"
	CodeMuteChat    = "MUTE_CHAT_ERROR"
	CodeArchiveChat = "ARCHIVE_CHAT_ERROR"
	CodePinChat     = "PIN_CHAT_ERROR"

	CodeGetGroups          = "GET_GROUPS_ERROR"
	CodeGetGroup           = "GET_GROUP_ERROR"
	CodeCreateGroup        = "CREATE_GROUP_ERROR"
	CodeUpdateGroup        = "UPDATE_GROUP_ERROR"
	CodeLeaveGroup         = "LEAVE_GROUP_ERROR"
	CodeAddParticipants    = "ADD_PARTICIPANTS_ERROR"
	CodeRemoveParticipants = "REMOVE_PARTICIPANTS_ERROR"
	CodeInviteLink         = "INVITE_LINK_ERROR"
)

// Error is the typed failure returned by every facade operation. Code is
// stable and machine-readable; Message is safe to serialize to clients.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(code string, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

// ErrSessionNotReady is returned by every operation that requires a READY
// session. The caller may retry after polling status.
func errSessionNotReady() *Error {
	return &Error{Code: CodeSessionNotReady, Message: "whatsapp session is not ready"}
}

func errValidation(message string) *Error {
	return &Error{Code: CodeValidation, Message: message}
}

func errNotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

// AsError extracts the typed error if err carries one; otherwise it wraps
// err under the given fallback code so no untyped failure escapes.
func AsError(err error, fallbackCode string, fallbackMessage string) *Error {
	if err == nil {
		return nil
	}
	if typed, ok := err.(*Error); ok {
		return typed
	}
	return newError(fallbackCode, fallbackMessage, err)
}
