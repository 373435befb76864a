package event

import (
	"chat-client/errors"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	ConnectionSuccessType Type = "CONNECTION_SUCCESS"
	ConnectionFailureType Type = "CONNECTION_FAILURE"
	ConnectionLostType    Type = "CONNECTION_LOST"
	DisconnectedType      Type = "DISCONNECTED"
	LoginSuccessType      Type = "LOGIN_SUCCESS"
	LoginFailureType      Type = "LOGIN_FAILURE"
	NewChatMessageType    Type = "NEW_CHAT_MESSAGE"
	UserJoinedType        Type = "USER_JOINED"
	UserLeftType          Type = "USER_LEFT"
	SystemNoticeType      Type = "SYSTEM_NOTICE"
	FileUploadedType      Type = "FILE_UPLOADED"
	FileUploadFailureType Type = "FILE_UPLOAD_FAILURE"
	InternalErrorType     Type = "INTERNAL_ERROR"
	WarningType           Type = "WARNING"
	DiagnosticType        Type = "DIAGNOSTIC"

	// LocalNoticeType carries output of local commands; it never comes from the server.
	LocalNoticeType Type = "LOCAL_NOTICE"
)

// Event is a fire-and-forget notification published on the bus after
// an inbound message is handled or a session operation completes.
type Event struct {
	ID      uuid.UUID
	Type    Type
	Payload any
	Source  string
	Message string
	At      time.Time
}

func New(t Type, payload any, source, message string) Event {
	return Event{
		ID:      uuid.New(),
		Type:    t,
		Payload: payload,
		Source:  source,
		Message: message,
		At:      time.Now(),
	}
}

// ErrorDetail is the payload of every failure event.
type ErrorDetail struct {
	Code          errors.Code
	Message       string
	TransportCode int
}

func NewErrorDetail(code errors.Code, err error) ErrorDetail {
	detail := ErrorDetail{Code: code}
	if err != nil {
		detail.Message = err.Error()
	}
	return detail
}

// Warning is published for inbound envelopes nobody can route.
type Warning struct {
	MessageType int
	Reason      string
}
