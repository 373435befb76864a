package domain

import "fmt"

// MessageType is the integer tag identifying the payload schema of an envelope.
type MessageType int

const (
	ChatText        MessageType = 1
	FileInfo        MessageType = 10
	FileChunk       MessageType = 11
	FileEnd         MessageType = 12
	LoginRequest    MessageType = 100
	LoginResponse   MessageType = 101
	UserJoinNotice  MessageType = 200
	UserLeaveNotice MessageType = 201
	ServerNotice    MessageType = 202
	ErrorResponse   MessageType = 500
)

var knownTypes = []MessageType{
	ChatText, FileInfo, FileChunk, FileEnd,
	LoginRequest, LoginResponse,
	UserJoinNotice, UserLeaveNotice, ServerNotice,
	ErrorResponse,
}

func (t MessageType) String() string {
	switch t {
	case ChatText:
		return "CHAT_TEXT"
	case FileInfo:
		return "FILE_INFO"
	case FileChunk:
		return "FILE_CHUNK"
	case FileEnd:
		return "FILE_END"
	case LoginRequest:
		return "USER_LOGIN_REQUEST"
	case LoginResponse:
		return "USER_LOGIN_RESPONSE"
	case UserJoinNotice:
		return "USER_JOIN_NOTICE"
	case UserLeaveNotice:
		return "USER_LEAVE_NOTICE"
	case ServerNotice:
		return "SERVER_NOTICE"
	case ErrorResponse:
		return "ERROR_RESPONSE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
}

// WireByte is the header byte used for t on the wire.
// The frame header only carries the low 8 bits of the tag, so 500 travels as 244.
func (t MessageType) WireByte() byte {
	return byte(t)
}

// FromWireByte restores the tag of a known message type from its header byte.
// Bytes matching no known type are returned as-is and stay unknown to the dispatcher.
func FromWireByte(b byte) MessageType {
	for _, t := range knownTypes {
		if t.WireByte() == b {
			return t
		}
	}
	return MessageType(b)
}

// Envelope is the wire unit handed over by the transport.
type Envelope struct {
	Type    MessageType
	Payload []byte
}
