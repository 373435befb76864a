// Package domain contains core concepts of the chat client.
// This file defines the typed payloads exchanged with the server.
// Payloads are JSON documents; they are validated on decode and treated as immutable values.
package domain

import (
	"bytes"
	"chat-client/errors"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ChatTextRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatTextBroadcast struct {
	Author    string    `json:"author" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Timestamp Timestamp `json:"timestamp"`
}

type FileStartRequest struct {
	Filename string `json:"filename" validate:"required"`
	Filesize int64  `json:"filesize" validate:"gte=0"`
}

type FileEndRequest struct {
	Filename string `json:"filename" validate:"required"`
	Checksum string `json:"checksum" validate:"required,len=64,hexadecimal"`
}

type UserLoginRequest struct {
	Nickname string `json:"nickname" validate:"required,min=3,max=16"`
}

type UserLoginResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Nickname string `json:"nickname" validate:"required_if=Success true"`
	ClientID int64  `json:"clientId"`
}

type UserJoinBroadcast struct {
	Nickname string `json:"nickname" validate:"required"`
}

type UserLeaveBroadcast struct {
	Nickname string `json:"nickname" validate:"required"`
}

type SystemNoticeBroadcast struct {
	Notice string `json:"notice" validate:"required"`
}

type ServerErrorResponse struct {
	ErrorCode string    `json:"errorCode" validate:"required"`
	Message   string    `json:"message"`
	Timestamp Timestamp `json:"timestamp"`
}

// Decode parses a UTF-8 JSON payload into T and validates its required fields.
func Decode[T any](payload []byte) (T, error) {
	var msg T
	if !utf8.Valid(payload) {
		return msg, errors.ErrInvalidUTF8
	}
	if err := json.Unmarshal(payload, &msg); err != nil {
		return msg, fmt.Errorf("decode %T: %w", msg, err)
	}
	if err := validate.Struct(msg); err != nil {
		return msg, fmt.Errorf("validate %T: %w", msg, err)
	}
	return msg, nil
}

// Encode validates msg and serializes it for the wire.
func Encode(msg any) ([]byte, error) {
	if err := validate.Struct(msg); err != nil {
		return nil, fmt.Errorf("validate %T: %w", msg, err)
	}
	return json.Marshal(msg)
}

// Validate checks msg against its validation tags without encoding it.
func Validate(msg any) error {
	return validate.Struct(msg)
}

// Timestamp accepts both RFC 3339 strings and numeric epoch seconds,
// the two shapes a Java Instant takes depending on the server's serializer settings.
type Timestamp struct {
	time.Time
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return fmt.Errorf("timestamp %q: %w", s, err)
		}
		t.Time = parsed
		return nil
	}
	seconds, err := strconv.ParseFloat(string(data), 64)
	if err != nil {
		return fmt.Errorf("timestamp %s: %w", data, err)
	}
	whole := int64(seconds)
	t.Time = time.Unix(whole, int64((seconds-float64(whole))*1e9)).UTC()
	return nil
}
