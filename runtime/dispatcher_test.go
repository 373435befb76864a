package runtime

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/event"
	"chat-client/errors"
	"chat-client/mocks"
	"log/slog"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type noticeHandler struct {
	received []domain.SystemNoticeBroadcast
}

func (h *noticeHandler) Handle(_ contract.ISession, msg domain.SystemNoticeBroadcast) {
	h.received = append(h.received, msg)
}

func TestDispatcher_RoutesRegisteredType(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	bus := mocks.NewMockIEventBus(ctrl)
	session := mocks.NewMockISession(ctrl)
	handler := &noticeHandler{}
	dispatcher := NewDispatcher(logs.GetLoggerFromLevel(slog.LevelDebug), bus)
	Register[domain.SystemNoticeBroadcast](dispatcher, domain.ServerNotice, handler)

	// Then no event is published by the dispatcher itself
	bus.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// When a valid envelope is dispatched
	dispatcher.Dispatch(session, domain.Envelope{Type: domain.ServerNotice, Payload: []byte(`{"notice":"maintenance"}`)})

	// Then the handler received the decoded message
	req.Equal([]domain.SystemNoticeBroadcast{{Notice: "maintenance"}}, handler.received)
	req.True(dispatcher.Registered(domain.ServerNotice))
	req.False(dispatcher.Registered(domain.ChatText))
}

func TestDispatcher_UnknownTypePublishesOneWarning(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	bus := mocks.NewMockIEventBus(ctrl)
	dispatcher := NewDispatcher(logs.GetLoggerFromLevel(slog.LevelDebug), bus)

	var warning event.Warning
	bus.EXPECT().
		Publish(event.WarningType, gomock.Any(), gomock.Any(), gomock.Any()).
		Do(func(_ event.Type, payload any, _, _ string) { warning = payload.(event.Warning) }).
		Times(1)

	// When an envelope with a reserved tag is dispatched
	req.NotPanics(func() {
		dispatcher.Dispatch(mocks.NewMockISession(ctrl), domain.Envelope{Type: domain.MessageType(13), Payload: []byte("{}")})
	})

	req.Equal(13, warning.MessageType)
}

func TestDispatcher_InvalidPayloadPublishesOneInternalError(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		description string
		payload     []byte
	}{
		{"Malformed json", []byte(`{"notice":`)},
		{"Missing required field", []byte(`{}`)},
		{"Invalid UTF-8", []byte{0xc3, 0x28}},
		{"Empty payload", nil},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			bus := mocks.NewMockIEventBus(ctrl)
			handler := &noticeHandler{}
			dispatcher := NewDispatcher(logs.GetLoggerFromLevel(slog.LevelDebug), bus)
			Register[domain.SystemNoticeBroadcast](dispatcher, domain.ServerNotice, handler)

			var detail event.ErrorDetail
			bus.EXPECT().
				Publish(event.InternalErrorType, gomock.Any(), gomock.Any(), gomock.Any()).
				Do(func(_ event.Type, payload any, _, _ string) { detail = payload.(event.ErrorDetail) }).
				Times(1)

			dispatcher.Dispatch(mocks.NewMockISession(ctrl), domain.Envelope{Type: domain.ServerNotice, Payload: tt.payload})

			req.Equal(errors.CodeUnknown, detail.Code)
			req.NotEmpty(detail.Message)
			req.Empty(handler.received)
		})
	}
}
