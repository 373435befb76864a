package event

import (
	"chat-client/domain"
	"chat-client/errors"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestNew_FillsIdentityAndTime(t *testing.T) {
	req := require.New(t)

	before := time.Now()
	evt := New(SystemNoticeType, domain.SystemNoticeBroadcast{Notice: "hi"}, "test", "msg")

	req.NotEqual(uuid.Nil, evt.ID)
	req.Equal(SystemNoticeType, evt.Type)
	req.Equal("test", evt.Source)
	req.Equal("msg", evt.Message)
	req.False(evt.At.Before(before))
}

func TestNewErrorDetail(t *testing.T) {
	req := require.New(t)

	detail := NewErrorDetail(errors.CodeNotFound, fmt.Errorf("missing"))
	req.Equal(errors.CodeNotFound, detail.Code)
	req.Equal("missing", detail.Message)

	req.Empty(NewErrorDetail(errors.CodeUnknown, nil).Message)
}

func TestCounter_ConcurrentIncrements(t *testing.T) {
	req := require.New(t)
	counter := NewCounter()
	handler := NewCountingHandler(counter)

	// When many goroutines publish at once
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			handler.Handle(New(NewChatMessageType, nil, "test", ""))
			handler.Handle(New(UserJoinedType, nil, "test", ""))
		}()
	}
	wg.Wait()

	// Then every event is counted
	req.Equal(uint64(50), counter.Get(NewChatMessageType))
	req.Equal([]Count{{NewChatMessageType, 50}, {UserJoinedType, 50}}, counter.Snapshot())
}

func TestWorkerRestartedAfterPanicHandler(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	counter := NewCounter()
	handler := NewWorkerRestartedAfterPanicHandler(log, counter)

	handler.Handle(New(RestartedAfterPanicType, WorkerRestartedAfterPanic{WorkerName: "ReceiveWorker"}, "test", ""))
	// Invalid payloads are ignored
	handler.Handle(New(RestartedAfterPanicType, "oops", "test", ""))
	// Other types are ignored
	handler.Handle(New(WarningType, nil, "test", ""))

	req.Equal(uint64(1), counter.Get(RestartedAfterPanicType))
}
