package services

import (
	"bytes"
	"chat-client/domain"
	"chat-client/errors"
	"chat-client/mocks"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"pgregory.net/rapid"
)

type sentMessage struct {
	Type    domain.MessageType
	Payload []byte
}

// recordingSender keeps every message in call order.
type recordingSender struct {
	mu       sync.Mutex
	messages []sentMessage
}

func (s *recordingSender) Send(msgType domain.MessageType, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, sentMessage{Type: msgType, Payload: payload})
	return nil
}

func (s *recordingSender) types() []domain.MessageType {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.MessageType, 0, len(s.messages))
	for _, m := range s.messages {
		out = append(out, m.Type)
	}
	return out
}

// fataler is satisfied by both *testing.T and *rapid.T.
type fataler interface {
	Fatalf(format string, args ...any)
}

func writeFile(t fataler, dir, name string, content []byte) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestFileUploader_ThousandBytesInHundredByteChunks(t *testing.T) {
	req := require.New(t)
	content := bytes.Repeat([]byte("0123456789"), 100)
	path := writeFile(t, t.TempDir(), "report.txt", content)
	sender := &recordingSender{}
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 100)

	// When the file is uploaded
	result, err := uploader.Upload(context.Background(), sender, path)
	req.NoError(err)

	// Then 1 FILE_INFO, 10 FILE_CHUNK and 1 FILE_END are sent in that order
	want := []domain.MessageType{domain.FileInfo}
	for i := 0; i < 10; i++ {
		want = append(want, domain.FileChunk)
	}
	want = append(want, domain.FileEnd)
	req.Equal(want, sender.types())

	// And the start message announces name and size
	var start domain.FileStartRequest
	req.NoError(json.Unmarshal(sender.messages[0].Payload, &start))
	req.Equal(domain.FileStartRequest{Filename: "report.txt", Filesize: 1000}, start)

	// And the end message carries the SHA-256 of the content
	sum := sha256.Sum256(content)
	var end domain.FileEndRequest
	req.NoError(json.Unmarshal(sender.messages[11].Payload, &end))
	req.Equal(domain.FileEndRequest{Filename: "report.txt", Checksum: hex.EncodeToString(sum[:])}, end)

	req.Equal(int64(1000), result.Size)
	req.Equal(10, result.Chunks)
	req.Equal(end.Checksum, result.Checksum)
	req.Equal("text/plain", result.MimeType)
}

func TestFileUploader_EmptyFile(t *testing.T) {
	req := require.New(t)
	path := writeFile(t, t.TempDir(), "empty.bin", nil)
	sender := &recordingSender{}
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 64)

	result, err := uploader.Upload(context.Background(), sender, path)
	req.NoError(err)

	// Then exactly one start and one end, no chunk
	req.Equal([]domain.MessageType{domain.FileInfo, domain.FileEnd}, sender.types())
	sum := sha256.Sum256(nil)
	req.Equal(hex.EncodeToString(sum[:]), result.Checksum)
	req.Zero(result.Chunks)
	req.Equal("unknown", result.MimeType)
}

func TestFileUploader_LastChunkIsPartial(t *testing.T) {
	req := require.New(t)
	path := writeFile(t, t.TempDir(), "odd.bin", make([]byte, 250))
	sender := &recordingSender{}
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 100)

	_, err := uploader.Upload(context.Background(), sender, path)
	req.NoError(err)

	req.Len(sender.messages, 5)
	req.Len(sender.messages[1].Payload, 100)
	req.Len(sender.messages[2].Payload, 100)
	req.Len(sender.messages[3].Payload, 50)
}

func TestFileUploader_ChecksumMatchesTransmittedBytes(t *testing.T) {
	dir := t.TempDir()
	rapid.Check(t, func(rt *rapid.T) {
		content := rapid.SliceOfN(rapid.Byte(), 0, 2048).Draw(rt, "content")
		chunkSize := rapid.IntRange(1, 512).Draw(rt, "chunkSize")
		path := writeFile(rt, dir, "prop.bin", content)
		sender := &recordingSender{}
		uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelError), chunkSize)

		result, err := uploader.Upload(context.Background(), sender, path)
		if err != nil {
			rt.Fatalf("upload: %v", err)
		}

		// Concatenate what travelled as chunks
		h := sha256.New()
		var transmitted []byte
		for _, m := range sender.messages {
			if m.Type == domain.FileChunk {
				if len(m.Payload) == 0 || len(m.Payload) > chunkSize {
					rt.Fatalf("chunk of %d bytes with chunk size %d", len(m.Payload), chunkSize)
				}
				h.Write(m.Payload)
				transmitted = append(transmitted, m.Payload...)
			}
		}
		if !bytes.Equal(content, transmitted) {
			rt.Fatalf("transmitted bytes differ from the file content")
		}

		var end domain.FileEndRequest
		last := sender.messages[len(sender.messages)-1]
		if last.Type != domain.FileEnd {
			rt.Fatalf("last message is %s", last.Type)
		}
		if err := json.Unmarshal(last.Payload, &end); err != nil {
			rt.Fatalf("decode end: %v", err)
		}
		if end.Checksum != hex.EncodeToString(h.Sum(nil)) || end.Checksum != result.Checksum {
			rt.Fatalf("checksum %s does not cover the transmitted chunks", end.Checksum)
		}
	})
}

func TestFileUploader_OpenFailures(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	tests := []struct {
		description string
		path        string
		want        errors.Code
	}{
		{"Missing file", filepath.Join(dir, "nope.txt"), errors.CodeNotFound},
		{"Directory", dir, errors.CodeNotFile},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			sender := &recordingSender{}
			_, err := uploader.Upload(context.Background(), sender, tt.path)

			var uploadErr *UploadError
			req.ErrorAs(err, &uploadErr)
			req.Equal(PhaseOpen, uploadErr.Phase)
			req.Equal(tt.want, errors.CodeOf(err))
			// And nothing reached the wire
			req.Empty(sender.messages)
		})
	}
}

func TestFileUploader_PermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}
	req := require.New(t)
	path := writeFile(t, t.TempDir(), "secret.txt", []byte("secret"))
	req.NoError(os.Chmod(path, 0o000))
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	_, err := uploader.Upload(context.Background(), &recordingSender{}, path)

	req.Equal(errors.CodePermissionRequired, errors.CodeOf(err))
}

func TestFileUploader_TransportFailureStopsTheTransfer(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockMessageSender(ctrl)
	path := writeFile(t, t.TempDir(), "data.bin", make([]byte, 30))
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	// Given the connection drops on the second chunk
	gomock.InOrder(
		sender.EXPECT().Send(domain.FileInfo, gomock.Any()).Return(nil),
		sender.EXPECT().Send(domain.FileChunk, gomock.Any()).Return(nil),
		sender.EXPECT().Send(domain.FileChunk, gomock.Any()).Return(fmt.Errorf("broken pipe")),
	)

	// When uploading
	_, err := uploader.Upload(context.Background(), sender, path)

	// Then the failure is a connection failure reported during the chunk phase
	var uploadErr *UploadError
	req.ErrorAs(err, &uploadErr)
	req.Equal(PhaseChunk, uploadErr.Phase)
	req.Equal(errors.CodeConnectionFailed, errors.CodeOf(err))
}

func TestFileUploader_StartFailure(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	sender := mocks.NewMockMessageSender(ctrl)
	path := writeFile(t, t.TempDir(), "data.bin", []byte("abc"))
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 10)

	sender.EXPECT().Send(domain.FileInfo, gomock.Any()).Return(errors.ErrConnectionClosed).Times(1)

	_, err := uploader.Upload(context.Background(), sender, path)

	var uploadErr *UploadError
	req.ErrorAs(err, &uploadErr)
	req.Equal(PhaseStart, uploadErr.Phase)
	req.ErrorIs(err, errors.ErrConnectionClosed)
}

func TestFileUploader_CanceledContext(t *testing.T) {
	req := require.New(t)
	path := writeFile(t, t.TempDir(), "data.bin", make([]byte, 100))
	sender := &recordingSender{}
	uploader := NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := uploader.Upload(ctx, sender, path)

	req.ErrorIs(err, context.Canceled)
	// Only the start made it out, the end is never announced
	req.Equal([]domain.MessageType{domain.FileInfo}, sender.types())
}

func TestNewFileUploader_DefaultChunkSize(t *testing.T) {
	req := require.New(t)
	req.Equal(DefaultChunkSize, NewFileUploader(logs.GetLoggerFromLevel(slog.LevelDebug), 0).ChunkSize())
}
