package services

import (
	"chat-client/contract"
	"chat-client/domain"
	"chat-client/domain/mimetypes"
	"chat-client/errors"
	"context"
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

const DefaultChunkSize = 4096

type UploadPhase string

const (
	PhaseOpen  UploadPhase = "open"
	PhaseStart UploadPhase = "start"
	PhaseChunk UploadPhase = "chunk"
	PhaseEnd   UploadPhase = "end"
)

// UploadError is returned synchronously by FileUploader.Upload.
// Err wraps one of the sentinels of the errors package, so errors.CodeOf classifies it.
type UploadError struct {
	Phase    UploadPhase
	Filename string
	Err      error
}

func (e *UploadError) Error() string {
	return fmt.Sprintf("upload %s failed during %s: %v", e.Filename, e.Phase, e.Err)
}

func (e *UploadError) Unwrap() error {
	return e.Err
}

// FileUploader implements the three-phase upload: FILE_INFO, FILE_CHUNK*, FILE_END.
// There is no acknowledgement and no sequence number; chunk order on the wire is
// the file byte order, so the sender must deliver messages in call order.
type FileUploader struct {
	log       *slog.Logger
	chunkSize int
}

func NewFileUploader(log *slog.Logger, chunkSize int) *FileUploader {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	return &FileUploader{log: log, chunkSize: chunkSize}
}

func (u *FileUploader) ChunkSize() int {
	return u.chunkSize
}

// Upload streams the file at path through sender while hashing it with SHA-256.
// The checksum announced in FILE_END covers exactly the bytes sent as chunks.
func (u *FileUploader) Upload(ctx context.Context, sender contract.MessageSender, path string) (domain.UploadedFile, error) {
	filename := filepath.Base(path)

	f, info, err := openRegular(path)
	if err != nil {
		return domain.UploadedFile{}, &UploadError{Phase: PhaseOpen, Filename: filename, Err: err}
	}
	defer f.Close()

	if err := u.send(sender, domain.FileInfo, domain.FileStartRequest{Filename: filename, Filesize: info.Size()}); err != nil {
		return domain.UploadedFile{}, &UploadError{Phase: PhaseStart, Filename: filename, Err: err}
	}
	u.log.Debug("File transfer started", "filename", filename, "filesize", info.Size(), "chunk_size", u.chunkSize)

	result := domain.UploadedFile{Path: path, Filename: filename, MimeType: string(mimetypes.Unknown)}
	h := sha256.New()
	for {
		if err := ctx.Err(); err != nil {
			return domain.UploadedFile{}, &UploadError{Phase: PhaseChunk, Filename: filename, Err: err}
		}

		// A fresh buffer per chunk: the sender may still hold the previous one.
		chunk := make([]byte, u.chunkSize)
		n, readErr := io.ReadFull(f, chunk)
		if n > 0 {
			chunk = chunk[:n]
			if result.Chunks == 0 {
				result.MimeType = string(mimetypes.Essence(mimetype.Detect(chunk).String()))
			}
			h.Write(chunk)
			if err := sender.Send(domain.FileChunk, chunk); err != nil {
				return domain.UploadedFile{}, &UploadError{Phase: PhaseChunk, Filename: filename, Err: transportFailure(err)}
			}
			result.Chunks++
			result.Size += int64(n)
		}
		if readErr == io.EOF || readErr == io.ErrUnexpectedEOF {
			break
		}
		if readErr != nil {
			return domain.UploadedFile{}, &UploadError{Phase: PhaseChunk, Filename: filename, Err: readFailure(readErr)}
		}
	}

	result.Checksum = hex.EncodeToString(h.Sum(nil))
	if err := u.send(sender, domain.FileEnd, domain.FileEndRequest{Filename: filename, Checksum: result.Checksum}); err != nil {
		return domain.UploadedFile{}, &UploadError{Phase: PhaseEnd, Filename: filename, Err: err}
	}
	u.log.Info("File transfer completed",
		"filename", filename, "bytes", result.Size, "chunks", result.Chunks,
		"checksum", result.Checksum, "mime_type", result.MimeType)
	return result, nil
}

func (u *FileUploader) send(sender contract.MessageSender, msgType domain.MessageType, msg any) error {
	payload, err := domain.Encode(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msgType, err)
	}
	if err := sender.Send(msgType, payload); err != nil {
		return transportFailure(err)
	}
	return nil
}

// openRegular opens path for reading, classifying why it cannot be uploaded.
func openRegular(path string) (*os.File, fs.FileInfo, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, readFailure(err)
	}
	if !info.Mode().IsRegular() {
		return nil, nil, fmt.Errorf("%w: %s", errors.ErrNotFile, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, readFailure(err)
	}
	return f, info, nil
}

func readFailure(err error) error {
	switch {
	case stderrors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", errors.ErrNotFound, err)
	case stderrors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", errors.ErrPermissionRequired, err)
	default:
		return fmt.Errorf("%w: %w", errors.ErrFileRead, err)
	}
}

func transportFailure(err error) error {
	if stderrors.Is(err, errors.ErrConnectionFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", errors.ErrConnectionFailed, err)
}
