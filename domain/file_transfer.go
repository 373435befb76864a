package domain

// UploadedFile describes a completed three-phase upload.
type UploadedFile struct {
	Path     string
	Filename string
	Size     int64
	Chunks   int
	Checksum string
	MimeType string
}
