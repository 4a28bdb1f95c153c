package purchasing

import (
	"encoding/base64"
	"fmt"

	"github.com/gabriel-vasile/mimetype"
)

// PDFMediaType is the only accepted attachment type.
const PDFMediaType = "application/pdf"

// DefaultAttachmentLimit is the maximum attachment size, 10 MB.
const DefaultAttachmentLimit int64 = 10 * 1024 * 1024

// Attachment is a PDF stored inline on a bill as a base64 data URI.
type Attachment struct {
	FileName string `json:"fileName"`
	MIMEType string `json:"mimeType"`
	Size     int64  `json:"size"`
	DataURI  string `json:"dataUri"`
}

// AttachmentReason classifies a rejected attachment.
type AttachmentReason string

const (
	AttachmentEmpty     AttachmentReason = "empty"
	AttachmentWrongType AttachmentReason = "wrong_type"
	AttachmentTooLarge  AttachmentReason = "too_large"
)

// AttachmentError reports why a file was not accepted.
type AttachmentError struct {
	FileName string
	Reason   AttachmentReason
	Detail   string
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrAttachment, e.FileName, e.Detail)
}

func (e *AttachmentError) Unwrap() error {
	return ErrAttachment
}

// ReadAttachment checks type then size and encodes data as a data URI.
// A limit <= 0 means DefaultAttachmentLimit.
func ReadAttachment(name string, data []byte, limit int64) (Attachment, error) {
	if limit <= 0 {
		limit = DefaultAttachmentLimit
	}
	if len(data) == 0 {
		return Attachment{}, &AttachmentError{FileName: name, Reason: AttachmentEmpty, Detail: "file is empty"}
	}
	detected := mimetype.Detect(data)
	if !detected.Is(PDFMediaType) {
		return Attachment{}, &AttachmentError{
			FileName: name,
			Reason:   AttachmentWrongType,
			Detail:   fmt.Sprintf("expected %s, got %s", PDFMediaType, detected.String()),
		}
	}
	size := int64(len(data))
	if size > limit {
		return Attachment{}, &AttachmentError{
			FileName: name,
			Reason:   AttachmentTooLarge,
			Detail:   fmt.Sprintf("%d bytes exceeds the %d byte limit", size, limit),
		}
	}
	return Attachment{
		FileName: name,
		MIMEType: PDFMediaType,
		Size:     size,
		DataURI:  "data:" + PDFMediaType + ";base64," + base64.StdEncoding.EncodeToString(data),
	}, nil
}
