package purchasing

import (
	"encoding/base64"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadAttachment(t *testing.T) {
	data := pdfBytes(512)
	att, err := ReadAttachment("invoice.pdf", data, 0)
	require.NoError(t, err)
	require.Equal(t, "invoice.pdf", att.FileName)
	require.Equal(t, int64(512), att.Size)

	encoded, ok := strings.CutPrefix(att.DataURI, "data:application/pdf;base64,")
	require.True(t, ok)
	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	require.Equal(t, data, decoded)
}

func TestReadAttachmentRejections(t *testing.T) {
	cases := []struct {
		name   string
		data   []byte
		limit  int64
		reason AttachmentReason
	}{
		{name: "empty", data: nil, reason: AttachmentEmpty},
		{name: "png", data: []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), reason: AttachmentWrongType},
		{name: "over default limit", data: pdfBytes(12 * 1024 * 1024), reason: AttachmentTooLarge},
		{name: "over custom limit", data: pdfBytes(2048), limit: 1024, reason: AttachmentTooLarge},
		// type is checked before size
		{name: "large text", data: []byte(strings.Repeat("a", 2048)), limit: 1024, reason: AttachmentWrongType},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadAttachment("file", tc.data, tc.limit)
			require.ErrorIs(t, err, ErrAttachment)
			var aerr *AttachmentError
			require.ErrorAs(t, err, &aerr)
			require.Equal(t, tc.reason, aerr.Reason)
		})
	}
}
