package mailer

import (
	"encoding/base64"
	"strings"
	"testing"

	"biovibe-backend/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendWithoutCredentialsIsConfigurationFault(t *testing.T) {
	m := New(&config.Config{SMTPHost: "smtp.gmail.com", SMTPPort: "587"})

	err := m.Send(Message{To: "x@example.com", Subject: "hi", HTML: "<p>hi</p>"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "EMAIL_USER/EMAIL_PASS")
}

func TestFromCarriesDisplayNameAndAccount(t *testing.T) {
	m := New(&config.Config{EmailUser: "orders@biovibepeptides.com"})
	assert.Equal(t, `"BioVibe Peptides" <orders@biovibepeptides.com>`, m.From())
}

func TestBuildRawSimpleHTML(t *testing.T) {
	raw := string(BuildRaw(Message{
		From:    `"BioVibe Peptides" <orders@biovibepeptides.com>`,
		To:      "jane@example.com",
		Subject: "Order Invoice #ABCD1234 - BioVibe Peptides",
		HTML:    "<p>Thank you</p>",
	}))

	assert.Contains(t, raw, "From: \"BioVibe Peptides\" <orders@biovibepeptides.com>\r\n")
	assert.Contains(t, raw, "To: jane@example.com\r\n")
	assert.Contains(t, raw, "MIME-Version: 1.0\r\n")
	assert.Contains(t, raw, "Content-Type: text/html; charset=\"UTF-8\"\r\n")
	assert.True(t, strings.HasSuffix(raw, "<p>Thank you</p>"))
	assert.NotContains(t, raw, "multipart/mixed")
}

func TestBuildRawWithAttachment(t *testing.T) {
	pdf := []byte("%PDF-1.4 pretend this is a real invoice")
	raw := string(BuildRaw(Message{
		From:    "a@example.com",
		To:      "b@example.com",
		Subject: "Invoice",
		HTML:    "<p>attached</p>",
		Attachments: []Attachment{{
			Filename:    "BioVibe_Invoice_ABCD1234.pdf",
			Content:     pdf,
			ContentType: "application/pdf",
		}},
	}))

	assert.Contains(t, raw, "Content-Type: multipart/mixed;")
	assert.Contains(t, raw, "Content-Type: application/pdf; name=\"BioVibe_Invoice_ABCD1234.pdf\"")
	assert.Contains(t, raw, "Content-Disposition: attachment; filename=\"BioVibe_Invoice_ABCD1234.pdf\"")
	assert.Contains(t, raw, "Content-Transfer-Encoding: base64")
	assert.Contains(t, raw, base64.StdEncoding.EncodeToString(pdf))
	assert.Contains(t, raw, "--biovibe-mail-boundary--")
}

func TestBuildRawWrapsBase64Lines(t *testing.T) {
	big := make([]byte, 600)
	for i := range big {
		big[i] = byte(i % 251)
	}
	raw := string(BuildRaw(Message{
		From: "a@example.com", To: "b@example.com", Subject: "big",
		HTML:        "<p>big</p>",
		Attachments: []Attachment{{Filename: "big.bin", Content: big}},
	}))

	inBody := false
	for _, line := range strings.Split(raw, "\r\n") {
		if strings.HasPrefix(line, "Content-Transfer-Encoding") {
			inBody = true
			continue
		}
		if inBody && strings.HasPrefix(line, "--") {
			break
		}
		if inBody {
			assert.LessOrEqual(t, len(line), 76)
		}
	}

	// Unnamed attachments fall back to octet-stream.
	assert.Contains(t, raw, "Content-Type: application/octet-stream; name=\"big.bin\"")
}
