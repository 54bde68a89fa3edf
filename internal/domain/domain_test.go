package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDateKey(t *testing.T) {
	assert.NoError(t, ValidateDateKey("2025-12-31"))
	assert.NoError(t, ValidateDateKey("2026-01-01"))

	for _, bad := range []string{"31/12/2025", "2025-13-01", "2025-12-32", "2025-1-1", "", "amanhã"} {
		assert.Error(t, ValidateDateKey(bad), "expected %q to be rejected", bad)
	}
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "31/12/2025", FormatDisplayDate("2025-12-31"))
	assert.Equal(t, "01/01/2026", FormatDisplayDate("2026-01-01"))

	// Malformed keys pass through untouched.
	assert.Equal(t, "not-a-date", FormatDisplayDate("not-a-date"))
}

func TestAvailabilityMapIsBookable(t *testing.T) {
	m := AvailabilityMap{
		"2025-12-01": {"09:00", "10:00"},
		"2025-12-02": {},
	}

	assert.True(t, m.IsBookable("2025-12-01"))
	// A saved-empty date and an absent date are the same to clients.
	assert.False(t, m.IsBookable("2025-12-02"))
	assert.False(t, m.IsBookable("2025-12-03"))
}

func TestAvailabilityMapHasTime(t *testing.T) {
	m := AvailabilityMap{"2025-12-01": {"09:00", "10:00"}}

	assert.True(t, m.HasTime("2025-12-01", "09:00"))
	assert.False(t, m.HasTime("2025-12-01", "11:00"))
	assert.False(t, m.HasTime("2025-12-02", "09:00"))
}

func TestWhatsappConfigIsComplete(t *testing.T) {
	assert.False(t, WhatsappConfig{}.IsComplete())
	assert.False(t, WhatsappConfig{URL: "https://api.example.com", Token: "t"}.IsComplete())
	assert.True(t, WhatsappConfig{URL: "https://api.example.com", Token: "t", Instance: "x"}.IsComplete())
}

func TestWebhookConfigValidate(t *testing.T) {
	assert.NoError(t, WebhookConfig{Format: FormatStandardJSON}.Validate())
	assert.NoError(t, WebhookConfig{Format: FormatEvolutionAPIText}.Validate())
	assert.ErrorIs(t, WebhookConfig{Format: "XML"}.Validate(), ErrInvalidWebhookFormat)
	assert.ErrorIs(t, WebhookConfig{}.Validate(), ErrInvalidWebhookFormat)
}

func TestChatSenderAndFileTypeValid(t *testing.T) {
	assert.True(t, SenderClient.Valid())
	assert.True(t, SenderProfessional.Valid())
	assert.False(t, ChatSender("robot").Valid())

	assert.True(t, FileTypeImage.Valid())
	assert.True(t, FileTypeDocument.Valid())
	assert.False(t, FileType("video").Valid())
}

func TestDefaultAvatarURLIsDeterministic(t *testing.T) {
	assert.Equal(t, DefaultAvatarURL("Carlos"), DefaultAvatarURL("Carlos"))
	assert.NotEqual(t, DefaultAvatarURL("Carlos"), DefaultAvatarURL("Ana"))
}
