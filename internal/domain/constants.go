package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD

	// DisplayDateFormat is the pt-BR date rendering used in outbound messages.
	DisplayDateFormat = "02/01/2006" // DD/MM/YYYY
)

// CountryCode is prefixed to national phone numbers (10-11 digits) before an
// outbound send.
const CountryCode = "55"

// Settings keys. Each key holds one fully-replaced configuration blob.
const (
	SettingsKeyWhatsapp  = "whatsapp_config"
	SettingsKeyTemplates = "message_templates"
	SettingsKeyWebhook   = "webhook_config"
)

// DefaultBusinessHours is the starting slot template offered to admins when a
// date has no saved availability yet. The client-facing calendar never falls
// back to it: an unsaved date offers nothing.
var DefaultBusinessHours = []string{
	"08:00", "09:00", "10:00", "11:00", "12:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}
