package webhook

// Logger defines the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Message carries everything a delivery needs regardless of the configured
// body format. Payload is sent verbatim for STANDARD_JSON; Phone and Text
// feed the EVOLUTION_API_TEXT body.
type Message struct {
	Payload interface{}
	Phone   string
	Text    string
}

type evolutionTextBody struct {
	Number      string           `json:"number"`
	Options     evolutionOptions `json:"options"`
	TextMessage evolutionText    `json:"textMessage"`
}

type evolutionOptions struct {
	Delay       int    `json:"delay"`
	Presence    string `json:"presence"`
	LinkPreview bool   `json:"linkPreview"`
}

type evolutionText struct {
	Text string `json:"text"`
}
