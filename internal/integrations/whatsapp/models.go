package whatsapp

// Logger defines the logging interface the client depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// sendTextRequest is the Evolution API payload for POST /message/sendText/{instance}.
type sendTextRequest struct {
	Number      string      `json:"number"`
	Options     sendOptions `json:"options"`
	TextMessage textMessage `json:"textMessage"`
}

type sendOptions struct {
	Delay       int    `json:"delay"`
	Presence    string `json:"presence"`
	LinkPreview bool   `json:"linkPreview"`
}

type textMessage struct {
	Text string `json:"text"`
}
