package domain

import (
	"time"

	"github.com/google/uuid"
)

// Client is a person who books appointments. The phone number is the de-facto
// lookup key during booking: an existing client is matched by phone, anyone
// else gets a fresh record. Uniqueness is not enforced at the type level.
type Client struct {
	ID        uuid.UUID
	Name      string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatSender identifies which side of a conversation wrote a message.
type ChatSender string

const (
	SenderClient       ChatSender = "client"
	SenderProfessional ChatSender = "professional"
)

// Valid reports whether the sender is one of the known values.
func (s ChatSender) Valid() bool {
	return s == SenderClient || s == SenderProfessional
}

// ChatMessage is one entry in a client's conversation history. Append-only.
type ChatMessage struct {
	ID        uuid.UUID
	ClientID  uuid.UUID
	Sender    ChatSender
	Text      string
	Timestamp time.Time
}

// FileType classifies an uploaded client file.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
)

// Valid reports whether the file type is one of the known values.
func (t FileType) Valid() bool {
	return t == FileTypeImage || t == FileTypeDocument
}

// ClientFile is a file attached to a client's record. The URL is an opaque
// reference; no durable upload is performed by this service. Append-only.
type ClientFile struct {
	ID         uuid.UUID
	ClientID   uuid.UUID
	Name       string
	URL        string
	Type       FileType
	UploadedAt string // display-formatted date string, stored as entered
}
