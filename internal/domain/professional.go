package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Professional is a bookable member of staff.
type Professional struct {
	ID        uuid.UUID
	Name      string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultAvatarURL returns a deterministic placeholder avatar seeded by the
// professional's name, used when no avatar was provided on creation.
func DefaultAvatarURL(name string) string {
	return fmt.Sprintf("https://picsum.photos/seed/%s/100/100", name)
}
