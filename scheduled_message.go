package gods

import (
	"time"

	"github.com/google/uuid"
)

// ScheduledMessage is a message to schedule with the Dispatchers ingest channel
// `ID` is a correlation id for the message, assigned on ingress when left unset
// `At` is when the message will be dispatched
// `Message` is the content of the message
type ScheduledMessage[T any] struct {
	ID      uuid.UUID
	At      time.Time
	Message T

	// seq records ingress order and breaks dispatch-time ties when the
	// dispatcher guarantees ordering
	seq uint64
}
