package domain

import (
	"encoding/binary"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID returns a list-entity id: the base-36 unix-millis timestamp followed
// by a base-36 random suffix. Uniqueness is best-effort.
func NewID(now time.Time) string {
	u := uuid.New()
	suffix := binary.BigEndian.Uint64(u[:8])
	return strconv.FormatInt(now.UnixMilli(), 36) + strconv.FormatUint(suffix, 36)
}

// NewProfileID returns the id assigned to a freshly created profile.
func NewProfileID(now time.Time) string {
	return "user-" + strconv.FormatInt(now.UnixMilli(), 10)
}
