package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NormalizeStationUUID parses a directory station identifier and returns it in
// canonical lowercase form. ok is false when raw is not a UUID.
func NormalizeStationUUID(raw string) (string, bool) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return "", false
	}

	return id.String(), true
}
