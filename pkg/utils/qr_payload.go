package utils

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// qrEnvelope matches both the canonical admin QR payload {"s": "<uuid>"} and
// the legacy {"station_id": "<uuid>"} form.
type qrEnvelope struct {
	S         string `json:"s"`
	StationID string `json:"station_id"`
}

// ExtractStationID resolves a decoded QR payload into a station UUID. The
// payload is either the bare UUID string or a JSON envelope carrying it. A
// payload that does not resolve to a UUID is rejected here, before any
// database work.
func ExtractStationID(payload string) (uuid.UUID, error) {
	raw := strings.TrimSpace(payload)
	if raw == "" {
		return uuid.Nil, NewValidationError("Empty QR code")
	}

	candidate := raw
	var env qrEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err == nil {
		if env.S != "" {
			candidate = env.S
		} else if env.StationID != "" {
			candidate = env.StationID
		}
	}

	id, err := uuid.Parse(strings.TrimSpace(candidate))
	if err != nil {
		short := candidate
		if len(short) > 10 {
			short = short[:10] + "..."
		}
		return uuid.Nil, NewValidationError(fmt.Sprintf("Invalid QR format. Expected station UUID, got: %s", short))
	}
	return id, nil
}

// StationQRPayload is the canonical JSON envelope encoded into station QR
// codes by the admin console.
func StationQRPayload(stationID uuid.UUID) string {
	return fmt.Sprintf(`{"s":"%s"}`, stationID)
}
