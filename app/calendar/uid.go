package calendar

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const uidHexLength = 32

// SynthesizeUID derives a stable identifier for an event that carries no
// explicit one. The digest is computed over the raw field values, so
// identical source bytes always reproduce the same UID and any field edit
// produces a new one.
func SynthesizeUID(title, startDate, endDate, startTime, endTime, location, feedName, domain string) string {
	base := strings.Join([]string{
		title,
		startDate,
		endDate,
		startTime,
		endTime,
		location,
		feedName,
	}, "|")

	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])[:uidHexLength] + "@" + domain
}
