package store

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// generateID produces an opaque unique id: millisecond timestamp in base36
// followed by a random suffix. Not cryptographic; collisions are accepted
// as negligible at this scale.
func generateID() string {
	return strconv.FormatInt(time.Now().UnixMilli(), 36) + randomSuffix(9)
}

// generateInviteCode derives a shareable code from the team name plus a
// random upper-case suffix, e.g. "CODEN-X4T9".
func generateInviteCode(teamName string) string {
	prefix := strings.ToUpper(strings.ReplaceAll(teamName, " ", ""))
	if len(prefix) > 5 {
		prefix = prefix[:5]
	}
	return prefix + "-" + strings.ToUpper(randomSuffix(4))
}

func randomSuffix(n int) string {
	s := strings.ReplaceAll(uuid.NewString(), "-", "")
	if n > len(s) {
		n = len(s)
	}
	return s[:n]
}
