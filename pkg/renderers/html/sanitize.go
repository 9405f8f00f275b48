package html

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var plainPolicy = sync.OnceValue(bluemonday.StrictPolicy)

// SanitizePlain removes every HTML element from raw and escapes the
// remaining text. It is applied to theme tokens, never to form values.
func SanitizePlain(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}
	return plainPolicy().Sanitize(raw)
}
