package auth

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"strings"
)

// GravatarURL derives a deterministic avatar URL from an email address.
// Size 200, rating pg, "mystery man" default image.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	sum := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%s?d=mm&r=pg&s=200", hex.EncodeToString(sum[:]))
}
