package dto

import (
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// ToEmail normalizes an email address for comparison and storage.
func ToEmail(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

var (
	illegalFilenameRe  = regexp.MustCompile(`[/?<>\\:*|"]`)
	controlCharRe      = regexp.MustCompile(`[\x00-\x1f\x{80}-\x{9f}]`)
	reservedNameRe     = regexp.MustCompile(`^\.+$`)
	windowsReservedRe  = regexp.MustCompile(`(?i)^(con|prn|aux|nul|com[0-9]|lpt[0-9])(\..*)?$`)
	windowsTrailingRe  = regexp.MustCompile(`[. ]+$`)
	maxSanitizedLength = 255
)

// ToSanitized turns raw into a value usable as a single path segment. The
// result may be empty.
func ToSanitized(raw string) string {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ".", "")
	s = illegalFilenameRe.ReplaceAllString(s, "")
	s = controlCharRe.ReplaceAllString(s, "")
	s = reservedNameRe.ReplaceAllString(s, "")
	s = windowsReservedRe.ReplaceAllString(s, "")
	s = windowsTrailingRe.ReplaceAllString(s, "")

	if len(s) > maxSanitizedLength {
		s = truncateUTF8(s, maxSanitizedLength)
	}
	return s
}

func truncateUTF8(s string, n int) string {
	for n > 0 && n < len(s) && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

// ToBoolean accepts a boolean or one of its common string and numeric forms.
func ToBoolean(v any) (bool, error) {
	if s, ok := v.(string); ok {
		v = strings.ToLower(strings.TrimSpace(s))
	}
	return cast.ToBoolE(v)
}
