package util

import (
	"errors"
	"strings"
)

// SanitizeKey rejects traversal patterns and normalizes separators in an object key.
func SanitizeKey(key string) (string, error) {
	if strings.Contains(key, "..") {
		return "", errors.New("invalid object key")
	}
	s := strings.TrimSpace(key)
	s = strings.ReplaceAll(s, "\\", "/")
	s = strings.Trim(s, "/")
	if s == "" {
		return "", errors.New("invalid object key")
	}
	return s, nil
}
