package bootstrap

import (
	"errors"
	"fmt"
	"strings"
)

// warningMessage renders err as "<type>:<message>", where message is the
// first non-blank message along the unwrap chain starting at err itself.
func warningMessage(err error) string {
	return fmt.Sprintf("%T:%s", err, firstNonBlankMessage(err))
}

func firstNonBlankMessage(err error) string {
	for e := err; e != nil; e = errors.Unwrap(e) {
		if msg := strings.TrimSpace(e.Error()); msg != "" {
			return msg
		}
	}
	return ""
}
