package storage

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/moodyssey/internal/common"
)

// Layout resolves account and record documents to backend keys.
type Layout struct {
	AccountsKey   string
	RecordsPrefix string
	RecordsSuffix string
}

// DefaultLayout matches the file names of the original journal data:
// users.json and mood_entries_<username>.json.
func DefaultLayout() Layout {
	return Layout{
		AccountsKey:   "users.json",
		RecordsPrefix: "mood_entries_",
		RecordsSuffix: ".json",
	}
}

// Accounts returns the key of the account table.
func (l Layout) Accounts() string {
	return l.AccountsKey
}

// MaxKeyLength is the longest key Records returns. It matches the usual
// 255-byte file name limit.
const MaxKeyLength = 255

// hashedMarker starts the name part of a hashed key. escapeSegment only
// emits '%' followed by two hex digits, so no escaped name starts with it.
const hashedMarker = "%sha256-"

// Records returns the key of userID's mood records.
//
// Usernames are arbitrary text, so userID is escaped as a single path
// segment: separators, '%', control characters, characters reserved on
// common filesystems and invalid UTF-8 become %XX, while printable Unicode
// is kept as is. The mapping is injective and never yields a key outside the
// data root. When the escaped key would exceed MaxKeyLength, the name part
// is replaced by the SHA-256 of userID.
func (l Layout) Records(userID string) (string, error) {
	if userID == "" {
		return "", common.ErrInvalidUsername
	}
	key := l.RecordsPrefix + escapeSegment(userID) + l.RecordsSuffix
	if len(key) <= MaxKeyLength {
		return key, nil
	}
	sum := sha256.Sum256([]byte(userID))
	return l.RecordsPrefix + hashedMarker + hex.EncodeToString(sum[:]) + l.RecordsSuffix, nil
}

// unreserved ASCII punctuation kept verbatim.
const keepPunct = "-_.~@+=,!'()$&;[]{}^`"

func escapeSegment(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		switch {
		case r == utf8.RuneError && size <= 1:
			fmt.Fprintf(&b, "%%%02X", s[i])
		case r < utf8.RuneSelf:
			c := byte(r)
			if 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' || '0' <= c && c <= '9' || strings.IndexByte(keepPunct, c) >= 0 {
				b.WriteByte(c)
			} else {
				fmt.Fprintf(&b, "%%%02X", c)
			}
		case unicode.IsGraphic(r) && !unicode.IsSpace(r):
			b.WriteString(s[i : i+size])
		default:
			for j := i; j < i+size; j++ {
				fmt.Fprintf(&b, "%%%02X", s[j])
			}
		}
		i += size
	}
	return b.String()
}
