package lexical

import (
	"bytes"
	"encoding/base64"
	"encoding/hex"
	"net/url"
	"strings"
)

func ParseHexBinary(text string) ([]byte, error) {
	if len(text)%2 != 0 {
		return nil, parseError("hexBinary", text)
	}
	v, err := hex.DecodeString(text)
	if err != nil {
		return nil, parseError("hexBinary", text)
	}
	return v, nil
}

// FormatHexBinary uses the canonical upper-case digits.
func FormatHexBinary(v []byte) string {
	return strings.ToUpper(hex.EncodeToString(v))
}

func CloneHexBinary(v []byte) []byte { return bytes.Clone(v) }

func ParseBase64Binary(text string) ([]byte, error) {
	// Whitespace is allowed between the characters of the form.
	text = strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' || r == '\r' || r == '\n' {
			return -1
		}
		return r
	}, text)
	v, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, parseError("base64Binary", text)
	}
	return v, nil
}

func FormatBase64Binary(v []byte) string {
	return base64.StdEncoding.EncodeToString(v)
}

func CloneBase64Binary(v []byte) []byte { return bytes.Clone(v) }

func ParseAnyURI(text string) (string, error) {
	if _, err := url.Parse(text); err != nil {
		return "", parseError("anyURI", text)
	}
	return text, nil
}

func FormatAnyURI(v string) string { return v }

func CloneAnyURI(v string) string { return strings.Clone(v) }

// QName holds an optionally prefixed XML qualified name.
type QName struct {
	Prefix string
	Local  string
}

func ParseQName(text string) (QName, error) {
	prefix, local, ok := strings.Cut(text, ":")
	if !ok {
		if _, err := ParseNCName(text); err != nil {
			return QName{}, parseError("QName", text)
		}
		return QName{Local: text}, nil
	}
	if _, err := ParseNCName(prefix); err != nil {
		return QName{}, parseError("QName", text)
	}
	if _, err := ParseNCName(local); err != nil {
		return QName{}, parseError("QName", text)
	}
	return QName{Prefix: prefix, Local: local}, nil
}

func FormatQName(v QName) string {
	if v.Prefix == "" {
		return v.Local
	}
	return v.Prefix + ":" + v.Local
}

func CloneQName(v QName) QName {
	return QName{Prefix: strings.Clone(v.Prefix), Local: strings.Clone(v.Local)}
}

func ParseNotation(text string) (QName, error) {
	v, err := ParseQName(text)
	if err != nil {
		return QName{}, parseError("NOTATION", text)
	}
	return v, nil
}

func FormatNotation(v QName) string { return FormatQName(v) }

func CloneNotation(v QName) QName { return CloneQName(v) }
