package lexical

import (
	"regexp"
	"strings"
	"unicode"
)

func ParseString(text string) (string, error) { return text, nil }

func FormatString(v string) string { return v }

func CloneString(v string) string { return strings.Clone(v) }

// ParseNormalizedString rejects forms containing tab, carriage return
// or line feed.
func ParseNormalizedString(text string) (string, error) {
	if strings.ContainsAny(text, "\t\r\n") {
		return "", parseError("normalizedString", text)
	}
	return text, nil
}

func FormatNormalizedString(v string) string { return v }

func CloneNormalizedString(v string) string { return strings.Clone(v) }

// ParseToken additionally rejects leading, trailing and consecutive
// spaces.
func ParseToken(text string) (string, error) {
	if strings.ContainsAny(text, "\t\r\n") ||
		strings.HasPrefix(text, " ") ||
		strings.HasSuffix(text, " ") ||
		strings.Contains(text, "  ") {
		return "", parseError("token", text)
	}
	return text, nil
}

func FormatToken(v string) string { return v }

func CloneToken(v string) string { return strings.Clone(v) }

var languageRe = regexp.MustCompile(`^[a-zA-Z]{1,8}(-[a-zA-Z0-9]{1,8})*$`)

func ParseLanguage(text string) (string, error) {
	if !languageRe.MatchString(text) {
		return "", parseError("language", text)
	}
	return text, nil
}

func FormatLanguage(v string) string { return v }

func CloneLanguage(v string) string { return strings.Clone(v) }

func isNameStartChar(r rune) bool {
	return unicode.IsLetter(r) || r == '_' || r == ':'
}

func isNameChar(r rune) bool {
	return isNameStartChar(r) || unicode.IsDigit(r) || r == '.' || r == '-'
}

func validName(text string, colonOK bool) bool {
	if text == "" {
		return false
	}
	for i, r := range text {
		if !colonOK && r == ':' {
			return false
		}
		if i == 0 {
			if !isNameStartChar(r) {
				return false
			}
			continue
		}
		if !isNameChar(r) {
			return false
		}
	}
	return true
}

func ParseNMToken(text string) (string, error) {
	if text == "" {
		return "", parseError("NMTOKEN", text)
	}
	for _, r := range text {
		if !isNameChar(r) {
			return "", parseError("NMTOKEN", text)
		}
	}
	return text, nil
}

func FormatNMToken(v string) string { return v }

func CloneNMToken(v string) string { return strings.Clone(v) }

func ParseName(text string) (string, error) {
	if !validName(text, true) {
		return "", parseError("Name", text)
	}
	return text, nil
}

func FormatName(v string) string { return v }

func CloneName(v string) string { return strings.Clone(v) }

func ParseNCName(text string) (string, error) {
	if !validName(text, false) {
		return "", parseError("NCName", text)
	}
	return text, nil
}

func FormatNCName(v string) string { return v }

func CloneNCName(v string) string { return strings.Clone(v) }

func ParseID(text string) (string, error) {
	if !validName(text, false) {
		return "", parseError("ID", text)
	}
	return text, nil
}

func FormatID(v string) string { return v }

func CloneID(v string) string { return strings.Clone(v) }

func ParseIDRef(text string) (string, error) {
	if !validName(text, false) {
		return "", parseError("IDREF", text)
	}
	return text, nil
}

func FormatIDRef(v string) string { return v }

func CloneIDRef(v string) string { return strings.Clone(v) }

func ParseEntity(text string) (string, error) {
	if !validName(text, false) {
		return "", parseError("ENTITY", text)
	}
	return text, nil
}

func FormatEntity(v string) string { return v }

func CloneEntity(v string) string { return strings.Clone(v) }
