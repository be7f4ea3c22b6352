package lexical

import "testing"

func TestParseNormalizedString(t *testing.T) {
	if v, err := ParseNormalizedString("a  b"); err != nil || v != "a  b" {
		t.Errorf("ParseNormalizedString = %q, %v", v, err)
	}
	for _, text := range []string{"a\tb", "a\nb", "a\rb"} {
		if _, err := ParseNormalizedString(text); err == nil {
			t.Errorf("ParseNormalizedString(%q) accepted invalid input", text)
		}
	}
}

func TestParseToken(t *testing.T) {
	if v, err := ParseToken("a b c"); err != nil || v != "a b c" {
		t.Errorf("ParseToken = %q, %v", v, err)
	}
	for _, text := range []string{" a", "a ", "a  b", "a\tb"} {
		if _, err := ParseToken(text); err == nil {
			t.Errorf("ParseToken(%q) accepted invalid input", text)
		}
	}
}

func TestParseLanguage(t *testing.T) {
	for _, text := range []string{"en", "en-US", "x-klingon", "de-CH-1901"} {
		if _, err := ParseLanguage(text); err != nil {
			t.Errorf("ParseLanguage(%q) failed: %v", text, err)
		}
	}
	for _, text := range []string{"", "123", "en_US", "toolongtag9", "en-"} {
		if _, err := ParseLanguage(text); err == nil {
			t.Errorf("ParseLanguage(%q) accepted invalid input", text)
		}
	}
}

func TestParseNames(t *testing.T) {
	// Name permits colons, NCName and its derivations do not.
	if _, err := ParseName("xs:int"); err != nil {
		t.Errorf("ParseName(xs:int) failed: %v", err)
	}
	if _, err := ParseNCName("xs:int"); err == nil {
		t.Error("ParseNCName accepted a colon")
	}
	if _, err := ParseName("1abc"); err == nil {
		t.Error("ParseName accepted a leading digit")
	}
	// NMTOKEN has no start-character restriction.
	if _, err := ParseNMToken("1abc"); err != nil {
		t.Errorf("ParseNMToken(1abc) failed: %v", err)
	}
	if _, err := ParseNMToken(""); err == nil {
		t.Error("ParseNMToken accepted the empty string")
	}
	for _, parse := range []func(string) (string, error){ParseID, ParseIDRef, ParseEntity} {
		if _, err := parse("_ok-1.2"); err != nil {
			t.Errorf("parse(_ok-1.2) failed: %v", err)
		}
		if _, err := parse("no:colon"); err == nil {
			t.Error("parse accepted a colon")
		}
	}
}
