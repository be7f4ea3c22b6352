package datatype

import (
	"github.com/timothee-haudebourg/xsd-types/hierarchy"
	"github.com/timothee-haudebourg/xsd-types/lexical"
)

// XSD compiles the built-in XSD datatype tree against the lexical
// package's primitives. The built-in schema is known-good, so
// compilation cannot fail.
func XSD() *Hierarchy {
	h, err := Compile(hierarchy.XSD(), XSDRegistry())
	if err != nil {
		panic(err)
	}
	return h
}

// XSDRegistry returns the primitive registry of the built-in XSD
// datatypes, one entry per node of hierarchy.XSD.
func XSDRegistry() Registry {
	reg := Registry{}
	add := func(local string, p Primitive) {
		reg[hierarchy.XSDNamespace+local] = p
	}
	add("boolean", prim(lexical.ParseBoolean, lexical.FormatBoolean, nil))
	add("float", prim(lexical.ParseFloat, lexical.FormatFloat, nil))
	add("double", prim(lexical.ParseDouble, lexical.FormatDouble, nil))
	add("decimal", prim(lexical.ParseDecimal, lexical.FormatDecimal, lexical.CloneDecimal))
	add("integer", prim(lexical.ParseInteger, lexical.FormatInteger, lexical.CloneInteger))
	add("nonPositiveInteger", prim(lexical.ParseNonPositiveInteger, lexical.FormatNonPositiveInteger, lexical.CloneNonPositiveInteger))
	add("negativeInteger", prim(lexical.ParseNegativeInteger, lexical.FormatNegativeInteger, lexical.CloneNegativeInteger))
	add("long", prim(lexical.ParseLong, lexical.FormatLong, nil))
	add("int", prim(lexical.ParseInt, lexical.FormatInt, nil))
	add("short", prim(lexical.ParseShort, lexical.FormatShort, nil))
	add("byte", prim(lexical.ParseByte, lexical.FormatByte, nil))
	add("nonNegativeInteger", prim(lexical.ParseNonNegativeInteger, lexical.FormatNonNegativeInteger, lexical.CloneNonNegativeInteger))
	add("unsignedLong", prim(lexical.ParseUnsignedLong, lexical.FormatUnsignedLong, nil))
	add("unsignedInt", prim(lexical.ParseUnsignedInt, lexical.FormatUnsignedInt, nil))
	add("unsignedShort", prim(lexical.ParseUnsignedShort, lexical.FormatUnsignedShort, nil))
	add("unsignedByte", prim(lexical.ParseUnsignedByte, lexical.FormatUnsignedByte, nil))
	add("positiveInteger", prim(lexical.ParsePositiveInteger, lexical.FormatPositiveInteger, lexical.ClonePositiveInteger))
	add("string", prim(lexical.ParseString, lexical.FormatString, lexical.CloneString))
	add("normalizedString", prim(lexical.ParseNormalizedString, lexical.FormatNormalizedString, lexical.CloneNormalizedString))
	add("token", prim(lexical.ParseToken, lexical.FormatToken, lexical.CloneToken))
	add("language", prim(lexical.ParseLanguage, lexical.FormatLanguage, lexical.CloneLanguage))
	add("NMTOKEN", prim(lexical.ParseNMToken, lexical.FormatNMToken, lexical.CloneNMToken))
	add("Name", prim(lexical.ParseName, lexical.FormatName, lexical.CloneName))
	add("NCName", prim(lexical.ParseNCName, lexical.FormatNCName, lexical.CloneNCName))
	add("ID", prim(lexical.ParseID, lexical.FormatID, lexical.CloneID))
	add("IDREF", prim(lexical.ParseIDRef, lexical.FormatIDRef, lexical.CloneIDRef))
	add("ENTITY", prim(lexical.ParseEntity, lexical.FormatEntity, lexical.CloneEntity))
	add("duration", prim(lexical.ParseDuration, lexical.FormatDuration, nil))
	add("yearMonthDuration", prim(lexical.ParseYearMonthDuration, lexical.FormatYearMonthDuration, nil))
	add("dayTimeDuration", prim(lexical.ParseDayTimeDuration, lexical.FormatDayTimeDuration, nil))
	add("dateTime", prim(lexical.ParseDateTime, lexical.FormatDateTime, nil))
	add("dateTimeStamp", prim(lexical.ParseDateTimeStamp, lexical.FormatDateTimeStamp, nil))
	add("time", prim(lexical.ParseTime, lexical.FormatTime, nil))
	add("date", prim(lexical.ParseDate, lexical.FormatDate, nil))
	add("gYearMonth", prim(lexical.ParseGYearMonth, lexical.FormatGYearMonth, nil))
	add("gYear", prim(lexical.ParseGYear, lexical.FormatGYear, nil))
	add("gMonthDay", prim(lexical.ParseGMonthDay, lexical.FormatGMonthDay, nil))
	add("gDay", prim(lexical.ParseGDay, lexical.FormatGDay, nil))
	add("gMonth", prim(lexical.ParseGMonth, lexical.FormatGMonth, nil))
	add("base64Binary", prim(lexical.ParseBase64Binary, lexical.FormatBase64Binary, lexical.CloneBase64Binary))
	add("hexBinary", prim(lexical.ParseHexBinary, lexical.FormatHexBinary, lexical.CloneHexBinary))
	add("anyURI", prim(lexical.ParseAnyURI, lexical.FormatAnyURI, lexical.CloneAnyURI))
	add("QName", prim(lexical.ParseQName, lexical.FormatQName, lexical.CloneQName))
	add("NOTATION", prim(lexical.ParseNotation, lexical.FormatNotation, lexical.CloneNotation))
	return reg
}

// prim adapts a typed parser/formatter/clone triple to the untyped
// Primitive record.
func prim[T any](parse func(string) (T, error), format func(T) string, clone func(T) T) Primitive {
	p := Primitive{
		Parse: func(text string) (any, error) {
			v, err := parse(text)
			if err != nil {
				return nil, err
			}
			return v, nil
		},
		Format: func(v any) string { return format(v.(T)) },
	}
	if clone != nil {
		p.Clone = func(v any) any { return clone(v.(T)) }
	}
	return p
}
