package hierarchy

// XSDNamespace is the namespace of the XSD built-in datatypes. Every
// node of the built-in tree is identified by this namespace followed by
// the datatype's local name.
const XSDNamespace = "http://www.w3.org/2001/XMLSchema#"

// XSD returns the schema of the XSD built-in datatype tree: the
// primitive datatypes and the full derivation tree under xsd:decimal,
// xsd:string, xsd:duration and xsd:dateTime.
//
// The tree is rebuilt on each call; callers own the result.
func XSD() *Schema {
	return &Schema{
		Name: "xsd",
		Imports: []string{
			"math/big",
			"github.com/timothee-haudebourg/xsd-types/lexical",
		},
		Roots: []*Node{
			xsd("boolean", "", "bool", true),
			xsd("float", "", "float32", true),
			xsd("double", "", "float64", true),
			xsd("decimal", "", "lexical.Decimal", false,
				xsd("integer", "", "*big.Int", false,
					xsd("nonPositiveInteger", "", "*big.Int", false,
						xsd("negativeInteger", "", "*big.Int", false)),
					xsd("long", "", "int64", true,
						xsd("int", "", "int32", true,
							xsd("short", "", "int16", true,
								xsd("byte", "", "int8", true)))),
					xsd("nonNegativeInteger", "", "*big.Int", false,
						xsd("unsignedLong", "", "uint64", true,
							xsd("unsignedInt", "", "uint32", true,
								xsd("unsignedShort", "", "uint16", true,
									xsd("unsignedByte", "", "uint8", true)))),
						xsd("positiveInteger", "", "*big.Int", false)))),
			xsd("string", "", "string", false,
				xsd("normalizedString", "", "string", false,
					xsd("token", "", "string", false,
						xsd("language", "", "string", false),
						xsd("NMTOKEN", "NMToken", "string", false),
						xsd("Name", "", "string", false,
							xsd("NCName", "", "string", false,
								xsd("ID", "", "string", false),
								xsd("IDREF", "IDRef", "string", false),
								xsd("ENTITY", "Entity", "string", false)))))),
			xsd("duration", "", "lexical.Duration", true,
				xsd("yearMonthDuration", "", "lexical.YearMonthDuration", true),
				xsd("dayTimeDuration", "", "lexical.DayTimeDuration", true)),
			xsd("dateTime", "", "lexical.DateTime", true,
				xsd("dateTimeStamp", "", "lexical.DateTimeStamp", true)),
			xsd("time", "", "lexical.Time", true),
			xsd("date", "", "lexical.Date", true),
			xsd("gYearMonth", "", "lexical.GYearMonth", true),
			xsd("gYear", "", "lexical.GYear", true),
			xsd("gMonthDay", "", "lexical.GMonthDay", true),
			xsd("gDay", "", "lexical.GDay", true),
			xsd("gMonth", "", "lexical.GMonth", true),
			xsd("base64Binary", "", "[]byte", false),
			xsd("hexBinary", "", "[]byte", false),
			xsd("anyURI", "AnyURI", "string", false),
			xsd("QName", "", "lexical.QName", false),
			xsd("NOTATION", "Notation", "lexical.QName", false),
		},
	}
}

func xsd(name, goName, repr string, cp bool, children ...*Node) *Node {
	return &Node{
		Name:       name,
		GoName:     goName,
		Identifier: XSDNamespace + name,
		OwnedRepr:  repr,
		Copy:       cp,
		Children:   children,
	}
}
