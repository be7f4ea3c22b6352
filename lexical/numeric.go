package lexical

import (
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// ParseBoolean accepts the four XSD boolean forms.
func ParseBoolean(text string) (bool, error) {
	switch text {
	case "true", "1":
		return true, nil
	case "false", "0":
		return false, nil
	}
	return false, parseError("boolean", text)
}

func FormatBoolean(v bool) string { return strconv.FormatBool(v) }

var floatRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

func parseFloating(text, datatype string, bits int) (float64, error) {
	switch text {
	case "INF", "+INF":
		return math.Inf(1), nil
	case "-INF":
		return math.Inf(-1), nil
	case "NaN":
		return math.NaN(), nil
	}
	if !floatRe.MatchString(text) {
		return 0, parseError(datatype, text)
	}
	v, err := strconv.ParseFloat(text, bits)
	if err != nil {
		return 0, parseError(datatype, text)
	}
	return v, nil
}

func formatFloating(v float64, bits int) string {
	switch {
	case math.IsInf(v, 1):
		return "INF"
	case math.IsInf(v, -1):
		return "-INF"
	case math.IsNaN(v):
		return "NaN"
	}
	return strconv.FormatFloat(v, 'g', -1, bits)
}

func ParseFloat(text string) (float32, error) {
	v, err := parseFloating(text, "float", 32)
	return float32(v), err
}

func FormatFloat(v float32) string { return formatFloating(float64(v), 32) }

func ParseDouble(text string) (float64, error) {
	return parseFloating(text, "double", 64)
}

func FormatDouble(v float64) string { return formatFloating(v, 64) }

// Decimal is the canonical lexical form of an xsd:decimal value: no
// plus sign, no superfluous zeroes, no trailing decimal point.
type Decimal string

var decimalRe = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

func ParseDecimal(text string) (Decimal, error) {
	if !decimalRe.MatchString(text) {
		return "", parseError("decimal", text)
	}
	return Decimal(canonicalDecimal(text)), nil
}

func FormatDecimal(v Decimal) string { return string(v) }

func CloneDecimal(v Decimal) Decimal { return Decimal(strings.Clone(string(v))) }

func canonicalDecimal(text string) string {
	neg := strings.HasPrefix(text, "-")
	text = strings.TrimLeft(text, "+-")
	intPart, fracPart, _ := strings.Cut(text, ".")
	intPart = strings.TrimLeft(intPart, "0")
	fracPart = strings.TrimRight(fracPart, "0")
	if intPart == "" {
		intPart = "0"
	}
	s := intPart
	if fracPart != "" {
		s = intPart + "." + fracPart
	}
	if neg && s != "0" {
		s = "-" + s
	}
	return s
}

var integerRe = regexp.MustCompile(`^[+-]?\d+$`)

func parseBigInteger(text, datatype string, min, max *big.Int) (*big.Int, error) {
	if !integerRe.MatchString(text) {
		return nil, parseError(datatype, text)
	}
	v, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, parseError(datatype, text)
	}
	if min != nil && v.Cmp(min) < 0 {
		return nil, parseError(datatype, text)
	}
	if max != nil && v.Cmp(max) > 0 {
		return nil, parseError(datatype, text)
	}
	return v, nil
}

var (
	bigZero   = big.NewInt(0)
	bigOne    = big.NewInt(1)
	bigNegOne = big.NewInt(-1)

	minLong  = big.NewInt(math.MinInt64)
	maxLong  = big.NewInt(math.MaxInt64)
	minInt   = big.NewInt(math.MinInt32)
	maxInt   = big.NewInt(math.MaxInt32)
	minShort = big.NewInt(math.MinInt16)
	maxShort = big.NewInt(math.MaxInt16)
	minByte  = big.NewInt(math.MinInt8)
	maxByte  = big.NewInt(math.MaxInt8)

	maxUnsignedLong  = new(big.Int).SetUint64(math.MaxUint64)
	maxUnsignedInt   = big.NewInt(math.MaxUint32)
	maxUnsignedShort = big.NewInt(math.MaxUint16)
	maxUnsignedByte  = big.NewInt(math.MaxUint8)
)

func ParseInteger(text string) (*big.Int, error) {
	return parseBigInteger(text, "integer", nil, nil)
}

func FormatInteger(v *big.Int) string { return v.String() }

func CloneInteger(v *big.Int) *big.Int { return new(big.Int).Set(v) }

func ParseNonPositiveInteger(text string) (*big.Int, error) {
	return parseBigInteger(text, "nonPositiveInteger", nil, bigZero)
}

func FormatNonPositiveInteger(v *big.Int) string { return v.String() }

func CloneNonPositiveInteger(v *big.Int) *big.Int { return new(big.Int).Set(v) }

func ParseNegativeInteger(text string) (*big.Int, error) {
	return parseBigInteger(text, "negativeInteger", nil, bigNegOne)
}

func FormatNegativeInteger(v *big.Int) string { return v.String() }

func CloneNegativeInteger(v *big.Int) *big.Int { return new(big.Int).Set(v) }

func ParseNonNegativeInteger(text string) (*big.Int, error) {
	return parseBigInteger(text, "nonNegativeInteger", bigZero, nil)
}

func FormatNonNegativeInteger(v *big.Int) string { return v.String() }

func CloneNonNegativeInteger(v *big.Int) *big.Int { return new(big.Int).Set(v) }

func ParsePositiveInteger(text string) (*big.Int, error) {
	return parseBigInteger(text, "positiveInteger", bigOne, nil)
}

func FormatPositiveInteger(v *big.Int) string { return v.String() }

func ClonePositiveInteger(v *big.Int) *big.Int { return new(big.Int).Set(v) }

func ParseLong(text string) (int64, error) {
	v, err := parseBigInteger(text, "long", minLong, maxLong)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

func FormatLong(v int64) string { return strconv.FormatInt(v, 10) }

func ParseInt(text string) (int32, error) {
	v, err := parseBigInteger(text, "int", minInt, maxInt)
	if err != nil {
		return 0, err
	}
	return int32(v.Int64()), nil
}

func FormatInt(v int32) string { return strconv.FormatInt(int64(v), 10) }

func ParseShort(text string) (int16, error) {
	v, err := parseBigInteger(text, "short", minShort, maxShort)
	if err != nil {
		return 0, err
	}
	return int16(v.Int64()), nil
}

func FormatShort(v int16) string { return strconv.FormatInt(int64(v), 10) }

func ParseByte(text string) (int8, error) {
	v, err := parseBigInteger(text, "byte", minByte, maxByte)
	if err != nil {
		return 0, err
	}
	return int8(v.Int64()), nil
}

func FormatByte(v int8) string { return strconv.FormatInt(int64(v), 10) }

func ParseUnsignedLong(text string) (uint64, error) {
	v, err := parseBigInteger(text, "unsignedLong", bigZero, maxUnsignedLong)
	if err != nil {
		return 0, err
	}
	return v.Uint64(), nil
}

func FormatUnsignedLong(v uint64) string { return strconv.FormatUint(v, 10) }

func ParseUnsignedInt(text string) (uint32, error) {
	v, err := parseBigInteger(text, "unsignedInt", bigZero, maxUnsignedInt)
	if err != nil {
		return 0, err
	}
	return uint32(v.Uint64()), nil
}

func FormatUnsignedInt(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

func ParseUnsignedShort(text string) (uint16, error) {
	v, err := parseBigInteger(text, "unsignedShort", bigZero, maxUnsignedShort)
	if err != nil {
		return 0, err
	}
	return uint16(v.Uint64()), nil
}

func FormatUnsignedShort(v uint16) string { return strconv.FormatUint(uint64(v), 10) }

func ParseUnsignedByte(text string) (uint8, error) {
	v, err := parseBigInteger(text, "unsignedByte", bigZero, maxUnsignedByte)
	if err != nil {
		return 0, err
	}
	return uint8(v.Uint64()), nil
}

func FormatUnsignedByte(v uint8) string { return strconv.FormatUint(uint64(v), 10) }
