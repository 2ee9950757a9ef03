package geography

// Kind identifies the geometry variant stored in a Record.
//
// The numeric values are part of the blob format and must not change.
type Kind uint8

const (
	KindPoint              Kind = 0
	KindLineString         Kind = 1
	KindPolygon            Kind = 2
	KindMultiPoint         Kind = 3
	KindMultiLineString    Kind = 4
	KindMultiPolygon       Kind = 6
	KindGeometryCollection Kind = 7
	KindUnknown            Kind = 250
)

// Kinds lists every concrete kind a parsed record can have, in keyword order.
var Kinds = []Kind{
	KindPoint,
	KindLineString,
	KindPolygon,
	KindMultiPoint,
	KindMultiLineString,
	KindMultiPolygon,
	KindGeometryCollection,
}

// String returns the WKT keyword of the kind.
func (k Kind) String() string {
	switch k {
	case KindPoint:
		return "POINT"
	case KindLineString:
		return "LINESTRING"
	case KindPolygon:
		return "POLYGON"
	case KindMultiPoint:
		return "MULTIPOINT"
	case KindMultiLineString:
		return "MULTILINESTRING"
	case KindMultiPolygon:
		return "MULTIPOLYGON"
	case KindGeometryCollection:
		return "GEOMETRYCOLLECTION"
	case KindUnknown:
		return "UNKNOWN"
	default:
		return "INVALID"
	}
}

// IsValid reports whether k is one of the declared kinds, including KindUnknown.
func (k Kind) IsValid() bool {
	switch k {
	case KindPoint, KindLineString, KindPolygon, KindMultiPoint, KindMultiLineString,
		KindMultiPolygon, KindGeometryCollection, KindUnknown:
		return true
	default:
		return false
	}
}

// IsMulti reports whether k is one of the three multi-part kinds.
func (k Kind) IsMulti() bool {
	return k == KindMultiPoint || k == KindMultiLineString || k == KindMultiPolygon
}

// KindFromKeyword maps an uppercase WKT keyword to its kind.
func KindFromKeyword(keyword string) (Kind, bool) {
	switch keyword {
	case "POINT":
		return KindPoint, true
	case "LINESTRING":
		return KindLineString, true
	case "POLYGON":
		return KindPolygon, true
	case "MULTIPOINT":
		return KindMultiPoint, true
	case "MULTILINESTRING":
		return KindMultiLineString, true
	case "MULTIPOLYGON":
		return KindMultiPolygon, true
	case "GEOMETRYCOLLECTION":
		return KindGeometryCollection, true
	default:
		return KindUnknown, false
	}
}
