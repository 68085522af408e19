// Package types is the canonical cross-database type taxonomy.
//
// Every subtype reduces to exactly one of seven base types and to exactly one
// general type. General types are what Widen works with when a column mixes
// values of different subtypes.
package types

import (
	"strings"
)

// Type is a canonical subtype, a base type, or an array marker T[].
type Type string

// Subtypes.
const (
	String   Type = "string"
	UUID     Type = "uuid"
	Email    Type = "email"
	URL      Type = "url"
	Path     Type = "path"
	Phone    Type = "phone"
	MAC      Type = "mac"
	IP       Type = "ip"
	Hash     Type = "hash"
	Color    Type = "color"
	Number   Type = "number"
	BigInt   Type = "bigint"
	Decimal  Type = "decimal"
	Money    Type = "money"
	Int      Type = "int"
	Boolean  Type = "boolean"
	Bit      Type = "bit"
	DateTime Type = "datetime"
	Date     Type = "date"
	Time     Type = "time"
	Duration Type = "duration"
	Object   Type = "object"
	JSON     Type = "json"
	XML      Type = "xml"
	Enum     Type = "enum"
	Geometry Type = "geometry"
	Binary   Type = "binary"
	Blob     Type = "blob"
	Image    Type = "image"
	Array    Type = "array"
)

const arraySuffix = "[]"

// base maps every canonical type to its base type.
var base = map[Type]Type{
	String: String, UUID: String, Email: String, URL: String, Path: String,
	Phone: String, MAC: String, IP: String, Hash: String, Color: String,

	Number: Number, BigInt: Number, Decimal: Number, Money: Number, Int: Number,

	Boolean: Boolean, Bit: Boolean,

	DateTime: DateTime, Date: DateTime, Time: DateTime, Duration: DateTime,

	Object: Object, JSON: Object, XML: Object, Enum: Object, Geometry: Object,

	Binary: Binary, Blob: Binary, Image: Binary,

	Array: Array,
}

// general maps every canonical type to its general type.
var general = map[Type]Type{
	String: String, UUID: String, Email: String, URL: String, Path: String,
	Phone: String, MAC: String, IP: String, Hash: String, Color: String,

	Decimal: Decimal, Money: Decimal, BigInt: Decimal,
	Number: Number, Int: Number,

	DateTime: DateTime, Date: DateTime, Time: DateTime,
	Duration: Duration,

	Boolean: Boolean, Bit: Boolean,

	Object: Object, JSON: Object, XML: Object, Enum: Object, Geometry: Object,
	Array: Object,

	Binary: Binary, Blob: Binary, Image: Binary,
}

// WideningOrder is the precedence Widen uses when general types differ.
var WideningOrder = []Type{String, Decimal, Number, DateTime, Duration, Boolean, Object, Binary}

// Subtypes lists every canonical type, base types included.
func Subtypes() []Type {
	out := make([]Type, 0, len(base))
	for t := range base {
		out = append(out, t)
	}
	return out
}

// ArrayOf returns the array marker for elem.
func ArrayOf(elem Type) Type {
	return elem + arraySuffix
}

// IsArray reports whether t is an array marker.
func (t Type) IsArray() bool {
	return strings.HasSuffix(string(t), arraySuffix)
}

// Elem returns the element type of an array marker, or t itself.
func (t Type) Elem() Type {
	if t.IsArray() {
		return Type(strings.TrimSuffix(string(t), arraySuffix))
	}
	return t
}

// Known reports whether t is a canonical type or an array of one.
func (t Type) Known() bool {
	_, ok := base[t.Elem()]
	return ok
}

// Canonical resolves t to a canonical type. Exact canonical names pass
// through. Anything else is a database column type name first, so Oracle's
// NUMBER is decimal, and only then a canonical name in another case.
func Canonical(t Type) Type {
	if t.Known() {
		return t
	}
	if t.IsArray() {
		return ArrayOf(Canonical(t.Elem()))
	}
	if db, ok := DBTypeMap[strings.ToUpper(strings.TrimSpace(string(t)))]; ok {
		return db
	}
	lower := Type(strings.ToLower(string(t)))
	if _, ok := base[lower]; ok {
		return lower
	}
	return FromDBType(string(t))
}

// ToBaseType reduces t to one of the seven base types.
func ToBaseType(t Type) Type {
	c := Canonical(t)
	if c.IsArray() {
		return Array
	}
	return base[c]
}

// ToGeneralType reduces t to its general type. Arrays are objects.
func ToGeneralType(t Type) Type {
	c := Canonical(t)
	if c.IsArray() {
		return Object
	}
	return general[c]
}

// Equal reports whether a and b denote the same type. An array marker only
// equals an array marker of the same element type, never the bare element.
func Equal(a, b Type) bool {
	return Canonical(a) == Canonical(b)
}

// Widen finds one type able to hold values of every type in ts. When all
// reduce to the same general type that type is returned; otherwise the first
// general type of WideningOrder present among them. Empty input is String.
func Widen(ts ...Type) Type {
	if len(ts) == 0 {
		return String
	}

	present := make(map[Type]bool, len(ts))
	for _, t := range ts {
		present[ToGeneralType(t)] = true
	}
	if len(present) == 1 {
		return ToGeneralType(ts[0])
	}

	for _, g := range WideningOrder {
		if present[g] {
			return g
		}
	}
	return String
}
