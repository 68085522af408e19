package types

import (
	"strings"
)

// DBTypeMap maps database column type names, as reported by metadata
// queries, to canonical types. Keys are upper case.
var DBTypeMap = map[string]Type{
	// ===================
	// STANDARD SQL TYPES
	// ===================

	// Character types
	"CHAR":              String,
	"VARCHAR":           String,
	"TEXT":              String,
	"CLOB":              String,
	"NCHAR":             String,
	"NVARCHAR":          String,
	"NTEXT":             String,
	"NCLOB":             String,
	"CHARACTER":         String,
	"CHAR VARYING":      String,
	"CHARACTER VARYING": String,

	// Numeric types - Integers
	"TINYINT":   Int,
	"SMALLINT":  Int,
	"MEDIUMINT": Int,
	"INT":       Int,
	"INTEGER":   Int,
	"BIGINT":    BigInt,
	"SERIAL":    Int,
	"BIGSERIAL": BigInt,

	// Numeric types - Unsigned integers
	"UNSIGNED TINYINT":   Int,
	"UNSIGNED SMALLINT":  Int,
	"UNSIGNED MEDIUMINT": Int,
	"UNSIGNED INT":       Int,
	"UNSIGNED INTEGER":   Int,
	"UNSIGNED BIGINT":    BigInt,

	// Numeric types - Floating point
	"REAL":             Number,
	"FLOAT":            Number,
	"DOUBLE":           Number,
	"DOUBLE PRECISION": Number,
	"NUMERIC":          Decimal,
	"DECIMAL":          Decimal,
	"DEC":              Decimal,
	"FIXED":            Decimal,
	"NUMBER":           Decimal,

	// Boolean
	"BOOLEAN": Boolean,
	"BOOL":    Boolean,
	"BIT":     Bit,

	// Date and Time
	"DATE":      Date,
	"TIME":      Time,
	"DATETIME":  DateTime,
	"TIMESTAMP": DateTime,
	"YEAR":      Int,
	"INTERVAL":  Duration,

	// Binary types
	"BINARY":     Binary,
	"VARBINARY":  Binary,
	"BLOB":       Blob,
	"TINYBLOB":   Blob,
	"MEDIUMBLOB": Blob,
	"LONGBLOB":   Blob,
	"BYTEA":      Binary,
	"RAW":        Binary,
	"LONG RAW":   Binary,
	"IMAGE":      Image,

	// ===================
	// POSTGRESQL TYPES
	// ===================

	"SMALLSERIAL": Int,
	"SERIAL2":     Int,
	"SERIAL4":     Int,
	"SERIAL8":     BigInt,
	"INT2":        Int,
	"INT4":        Int,
	"FLOAT4":      Number,
	"FLOAT8":      Number,
	"MONEY":       Money,

	"NAME":   String,
	"BPCHAR": String,

	"TIMESTAMPTZ":                 DateTime,
	"TIMESTAMP WITH TIME ZONE":    DateTime,
	"TIMESTAMP WITHOUT TIME ZONE": DateTime,
	"TIMETZ":                      Time,
	"TIME WITH TIME ZONE":         Time,
	"TIME WITHOUT TIME ZONE":      Time,

	"JSON":  JSON,
	"JSONB": JSON,

	"ARRAY": Object,

	// Geometric
	"POINT":   Geometry,
	"LINE":    Geometry,
	"LSEG":    Geometry,
	"BOX":     Geometry,
	"PATH":    Geometry,
	"POLYGON": Geometry,
	"CIRCLE":  Geometry,

	// Network
	"INET":     IP,
	"CIDR":     IP,
	"MACADDR":  MAC,
	"MACADDR8": MAC,

	"UUID": UUID,
	"XML":  XML,

	// Range types render as text
	"INT4RANGE": String,
	"INT8RANGE": String,
	"NUMRANGE":  String,
	"TSRANGE":   String,
	"TSTZRANGE": String,
	"DATERANGE": String,

	"TSVECTOR":  String,
	"TSQUERY":   String,
	"LTREE":     String,
	"LQUERY":    String,
	"LTXTQUERY": String,

	"OID":      Int,
	"REGPROC":  String,
	"REGCLASS": String,
	"REGTYPE":  String,

	// ===================
	// MYSQL TYPES
	// ===================

	"ENUM":               Enum,
	"SET":                ArrayOf(Enum),
	"GEOMETRY":           Geometry,
	"LINESTRING":         Geometry,
	"MULTIPOINT":         Geometry,
	"MULTILINESTRING":    Geometry,
	"MULTIPOLYGON":       Geometry,
	"GEOMETRYCOLLECTION": Geometry,

	// ===================
	// SQL SERVER TYPES
	// ===================

	"UNIQUEIDENTIFIER": UUID,
	"ROWVERSION":       Binary,
	"SMALLMONEY":       Money,
	"SMALLDATETIME":    DateTime,
	"DATETIME2":        DateTime,
	"DATETIMEOFFSET":   DateTime,
	"SQL_VARIANT":      Object,
	"HIERARCHYID":      Binary,
	"GEOGRAPHY":        Geometry,

	// ===================
	// ORACLE TYPES
	// ===================

	"VARCHAR2":     String,
	"NVARCHAR2":    String,
	"LONG":         String,
	"ROWID":        String,
	"UROWID":       String,
	"BFILE":        Blob,
	"XMLTYPE":      XML,
	"URITYPE":      URL,
	"HTTPURITYPE":  URL,
	"SDO_GEOMETRY": Geometry,
	"ANYDATA":      Object,

	// ===================
	// SQLITE TYPES
	// ===================

	"UNSIGNED BIG INT":  BigInt,
	"VARYING CHARACTER": String,
	"NATIVE CHARACTER":  String,

	// ===================
	// VECTOR TYPES
	// ===================

	"VECTOR":        ArrayOf(Number),
	"EMBEDDING":     ArrayOf(Number),
	"FLOAT_VECTOR":  ArrayOf(Number),
	"DOUBLE_VECTOR": ArrayOf(Number),
	"INT_VECTOR":    ArrayOf(Int),
	"BINARY_VECTOR": Binary,
	"SPARSE_VECTOR": Object,
	"DENSE_VECTOR":  ArrayOf(Number),

	// ===================
	// MODERN EXTENSIONS
	// ===================

	// PostGIS
	"RASTER": Image,
	"BOX2D":  Geometry,
	"BOX3D":  Geometry,

	// MongoDB-style
	"OBJECTID": Hash,
	"DOCUMENT": Object,

	// Redis-style
	"HASH": Object,
	"LIST": ArrayOf(String),
	"ZSET": Object,

	// ClickHouse types
	"INT8":           BigInt,
	"INT16":          Int,
	"INT32":          Int,
	"INT64":          BigInt,
	"UINT8":          Int,
	"UINT16":         Int,
	"UINT32":         Int,
	"UINT64":         BigInt,
	"FLOAT32":        Number,
	"FLOAT64":        Number,
	"STRING":         String,
	"FIXEDSTRING":    String,
	"ENUM8":          Enum,
	"ENUM16":         Enum,
	"TUPLE":          Object,
	"MAP":            Object,
	"IPV4":           IP,
	"IPV6":           IP,
	"LOWCARDINALITY": String,
}

// FromDBType resolves a database column type name to a canonical type.
// Parameterized names (VARCHAR(255), NUMERIC(10,2)), array suffixes (INT[])
// and PostgreSQL internal array names (_int4) are understood. Unknown names
// are String.
func FromDBType(dbType string) Type {
	upperType := strings.ToUpper(strings.TrimSpace(dbType))
	if t, exists := DBTypeMap[upperType]; exists {
		return t
	}

	if strings.HasSuffix(upperType, "[]") {
		return ArrayOf(FromDBType(strings.TrimSuffix(upperType, "[]")))
	}
	if strings.HasPrefix(upperType, "_") && len(upperType) > 1 {
		if elem, exists := DBTypeMap[upperType[1:]]; exists {
			return ArrayOf(elem)
		}
	}

	// Wrappers such as Nullable(Int32) and LowCardinality(String)
	for _, wrapper := range []string{"NULLABLE(", "LOWCARDINALITY("} {
		if strings.HasPrefix(upperType, wrapper) && strings.HasSuffix(upperType, ")") {
			return FromDBType(upperType[len(wrapper) : len(upperType)-1])
		}
	}

	// Handle parameterized types like VARCHAR(255), DECIMAL(10,2), etc.
	if parenIdx := strings.IndexByte(upperType, '('); parenIdx != -1 {
		baseType := strings.TrimSpace(upperType[:parenIdx])
		rest := upperType[parenIdx:]
		if closeIdx := strings.IndexByte(rest, ')'); closeIdx != -1 {
			// timestamp(3) with time zone
			if suffix := strings.TrimSpace(rest[closeIdx+1:]); suffix != "" && suffix != "[]" {
				if t, exists := DBTypeMap[baseType+" "+suffix]; exists {
					return t
				}
			}
			if strings.HasSuffix(rest, "[]") {
				return ArrayOf(FromDBType(baseType))
			}
		}
		if t, exists := DBTypeMap[baseType]; exists {
			return t
		}
	}

	if strings.HasPrefix(upperType, "UNSIGNED ") {
		return FromDBType(strings.TrimPrefix(upperType, "UNSIGNED "))
	}
	if strings.HasSuffix(upperType, " UNSIGNED") {
		return FromDBType(strings.TrimSuffix(upperType, " UNSIGNED"))
	}

	return String
}
