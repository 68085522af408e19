package types

import (
	"encoding/json"
	"math"
	"math/big"
	"net"
	"net/netip"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/image/colornames"
)

// Rule is one step of the inference cascade.
type Rule struct {
	Name   string
	Match  func(s string) bool
	Result func(s string) Type
}

// MaxSafeInteger is the largest integer every consumer can hold exactly in
// a double. Integers beyond it are BigInt.
const MaxSafeInteger = 1<<53 - 1

var (
	intPattern      = regexp.MustCompile(`^[+-]?\d+$`)
	decimalPattern  = regexp.MustCompile(`^[+-]?\d+\.\d+([eE][+-]?\d+)?$`)
	datetimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}[Tt ]\d{2}:\d{2}(:\d{2}(\.\d+)?)?\s*([Zz]|[+-]\d{2}(:?\d{2})?)?$`)
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern     = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2}(\.\d+)?)?$`)

	isoDurationPattern     = regexp.MustCompile(`^[+-]?P(\d+(\.\d+)?Y)?(\d+(\.\d+)?M)?(\d+(\.\d+)?W)?(\d+(\.\d+)?D)?(T(\d+(\.\d+)?H)?(\d+(\.\d+)?M)?(\d+(\.\d+)?S)?)?$`)
	verboseDurationPattern = regexp.MustCompile(`^[+-]?\d+ days?( [+-]?\d{1,2}:\d{2}:\d{2}(\.\d+)?)?$`)

	uuidPattern  = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	urlPattern   = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*://\S+$`)
	pathPattern  = regexp.MustCompile(`^(~?/|\.{1,2}/|[A-Za-z]:[\\/]|\\\\)[^\x00<>|"*?]*$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s()-]{5,18}[0-9]$`)
	ipv4Pattern  = regexp.MustCompile(`^(\d{1,3}\.){3}\d{1,3}$`)
	macPattern   = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)

	xmlPattern     = regexp.MustCompile(`(?i)^\s*<\?xml[\s?]`)
	wktPattern     = regexp.MustCompile(`(?is)^\s*(SRID=\d+;\s*)?(POINT|LINESTRING|POLYGON|MULTIPOINT|MULTILINESTRING|MULTIPOLYGON|GEOMETRYCOLLECTION|CIRCULARSTRING|COMPOUNDCURVE|CURVEPOLYGON|TRIANGLE|TIN|POLYHEDRALSURFACE)\s*(ZM|Z|M)?\s*(\(.*\)|EMPTY)\s*$`)
	geoJSONPattern = regexp.MustCompile(`(?s)^\s*\{.*"type"\s*:\s*"(Point|MultiPoint|LineString|MultiLineString|Polygon|MultiPolygon|GeometryCollection|Feature|FeatureCollection)".*\}\s*$`)

	hexColorPattern  = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})$`)
	funcColorPattern = regexp.MustCompile(`(?i)^(rgba?|hsla?)\(\s*[+-]?[\d.]+(deg|%)?\s*(,\s*|\s+)[\d.]+%?\s*(,\s*|\s+)[\d.]+%?\s*((,|/)\s*[\d.]+%?\s*)?\)$`)
)

// Rules is the inference cascade. Order is part of the contract: patterns
// overlap (a ten-digit string is both a phone number and an integer) and the
// first match wins.
var Rules = []Rule{
	{Name: "integer", Match: intPattern.MatchString, Result: integerType},
	{Name: "decimal", Match: decimalPattern.MatchString, Result: decimalType},
	{Name: "boolean", Match: isBoolean, Result: constant(Boolean)},
	{Name: "bit", Match: isBit, Result: constant(Bit)},
	{Name: "datetime", Match: datetimePattern.MatchString, Result: constant(DateTime)},
	{Name: "date", Match: datePattern.MatchString, Result: constant(Date)},
	{Name: "time", Match: timePattern.MatchString, Result: constant(Time)},
	{Name: "duration", Match: isDuration, Result: constant(Duration)},
	{Name: "uuid", Match: isUUID, Result: constant(UUID)},
	{Name: "email", Match: emailPattern.MatchString, Result: constant(Email)},
	{Name: "url", Match: isURL, Result: constant(URL)},
	{Name: "path", Match: pathPattern.MatchString, Result: constant(Path)},
	{Name: "phone", Match: isPhone, Result: constant(Phone)},
	{Name: "ip", Match: isIPv4, Result: constant(IP)},
	{Name: "mac", Match: isMAC, Result: constant(MAC)},
	{Name: "json", Match: isJSON, Result: constant(JSON)},
	{Name: "xml", Match: xmlPattern.MatchString, Result: constant(XML)},
	{Name: "geometry", Match: isGeometry, Result: constant(Geometry)},
	{Name: "color", Match: isColor, Result: constant(Color)},
}

// InferString classifies s by running the cascade. It always returns a type;
// text no rule claims is String.
func InferString(s string) Type {
	for _, r := range Rules {
		if r.Match(s) {
			return r.Result(s)
		}
	}
	return String
}

func constant(t Type) func(string) Type {
	return func(string) Type { return t }
}

func integerType(s string) Type {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n >= -MaxSafeInteger && n <= MaxSafeInteger {
			return Int
		}
		return BigInt
	}
	if _, ok := new(big.Int).SetString(strings.TrimPrefix(s, "+"), 10); ok {
		return BigInt
	}
	return String
}

func decimalType(s string) Type {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) {
		return Decimal
	}
	return Number
}

func isBoolean(s string) bool {
	return strings.EqualFold(s, "true") || strings.EqualFold(s, "false")
}

// isBit only sees 0 and 1 when the integer rule is removed from the cascade.
func isBit(s string) bool {
	return s == "0" || s == "1"
}

func isDuration(s string) bool {
	if isoDurationPattern.MatchString(s) {
		body := strings.TrimLeft(s, "+-")
		return body != "P" && !strings.HasSuffix(body, "T")
	}
	if verboseDurationPattern.MatchString(s) {
		var iv pgtype.Interval
		return iv.Scan(s) == nil && iv.Valid
	}
	return false
}

func isUUID(s string) bool {
	if !uuidPattern.MatchString(s) {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

func isURL(s string) bool {
	if !urlPattern.MatchString(s) {
		return false
	}
	u, err := url.Parse(s)
	return err == nil && u.Scheme != ""
}

func isPhone(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

func isIPv4(s string) bool {
	if !ipv4Pattern.MatchString(s) {
		return false
	}
	addr, err := netip.ParseAddr(s)
	return err == nil && addr.Is4()
}

func isMAC(s string) bool {
	if !macPattern.MatchString(s) {
		return false
	}
	_, err := net.ParseMAC(s)
	return err == nil
}

func isJSON(s string) bool {
	t := strings.TrimSpace(s)
	if t == "" || (t[0] != '{' && t[0] != '[') {
		return false
	}
	return json.Valid([]byte(t))
}

func isGeometry(s string) bool {
	return wktPattern.MatchString(s) || geoJSONPattern.MatchString(s)
}

func isColor(s string) bool {
	if hexColorPattern.MatchString(s) || funcColorPattern.MatchString(s) {
		return true
	}
	_, ok := colornames.Map[strings.ToLower(s)]
	return ok
}
