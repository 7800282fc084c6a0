package date

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"time"

	"github.com/curtisnewbie/chrono/encoding/json"
	"github.com/curtisnewbie/chrono/util/errs"
	"github.com/spf13/cast"
)

const (
	unixSecPersudoMax = 9999999999 // 2286-11-21, should be enough :D

	SQLDateTimeFormat      = "2006-01-02 15:04:05.999999"
	SQLDateTimeFormatWithT = "2006-01-02T15:04:05.999999"
	SQLDateFormat          = "2006-01-02"
)

// go layouts tried by UnmarshalJSON and Scan.
var fuzzTimeFormats = []string{
	time.RFC3339Nano,
	SQLDateTimeFormat,
	SQLDateFormat,
	SQLDateTimeFormatWithT,
}

// Implements encoding/json Marshaler.
//
// Date is marshaled as RFC3339 string with nanoseconds, or null if it has no instant.
func (d Date) MarshalJSON() ([]byte, error) {
	if !d.valid {
		return []byte("null"), nil
	}
	return json.WriteJson(d.t.Format(time.RFC3339Nano))
}

// Implements encoding/json Unmarshaler.
//
// Supported values are null, milliseconds since unix epoch, numbers accepted by [Date.Scan], and strings in one of the following formats:
//   - [time.RFC3339Nano]
//   - 2006-01-02 15:04:05.999999
//   - 2006-01-02
//   - 2006-01-02T15:04:05.999999
func (d *Date) UnmarshalJSON(b []byte) error {
	s := string(b)
	if s == "" || s == "null" {
		*d = d.base()
		return nil
	}
	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		*d = d.base().withTime(time.UnixMilli(ms))
		return nil
	}
	var v any
	if err := json.ParseJson(b, &v); err != nil {
		return errs.ErrParseFailed.Wrapf(err, "json value: %v", s)
	}
	if err := d.Scan(v); err != nil {
		return errs.ErrParseFailed.Wrapf(err, "json value: %v", s)
	}
	return nil
}

// Implements yaml Marshaler, same format as [Date.MarshalJSON].
func (d Date) MarshalYAML() (interface{}, error) {
	if !d.valid {
		return nil, nil
	}
	return d.t.Format(time.RFC3339Nano), nil
}

// Implements yaml Unmarshaler, values are converted the same way as [Date.Scan].
func (d *Date) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var v interface{}
	if err := unmarshal(&v); err != nil {
		return err
	}
	return d.Scan(v)
}

// Implements driver.Valuer in database/sql.
func (d Date) Value() (driver.Value, error) {
	if !d.valid {
		return nil, nil
	}
	return d.t, nil
}

// Column type used by GORM migration.
func (d Date) GormDataType() string {
	return "datetime"
}

// Implements sql.Scanner in database/sql.
//
// Numbers greater than 9999999999 are treated as milliseconds since unix epoch, others as seconds.
// Floats are accepted only when they have no fractional part, e.g., 1.7044128e+12 decoded from json.
func (d *Date) Scan(value interface{}) error {
	b := d.base()
	if value == nil {
		*d = b
		return nil
	}

	switch v := value.(type) {
	case time.Time:
		*d = b.withTime(v)
	case *time.Time:
		if v == nil {
			*d = b
			return nil
		}
		*d = b.withTime(*v)
	case []byte:
		return d.Scan(string(v))
	case string:
		t, err := FuzzParseTimeLoc(fuzzTimeFormats, v, b.location())
		if err != nil {
			return err
		}
		*d = b.withTime(t)
	case bool:
		return errs.ErrIllegalArgument.WithInternalMsg("invalid field type 'bool' for Date, unable to convert, %v", v)
	case float32, float64:
		f := cast.ToFloat64(v)
		if f != math.Trunc(f) {
			return errs.ErrIllegalArgument.WithInternalMsg("number with fraction can't be converted to Date, %v", v)
		}
		*d = b.withTime(fromEpochNum(int64(f)))
	default:
		if rv := reflect.ValueOf(value); rv.Kind() == reflect.Pointer && rv.IsNil() {
			*d = b
			return nil
		}
		val, err := cast.ToInt64E(value)
		if err != nil {
			return errs.ErrIllegalArgument.Wrapf(err, "invalid field type '%v' for Date, unable to convert, %#v", reflect.TypeOf(value), v)
		}
		*d = b.withTime(fromEpochNum(val))
	}
	return nil
}

// Treat n as milliseconds since unix epoch if it's greater than unixSecPersudoMax, otherwise as seconds.
func fromEpochNum(n int64) time.Time {
	if n > unixSecPersudoMax {
		return time.UnixMilli(n)
	}
	return time.Unix(n, 0)
}

// Date without instant, keeping the configuration of d if any.
func (d Date) base() Date {
	if d.loc == nil {
		return blank()
	}
	d.t = time.Time{}
	d.valid = false
	return d
}

// Parse value using the first matching go layout in loc.
func FuzzParseTimeLoc(formats []string, value string, loc *time.Location) (time.Time, error) {
	if len(formats) < 1 {
		return time.Time{}, errors.New("formats is empty")
	}
	if loc == nil {
		loc = time.UTC
	}

	var t time.Time
	var err error
	for _, f := range formats {
		t, err = time.ParseInLocation(f, value, loc)
		if err == nil {
			return t, nil
		}
	}
	return t, errs.ErrParseFailed.Wrap(fmt.Errorf("failed to parse time '%s'", value))
}
