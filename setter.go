package fieldseed

import (
	"encoding/json"
	"reflect"
	"strconv"
	"time"
	"unsafe"

	"github.com/viant/tagly/format"
	"github.com/viant/xunsafe"
)

type (
	converter struct {
		inputType reflect.Type
		setter    Setter
	}

	//Setter assigns a payload value to a struct field
	Setter func(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error
)

// LookupSetter returns a setter assigning a payload of src type to a field of
// dest type. Unmatched pairs fall back to a json round trip.
func LookupSetter(src, dest reflect.Type) Setter {
	switch dest.Kind() {
	case reflect.Interface:
		return anyToInterface
	case reflect.String:
		switch src.Kind() {
		case reflect.String:
			return stringToString
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
			reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			return intToString
		case reflect.Float32, reflect.Float64:
			return floatToString
		case reflect.Bool:
			return boolToString
		case reflect.Struct:
			if src.AssignableTo(timeType) {
				return timeToString
			}
		case reflect.Ptr:
			if src.AssignableTo(timePtrType) {
				return timePtrToString
			}
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		switch {
		case src.Kind() == reflect.String:
			return stringToInt
		case isNumericKind(src.Kind()):
			return numericToNumeric
		}
	case reflect.Bool:
		switch {
		case src.Kind() == reflect.Bool:
			return boolToBool
		case src.Kind() == reflect.String:
			return stringToBool
		case isIntKind(src.Kind()):
			return intToBool
		}
	case reflect.Float32, reflect.Float64:
		switch {
		case src.Kind() == reflect.String:
			return stringToFloat
		case isNumericKind(src.Kind()):
			return numericToNumeric
		}
	case reflect.Struct:
		if isTimeType(dest) {
			switch {
			case src.Kind() == reflect.String:
				return stringToTime
			case isIntKind(src.Kind()):
				return intToTime
			}
		}
	case reflect.Ptr:
		if isTimeType(dest) {
			switch {
			case src.Kind() == reflect.String:
				return stringToTimePtr
			case isIntKind(src.Kind()):
				return intToTimePtr
			}
		}
	}
	return anyToAny
}

func isIntKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isNumericKind(kind reflect.Kind) bool {
	return isIntKind(kind) || kind == reflect.Float32 || kind == reflect.Float64
}

func stringToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetString(holder, src.(string))
	return nil
}

func intToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := reflect.ValueOf(src)
	if value.CanInt() {
		field.SetString(holder, strconv.FormatInt(value.Int(), 10))
		return nil
	}
	field.SetString(holder, strconv.FormatUint(value.Uint(), 10))
	return nil
}

func floatToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := reflect.ValueOf(src)
	bitSize := 64
	if value.Kind() == reflect.Float32 {
		bitSize = 32
	}
	field.SetString(holder, strconv.FormatFloat(value.Float(), 'f', -1, bitSize))
	return nil
}

func boolToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetString(holder, strconv.FormatBool(src.(bool)))
	return nil
}

func timeToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := src.(time.Time)
	field.SetString(holder, value.Format(timeLayout(field)))
	return nil
}

func timePtrToString(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := src.(*time.Time)
	if value == nil {
		field.SetString(holder, "")
		return nil
	}
	field.SetString(holder, value.Format(timeLayout(field)))
	return nil
}

func stringToInt(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	text := src.(string)
	switch field.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		value, err := strconv.ParseUint(text, 10, field.Type.Bits())
		if err != nil {
			return err
		}
		field.SetValue(holder, reflect.ValueOf(value).Convert(field.Type).Interface())
	default:
		value, err := strconv.ParseInt(text, 10, field.Type.Bits())
		if err != nil {
			return err
		}
		field.SetValue(holder, reflect.ValueOf(value).Convert(field.Type).Interface())
	}
	return nil
}

func stringToFloat(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := strconv.ParseFloat(src.(string), field.Type.Bits())
	if err != nil {
		return err
	}
	field.SetValue(holder, reflect.ValueOf(value).Convert(field.Type).Interface())
	return nil
}

func stringToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := strconv.ParseBool(src.(string))
	if err != nil {
		return err
	}
	field.SetBool(holder, value)
	return nil
}

func boolToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetBool(holder, src.(bool))
	return nil
}

func intToBool(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := reflect.ValueOf(src)
	if value.CanInt() {
		field.SetBool(holder, value.Int() != 0)
		return nil
	}
	field.SetBool(holder, value.Uint() != 0)
	return nil
}

func numericToNumeric(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, reflect.ValueOf(src).Convert(field.Type).Interface())
	return nil
}

func stringToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := parseTime(field, src.(string))
	if err != nil {
		return err
	}
	field.SetValue(holder, value)
	return nil
}

func intToTime(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, time.Unix(asInt64(src), 0))
	return nil
}

func stringToTimePtr(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value, err := parseTime(field, src.(string))
	if err != nil {
		return err
	}
	field.SetValue(holder, &value)
	return nil
}

func intToTimePtr(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	value := time.Unix(asInt64(src), 0)
	field.SetValue(holder, &value)
	return nil
}

func anyToInterface(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	field.SetValue(holder, src)
	return nil
}

func anyToAny(src interface{}, field *xunsafe.Field, holder unsafe.Pointer) error {
	data, err := json.Marshal(src)
	if err != nil {
		return err
	}
	reflectValuePtr := reflect.New(field.Type)
	if err = json.Unmarshal(data, reflectValuePtr.Interface()); err != nil {
		return err
	}
	field.SetValue(holder, reflectValuePtr.Elem().Interface())
	return nil
}

func asInt64(src interface{}) int64 {
	value := reflect.ValueOf(src)
	if value.CanInt() {
		return value.Int()
	}
	return int64(value.Uint())
}

func parseTime(field *xunsafe.Field, input string) (time.Time, error) {
	return time.Parse(timeLayout(field), input)
}

func timeLayout(field *xunsafe.Field) string {
	layout := ""
	if tag, _ := format.Parse(field.Tag); tag != nil {
		layout = tag.TimeLayout
	}
	if layout == "" {
		layout = field.Tag.Get("timeLayout")
	}
	if layout == "" {
		layout = time.RFC3339
	}
	return layout
}
