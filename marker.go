package caltime

import (
	"fmt"
	"reflect"
	"unsafe"

	"github.com/viant/tagly/format/text"
	"github.com/viant/xunsafe"
)

// Marker binds calendar fields of a struct whose field presence is tracked by a set marker holder
type Marker struct {
	t           reflect.Type
	holder      *xunsafe.Field
	holderIsPtr bool
	fields      [fieldCount]*xunsafe.Field
	flags       [fieldCount]*xunsafe.Field
	index       map[string]Field //struct field name to calendar field
	noStrict    bool
}

// Type returns bound struct type
func (p *Marker) Type() reflect.Type {
	return p.t
}

// HasHolder returns true if struct defines set marker holder
func (p *Marker) HasHolder() bool {
	return p.holder != nil
}

// Calendar reads calendar from struct or struct pointer; nil pointer returns nil
func (p *Marker) Calendar(value interface{}) (*Calendar, error) {
	ptr, err := p.pointer(value)
	if ptr == nil || err != nil {
		return nil, err
	}
	ret := Calendar{}
	for i, field := range p.fields {
		if field == nil || !p.IsSet(ptr, Field(i)) {
			continue
		}
		ret = ret.With(Field(i), intValue(field, ptr))
	}
	return &ret, nil
}

// Assign writes calendar to a struct pointer, allocating the holder when needed; nil calendar clears all fields.
// A value that does not fit its struct field leaves dest unchanged and returns an error.
func (p *Marker) Assign(cal *Calendar, dest interface{}) error {
	destType := reflect.TypeOf(dest)
	if destType == nil || destType.Kind() != reflect.Ptr || destType.Elem() != p.t {
		return fmt.Errorf("expected *%v, but had %T", p.t, dest)
	}
	if reflect.ValueOf(dest).IsNil() {
		return fmt.Errorf("destination pointer cannot be nil")
	}
	if cal != nil {
		for i, field := range p.fields {
			value, ok := cal.Get(Field(i))
			if field == nil || !ok {
				continue
			}
			if reflect.Zero(field.Type).OverflowInt(int64(value)) {
				return fmt.Errorf("field %v.%v: %v value %v overflows %v", p.t.Name(), field.Name, Field(i), value, field.Type)
			}
		}
	}
	ptr := xunsafe.AsPointer(dest)
	var markerPtr unsafe.Pointer
	if p.holder != nil {
		if p.holderIsPtr && p.holder.IsNil(ptr) {
			p.holder.SetValue(ptr, reflect.New(p.holder.Type.Elem()).Interface())
		}
		markerPtr = p.markerPointer(ptr)
	}
	for i, field := range p.fields {
		if field == nil {
			continue
		}
		value, ok := 0, false
		if cal != nil {
			value, ok = cal.Get(Field(i))
		}
		setIntValue(field, ptr, value)
		if flag := p.flags[i]; flag != nil && markerPtr != nil {
			flag.SetBool(markerPtr, ok)
		}
	}
	return nil
}

// IsSet returns true if calendar field has been set
func (p *Marker) IsSet(ptr unsafe.Pointer, field Field) bool {
	if !field.valid() || p.fields[field] == nil {
		return false
	}
	if p.holder == nil || (p.holderIsPtr && p.holder.IsNil(ptr)) {
		return true //we do not have field presence provider so we assume all fields are set
	}
	flag := p.flags[field]
	if flag == nil {
		return false
	}
	return flag.Bool(p.markerPointer(ptr))
}

func (p *Marker) markerPointer(ptr unsafe.Pointer) unsafe.Pointer {
	if p.holderIsPtr {
		return p.holder.ValuePointer(ptr)
	}
	return p.holder.Pointer(ptr)
}

func (p *Marker) pointer(value interface{}) (unsafe.Pointer, error) {
	if value == nil {
		return nil, nil
	}
	rValue := reflect.ValueOf(value)
	switch rValue.Kind() {
	case reflect.Ptr:
		if rValue.Type().Elem() != p.t {
			return nil, fmt.Errorf("expected *%v, but had %T", p.t, value)
		}
		if rValue.IsNil() {
			return nil, nil
		}
		return xunsafe.AsPointer(value), nil
	case reflect.Struct:
		if rValue.Type() != p.t {
			return nil, fmt.Errorf("expected %v, but had %T", p.t, value)
		}
		rPointer := reflect.New(p.t)
		rPointer.Elem().Set(rValue)
		return xunsafe.AsPointer(rPointer.Interface()), nil
	}
	return nil, fmt.Errorf("expected %v, but had %T", p.t, value)
}

func (p *Marker) lookup(name string) (Field, bool) {
	if len(p.index) > 0 {
		field, ok := p.index[name]
		return field, ok
	}
	if field, ok := FieldByName(name); ok {
		return field, true
	}
	caseFormat := text.DetectCaseFormat(name)
	if !caseFormat.IsDefined() {
		return 0, false
	}
	return FieldByName(caseFormat.Format(name, text.CaseFormatUpperCamel))
}

// init initialises field set marker
func (p *Marker) init() error {
	if p.holder == nil {
		return nil
	}
	holderType := EnsureStructType(p.holder.Type)
	if holderType == nil {
		return fmt.Errorf("set marker holder %v was not a struct", p.holder.Name)
	}
	p.holderIsPtr = p.holder.Type.Kind() == reflect.Ptr
	for i := 0; i < holderType.NumField(); i++ {
		markerField := holderType.Field(i)
		pos, ok := p.lookup(markerField.Name)
		if !ok || p.fields[pos] == nil {
			if p.noStrict {
				continue
			}
			return fmt.Errorf("marker field: '%v' does not have corresponding struct field", markerField.Name)
		}
		if markerField.Type.Kind() != reflect.Bool {
			return fmt.Errorf("marker field: '%v' expected bool, but had %v", markerField.Name, markerField.Type)
		}
		p.flags[pos] = xunsafe.NewField(markerField)
	}
	return nil
}

// NewMarker returns new calendar marker for the supplied struct type
func NewMarker(t reflect.Type, opts ...Option) (*Marker, error) {
	if t = EnsureStructType(t); t == nil {
		return nil, fmt.Errorf("supplied type is not struct")
	}
	var result = &Marker{t: t}
	Options(opts).Apply(result)
	mapped := 0
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if IsSetMarker(field.Tag) {
			result.holder = xunsafe.NewField(field)
			continue
		}
		pos, ok := result.lookup(field.Name)
		if !ok {
			continue
		}
		if !isIntKind(field.Type.Kind()) {
			return nil, fmt.Errorf("field %v.%v: unsupported type %v", t.Name(), field.Name, field.Type)
		}
		if result.fields[pos] != nil {
			return nil, fmt.Errorf("field %v.%v: %v already mapped to %v", t.Name(), field.Name, pos, result.fields[pos].Name)
		}
		result.fields[pos] = xunsafe.NewField(field)
		mapped++
	}
	if mapped == 0 {
		return nil, fmt.Errorf("struct %v has no calendar fields", t.Name())
	}
	return result, result.init()
}

func isIntKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func intValue(field *xunsafe.Field, ptr unsafe.Pointer) int {
	switch field.Type.Kind() {
	case reflect.Int8:
		return int(field.Int8(ptr))
	case reflect.Int16:
		return int(field.Int16(ptr))
	case reflect.Int32:
		return int(field.Int32(ptr))
	case reflect.Int64:
		return int(field.Int64(ptr))
	}
	return field.Int(ptr)
}

func setIntValue(field *xunsafe.Field, ptr unsafe.Pointer, value int) {
	switch field.Type.Kind() {
	case reflect.Int8:
		field.SetInt8(ptr, int8(value))
	case reflect.Int16:
		field.SetInt16(ptr, int16(value))
	case reflect.Int32:
		field.SetInt32(ptr, int32(value))
	case reflect.Int64:
		field.SetInt64(ptr, int64(value))
	default:
		field.SetInt(ptr, value)
	}
}
