package conv

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"

	ftime "github.com/viant/caltime/format/time"
	"github.com/viant/caltime/zone"
	"github.com/viant/tagly/format"
)

// DefaultDateLayout is the default layout used for string conversions when no layout is specified
const DefaultDateLayout = "2006-01-02T15:04:05.000Z07:00"

// Options contains configuration for the converter
type Options struct {
	// Resolver resolves the default zone for values without an offset
	Resolver zone.Resolver
	// DateLayout specifies the layout for string conversions
	DateLayout string
	// FormatTag overrides DateLayout with its TimeLayout or DateFormat
	FormatTag *format.Tag
	// Logger logs values converted to no value, nil disables logging
	Logger *slog.Logger
}

// DefaultOptions returns default conversion options
func DefaultOptions() Options {
	return Options{
		Resolver:   zone.Environment{},
		DateLayout: DefaultDateLayout,
	}
}

// TimeLayout returns effective string layout
func (o *Options) TimeLayout() string {
	if tag := o.FormatTag; tag != nil {
		if tag.TimeLayout != "" {
			return tag.TimeLayout
		}
		if tag.DateFormat != "" {
			return ftime.DateFormatToTimeLayout(tag.DateFormat)
		}
	}
	if o.DateLayout != "" {
		return o.DateLayout
	}
	return DefaultDateLayout
}

// Converter provides type pair conversion lookup
type Converter struct {
	options       Options
	customConvMap sync.Map // map[typeKey]ConversionFunc
}

// ConversionFunc defines a conversion function, dest is a pointer to the destination type
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// NewConverter creates a new converter with builtin calendar conversions registered
func NewConverter(options Options) *Converter {
	ret := &Converter{
		options: options,
	}
	ret.registerBuiltins()
	return ret
}

// Options returns converter options
func (c *Converter) Options() Options {
	return c.options
}

// RegisterConversion registers a conversion function between source and destination types
func (c *Converter) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	c.customConvMap.Store(typeKey{srcType, destType}, fn)
}

// Lookup returns conversion function registered for the type pair
func (c *Converter) Lookup(srcType, destType reflect.Type) (ConversionFunc, bool) {
	v, ok := c.customConvMap.Load(typeKey{srcType, destType})
	if !ok {
		return nil, false
	}
	return v.(ConversionFunc), true
}

// Convert converts the source value to the destination pointer
func (c *Converter) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil // Nothing to convert
	}
	srcValue := reflect.ValueOf(src)
	srcType := srcValue.Type()
	destType := destValue.Elem().Type()
	if fn, ok := c.Lookup(srcType, destType); ok {
		return fn(src, dest, c.options)
	}
	if srcType.AssignableTo(destType) {
		destValue.Elem().Set(srcValue)
		return nil
	}
	return fmt.Errorf("unsupported conversion: %v to %v", srcType, destType)
}
