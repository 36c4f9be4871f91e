// Package pb binds calendar values to protobuf well known and google.type messages.
package pb

import (
	"reflect"

	"github.com/viant/caltime"
	"github.com/viant/caltime/conv"
	"github.com/viant/caltime/zone"
	"google.golang.org/genproto/googleapis/type/datetime"
	"google.golang.org/protobuf/types/known/timestamppb"
)

var (
	timestampPtrType      = reflect.TypeOf((*caltime.Timestamp)(nil))
	calendarPtrType       = reflect.TypeOf((*caltime.Calendar)(nil))
	protoTimestampPtrType = reflect.TypeOf((*timestamppb.Timestamp)(nil))
	dateTimePtrType       = reflect.TypeOf((*datetime.DateTime)(nil))
)

// Register registers protobuf conversions with the converter
func Register(c *conv.Converter) {
	c.RegisterConversion(timestampPtrType, protoTimestampPtrType, func(src interface{}, dest interface{}, opts conv.Options) error {
		*(dest.(**timestamppb.Timestamp)) = TimestampToProto(src.(*caltime.Timestamp))
		return nil
	})
	c.RegisterConversion(protoTimestampPtrType, timestampPtrType, func(src interface{}, dest interface{}, opts conv.Options) error {
		p := src.(*timestamppb.Timestamp)
		target := dest.(**caltime.Timestamp)
		if p == nil {
			*target = nil
			return nil
		}
		if opts.Resolver == nil {
			return zone.ErrUnconfigured
		}
		z, err := opts.Resolver.Default()
		if err != nil {
			return err
		}
		ts, err := TimestampFromProto(p, z)
		if err != nil {
			return err
		}
		*target = ts
		return nil
	})
	c.RegisterConversion(calendarPtrType, dateTimePtrType, func(src interface{}, dest interface{}, opts conv.Options) error {
		dt, err := CalendarToDateTime(src.(*caltime.Calendar))
		if err != nil {
			return err
		}
		*(dest.(**datetime.DateTime)) = dt
		return nil
	})
	c.RegisterConversion(dateTimePtrType, calendarPtrType, func(src interface{}, dest interface{}, opts conv.Options) error {
		cal, err := CalendarFromDateTime(src.(*datetime.DateTime))
		if err != nil {
			return err
		}
		*(dest.(**caltime.Calendar)) = cal
		return nil
	})
	c.RegisterConversion(dateTimePtrType, timestampPtrType, func(src interface{}, dest interface{}, opts conv.Options) error {
		cal, err := CalendarFromDateTime(src.(*datetime.DateTime))
		if err != nil {
			return err
		}
		ts, err := conv.NewCalendarToTimestamp(opts).Convert(cal)
		if err != nil {
			return err
		}
		*(dest.(**caltime.Timestamp)) = ts
		return nil
	})
}
