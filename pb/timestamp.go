package pb

import (
	"github.com/viant/caltime"
	"github.com/viant/caltime/zone"
	"google.golang.org/protobuf/types/known/timestamppb"
)

// TimestampToProto translates timestamp to protobuf Timestamp, the zone is not carried
func TimestampToProto(ts *caltime.Timestamp) *timestamppb.Timestamp {
	if ts == nil {
		return nil
	}
	return timestamppb.New(ts.Time())
}

// TimestampFromProto translates protobuf Timestamp to timestamp in the supplied zone
func TimestampFromProto(p *timestamppb.Timestamp, z zone.Zone) (*caltime.Timestamp, error) {
	if p == nil {
		return nil, nil
	}
	if err := p.CheckValid(); err != nil {
		return nil, err
	}
	if z.IsZero() {
		return nil, zone.ErrUnconfigured
	}
	return caltime.TimestampOf(p.AsTime().In(z.Location()))
}
