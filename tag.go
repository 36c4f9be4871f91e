package caltime

import (
	"reflect"
	"strings"
)

const (
	//SetMarkerTag defines set marker tag
	SetMarkerTag = "setMarker"

	presenceMarkerTag = "presenceMarker"

	presenceTagFragment = "presence=true"
)

// IsSetMarker returns true if struct field holds field presence flags
func IsSetMarker(tag reflect.StructTag) bool {
	if _, ok := tag.Lookup(SetMarkerTag); ok {
		return true
	}
	if _, ok := tag.Lookup(presenceMarkerTag); ok {
		return true
	}
	return strings.Contains(string(tag), presenceTagFragment)
}
