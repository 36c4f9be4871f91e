package caltime

import (
	"github.com/francoispqt/gojay"
)

// MarshalJSONObject encodes set fields only
func (c *Calendar) MarshalJSONObject(enc *gojay.Encoder) {
	for _, field := range Fields {
		if value, ok := c.Get(field); ok {
			enc.IntKey(field.Key(), value)
		}
	}
}

// IsNil returns true for nil calendar
func (c *Calendar) IsNil() bool {
	return c == nil
}

// UnmarshalJSONObject decodes a field; null leaves the field undefined
func (c *Calendar) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	field, ok := FieldByName(key)
	if !ok {
		return nil
	}
	var value *int
	if err := dec.IntNull(&value); err != nil {
		return err
	}
	if value == nil {
		*c = c.Without(field)
		return nil
	}
	*c = c.With(field, *value)
	return nil
}

// NKeys returns 0, all keys are decoded
func (c *Calendar) NKeys() int {
	return 0
}

// MarshalJSON encodes calendar as JSON object
func (c Calendar) MarshalJSON() ([]byte, error) {
	return gojay.MarshalJSONObject(&c)
}

// UnmarshalJSON decodes calendar JSON object
func (c *Calendar) UnmarshalJSON(data []byte) error {
	*c = Calendar{}
	return gojay.UnmarshalJSONObject(data, c)
}
