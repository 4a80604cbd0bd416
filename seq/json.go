package seq

import (
	"github.com/francoispqt/gojay"

	"github.com/structkit/fieldseed"
)

type objectFields struct {
	items []fieldseed.NamedField[interface{}]
}

func (o *objectFields) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	var value interface{}
	if err := dec.Interface(&value); err != nil {
		return err
	}
	o.items = append(o.items, fieldseed.NamedField[interface{}]{Name: key, Value: value})
	return nil
}

func (o *objectFields) NKeys() int {
	return 0
}

// FromJSON decodes a single JSON object into a field sequence, one named
// field per key in document order. Numbers decode as float64, nested objects
// as map[string]interface{}.
func FromJSON(data []byte) (fieldseed.Sequence[interface{}], error) {
	holder := &objectFields{}
	if err := gojay.UnmarshalJSONObject(data, holder); err != nil {
		return nil, err
	}
	return Of(holder.items...), nil
}
