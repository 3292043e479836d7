package pmap

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
)

// MarshalJSON encodes the map as [{"Key":k,"Value":v},...] in
// insertion order. An empty map encodes as [].
func (m Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Entries())
}

type rawEntry struct {
	Key   json.RawMessage `json:"Key"`
	Value json.RawMessage `json:"Value"`
}

// UnmarshalJSON replaces *m with the map built by adding each decoded
// entry in order. Options already set on *m are kept. An entry whose
// Key or Value is missing or null, whatever the key and value types,
// is reported as an error wrapping ErrInvalidArgument.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	var raws []rawEntry
	if err := json.Unmarshal(data, &raws); err != nil {
		return err
	}
	b := Map[K, V]{opts: m.opts}.AsBuilder()
	for i, raw := range raws {
		key, err := decodeField[K](i, "key", raw.Key)
		if err != nil {
			return err
		}
		value, err := decodeField[V](i, "value", raw.Value)
		if err != nil {
			return err
		}
		b.AddOrUpdate(key, value)
	}
	*m = b.Map()
	return nil
}

func decodeField[T any](i int, arg string, raw json.RawMessage) (T, error) {
	var v T
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return v, absentField(i, arg)
	}
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return v, fmt.Errorf("entry %d: %s: %w", i, arg, err)
	}
	if isAbsent(v) {
		return v, absentField(i, arg)
	}
	return v, nil
}

func absentField(i int, arg string) error {
	return fmt.Errorf("entry %d: %w",
		i, &ArgumentError{Op: "UnmarshalJSON", Arg: arg})
}
