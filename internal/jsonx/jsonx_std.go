//go:build !CONFIG_USE_SONIC

package jsonx

import "encoding/json"

func unmarshal(data []byte, v interface{}) error {
	if err := json.Unmarshal(data, v); err != nil {
		return wrapDecodeError("json decode failed", err)
	}
	return nil
}

func marshal(v interface{}) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, wrapDecodeError("json encode failed", err)
	}
	return data, nil
}
