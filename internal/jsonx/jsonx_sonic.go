//go:build CONFIG_USE_SONIC

package jsonx

import "github.com/bytedance/sonic"

var sonicAPI = sonic.ConfigFastest

func unmarshal(data []byte, v interface{}) error {
	if err := sonicAPI.Unmarshal(data, v); err != nil {
		return wrapDecodeError("sonic decode failed", err)
	}
	return nil
}

func marshal(v interface{}) ([]byte, error) {
	data, err := sonicAPI.Marshal(v)
	if err != nil {
		return nil, wrapDecodeError("sonic encode failed", err)
	}
	return data, nil
}
