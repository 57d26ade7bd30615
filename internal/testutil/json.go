package testutil

import "github.com/bytedance/sonic"

// DecodeJSON decodes data with the same codec the client uses
func DecodeJSON(data []byte, v any) error {
	return sonic.ConfigStd.Unmarshal(data, v)
}
