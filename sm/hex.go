package sm

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ToHex encodes data with the 0x prefix the host natives exchange.
func ToHex(data []byte) string {
	return "0x" + hex.EncodeToString(data)
}

func DecodeHex(data string) ([]byte, error) {
	if !strings.HasPrefix(data, "0x") {
		return nil, fmt.Errorf("invalid bytes: %s hex bytes should start with 0x", data)
	}
	return hex.DecodeString(data[2:])
}
