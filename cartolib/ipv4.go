package cartolib

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// ParseAddr converts a dotted-quad IPv4 address into its big-endian
// 32-bit integer representation. Only the 4-octet textual form is
// accepted: IPv6, hostnames and out-of-range octets fail with
// ErrInvalidAddress.
func ParseAddr(addr string) (uint32, error) {
	chunks := strings.Split(addr, ".")
	if len(chunks) != 4 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
	}

	var octets [4]byte

	for i, v := range chunks {
		num, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidAddress, addr)
		}

		octets[i] = byte(num)
	}

	return binary.BigEndian.Uint32(octets[:]), nil
}

// FormatAddr is an inverse of ParseAddr.
func FormatAddr(addr uint32) string {
	var octets [4]byte

	binary.BigEndian.PutUint32(octets[:], addr)

	return fmt.Sprintf("%d.%d.%d.%d",
		octets[0], octets[1], octets[2], octets[3])
}
