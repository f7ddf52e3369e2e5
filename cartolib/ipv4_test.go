package cartolib_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/9seconds/cartographer/cartolib"
)

func TestParseAddrOK(t *testing.T) {
	testCases := map[string]uint32{
		"0.0.0.0":         0,
		"0.0.0.1":         1,
		"1.0.0.5":         16777221,
		"8.8.8.8":         134744072,
		"127.0.0.1":       2130706433,
		"255.255.255.255": 4294967295,
	}

	for addr, expected := range testCases {
		value, err := cartolib.ParseAddr(addr)

		assert.NoError(t, err)
		assert.Equal(t, expected, value)
	}
}

func TestParseAddrInvalid(t *testing.T) {
	testCases := []string{
		"",
		"abc",
		"999.1.2.3",
		"1.0.0.300",
		"1.2.3",
		"1.2.3.4.5",
		"1.2.3.",
		".1.2.3",
		"1.2.3.-4",
		"2001:db8::1",
		"::ffff:1.2.3.4",
		"1.2.3.4 ",
	}

	for _, addr := range testCases {
		_, err := cartolib.ParseAddr(addr)

		assert.Error(t, err, addr)
		assert.True(t, errors.Is(err, cartolib.ErrInvalidAddress), addr)
	}
}

func TestAddrRoundTrip(t *testing.T) {
	octets := []int{0, 1, 9, 10, 99, 100, 127, 128, 199, 200, 255}

	for _, a := range octets {
		for _, b := range octets {
			for _, c := range octets {
				for _, d := range octets {
					addr := fmt.Sprintf("%d.%d.%d.%d", a, b, c, d)

					value, err := cartolib.ParseAddr(addr)

					assert.NoError(t, err)
					assert.Equal(t, addr, cartolib.FormatAddr(value))
				}
			}
		}
	}
}
