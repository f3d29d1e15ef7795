package address

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseIPv4(t *testing.T) {
	t.Run("decimal", func(t *testing.T) {
		ip, err := ParseIPv4("192.168.0.1")
		require.NoError(t, err)
		require.Equal(t, [4]byte{192, 168, 0, 1}, ip)
	})

	t.Run("hexadecimal", func(t *testing.T) {
		ip, err := ParseIPv4("0xC0.0xa8.0x0.0x1")
		require.NoError(t, err)
		require.Equal(t, [4]byte{192, 168, 0, 1}, ip)
	})

	t.Run("mixed", func(t *testing.T) {
		ip, err := ParseIPv4("10.0xFF.255.0")
		require.NoError(t, err)
		require.Equal(t, [4]byte{10, 255, 255, 0}, ip)
	})

	t.Run("too few octets", func(t *testing.T) {
		_, err := ParseIPv4("10.0.1")
		require.EqualError(t, err, `too few octets: "10.0.1"`)
	})

	t.Run("too many octets", func(t *testing.T) {
		_, err := ParseIPv4("10.0.0.1.5")
		require.EqualError(t, err, `invalid octet: "1.5"`)
	})

	t.Run("overflowing octet", func(t *testing.T) {
		_, err := ParseIPv4("10.0.0.256")
		require.EqualError(t, err, `invalid octet: "256"`)
	})

	t.Run("empty octet", func(t *testing.T) {
		_, err := ParseIPv4("10..0.1")
		require.Error(t, err)
		_, err = ParseIPv4("")
		require.Error(t, err)
	})

	t.Run("spaces", func(t *testing.T) {
		_, err := ParseIPv4("10.0.0.1 ")
		require.Error(t, err)
	})
}
