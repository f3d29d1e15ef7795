package address

import (
	"fmt"
	"strings"

	"github.com/indigo-web/picohttp/internal/strutil"
)

// ParseIPv4 parses the dotted form of an IPv4 address. Every octet is either decimal or,
// being prefixed by 0x, hexadecimal: 192.168.0.1 and 0xC0.0xA8.0x0.0x1 are the same address.
func ParseIPv4(addr string) (ip [4]byte, err error) {
	rest := addr

	for i := range ip {
		var octet string
		if i < len(ip)-1 {
			dot := strings.IndexByte(rest, '.')
			if dot == -1 {
				return ip, fmt.Errorf("too few octets: %q", addr)
			}

			octet, rest = rest[:dot], rest[dot+1:]
		} else {
			octet = rest
		}

		base := uint32(10)
		if len(octet) > 2 && octet[0] == '0' && (octet[1] == 'x' || octet[1] == 'X') {
			octet, base = octet[2:], 16
		}

		num, ok := strutil.Atoi(octet, base)
		if !ok || num > 0xff || strings.IndexByte(octet, ' ') != -1 {
			return ip, fmt.Errorf("invalid octet: %q", octet)
		}

		ip[i] = byte(num)
	}

	return ip, nil
}
