package strutil

import "github.com/indigo-web/picohttp/internal/hexconv"

// Atoi converts str into an unsigned integer of the given base (2 to 16). Conversion stops at
// the first space, so trailing garbage after it is ignored. The result is not ok if str holds
// no digits, or a character which is not a digit of the base, or if the value overflows.
func Atoi(str string, base uint32) (num uint32, ok bool) {
	if base < 2 || base > 16 {
		return 0, false
	}

	var i int
	for ; i < len(str) && str[i] != ' '; i++ {
		digit := hexconv.Halfbyte[str[i]]
		if uint32(digit) >= base {
			return 0, false
		}

		next := num*base + uint32(digit)
		if next/base != num {
			return 0, false
		}

		num = next
	}

	return num, i > 0
}
