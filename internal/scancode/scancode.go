// Package scancode maps PS/2 scan code set 2 values to ASCII characters.
package scancode

// Distinguished scan code values that never translate to a character.
const (
	// Break prefixes the scan code of a key that was released.
	Break = 0xf0
	// LeftShift and RightShift latch the shifted translation table while held.
	LeftShift  = 0x12
	RightShift = 0x59
)

// Control characters produced by the tables.
const (
	charBackspace = 0x08
	charTab       = 0x09
	charLineFeed  = 0x0a
	charEscape    = 0x1b
)

// tableSize is the scan code domain covered by the translation tables.
// Set 2 base codes fit in 7 bits; anything larger is either a protocol
// byte (0xF0, 0xE0, responses) or noise.
const tableSize = 128

// lower maps scan codes to unshifted ASCII, 16 entries per row.
var lower = [tableSize]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, charTab, '`', 0,
	0, 0, 0, 0, 0, 'q', '1', 0, 0, 0, 'z', 's', 'a', 'w', '2', 0,
	0, 'c', 'x', 'd', 'e', '4', '3', 0, 0, ' ', 'v', 'f', 't', 'r', '5', 0,
	0, 'n', 'b', 'h', 'g', 'y', '6', 0, 0, 0, 'm', 'j', 'u', '7', '8', 0,
	0, ',', 'k', 'i', 'o', '0', '9', 0, 0, '.', '/', 'l', ';', 'p', '-', 0,
	0, 0, '\'', 0, '[', '=', 0, 0, 0, 0, charLineFeed, ']', 0, '\\', 0, 0,
	0, 0, 0, 0, 0, 0, charBackspace, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, charEscape, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// upper is the shifted variant of lower: letters uppercased, number row
// and punctuation replaced by their shifted symbols.
var upper = [tableSize]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, charTab, '~', 0,
	0, 0, 0, 0, 0, 'Q', '!', 0, 0, 0, 'Z', 'S', 'A', 'W', '@', 0,
	0, 'C', 'X', 'D', 'E', '$', '#', 0, 0, ' ', 'V', 'F', 'T', 'R', '%', 0,
	0, 'N', 'B', 'H', 'G', 'Y', '^', 0, 0, 0, 'M', 'J', 'U', '&', '*', 0,
	0, '<', 'K', 'I', 'O', ')', '(', 0, 0, '>', '?', 'L', ':', 'P', '_', 0,
	0, 0, '"', 0, '{', '+', 0, 0, 0, 0, charLineFeed, '}', 0, '|', 0, 0,
	0, 0, 0, 0, 0, 0, charBackspace, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 0, 0, 0, charEscape, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Lookup translates a scan code into an ASCII byte using the shifted or
// unshifted table. It returns 0 for unmapped codes and for codes outside
// the table domain.
func Lookup(code byte, shifted bool) byte {
	if code >= tableSize {
		return 0
	}
	if shifted {
		return upper[code]
	}
	return lower[code]
}

// Keystroke describes the key transition that produces a character:
// the base scan code plus whether a shift key must be held.
type Keystroke struct {
	Code    byte
	Shifted bool
}

// KeystrokeFor returns the keystroke that types ch on the US layout.
// The second result is false for characters no key produces.
func KeystrokeFor(ch byte) (Keystroke, bool) {
	if ch == 0 {
		// Zero marks unmapped table entries, not a character.
		return Keystroke{}, false
	}
	for code := 1; code < tableSize; code++ {
		if lower[code] == ch {
			return Keystroke{Code: byte(code)}, true
		}
	}
	for code := 1; code < tableSize; code++ {
		if upper[code] == ch {
			return Keystroke{Code: byte(code), Shifted: true}, true
		}
	}
	return Keystroke{}, false
}
