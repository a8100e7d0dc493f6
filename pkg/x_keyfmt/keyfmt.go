// Package x_keyfmt renders raw byte keys for diagnostics.
package x_keyfmt

const hexDigits = "0123456789abcdef"

const (
	charPrefix = "char key:["
	hexPrefix  = "hex key:[0x"
)

// IsPrintable reports whether every byte of key is printable ASCII.
func IsPrintable(key []byte) bool {
	for _, c := range key {
		if c < 0x20 || c > 0x7e {
			return false
		}
	}
	return true
}

// Printable renders key as "char key:[text]" when all of its bytes are
// printable, otherwise as "hex key:[0x..]".
func Printable(key []byte) string {
	return string(AppendPrintable(nil, key, 0))
}

// AppendPrintable appends the rendering of key to dst. A positive limit
// bounds the appended bytes, closing bracket included; the key text is
// truncated to fit.
func AppendPrintable(dst, key []byte, limit int) []byte {
	start := len(dst)
	fits := func(extra int) bool {
		return limit <= 0 || len(dst)-start+extra <= limit
	}

	if IsPrintable(key) {
		dst = append(dst, charPrefix...)
		for _, c := range key {
			if !fits(2) {
				break
			}
			dst = append(dst, c)
		}
		return append(dst, ']')
	}

	dst = append(dst, hexPrefix...)
	for _, c := range key {
		if !fits(3) {
			break
		}
		dst = append(dst, hexDigits[c>>4], hexDigits[c&0x0f])
	}
	return append(dst, ']')
}
