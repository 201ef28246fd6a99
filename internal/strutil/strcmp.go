package strutil

// CmpFold compares two ASCII strings case-insensitively. Only letters are folded, so
// control characters never compare equal to punctuation (e.g. '\r' and '-'.)
func CmpFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}

	for i := 0; i < len(a); i++ {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

// CmpFoldBytes is CmpFold for byte slices.
func CmpFoldBytes(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if lower(a[i]) != lower(b[i]) {
			return false
		}
	}

	return true
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c | 0x20
	}

	return c
}
