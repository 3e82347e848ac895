package common

// WipeByteArray overwrites b with zeros. Used on password prompt buffers once
// the request is built; copies made into strings are not reached. A nil slice
// is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
