//go:build !production

package logging

// Debug reports whether this is a development build.
const Debug = true
