//go:build !debug

package sweep

func debugf(format string, v ...any) {}
