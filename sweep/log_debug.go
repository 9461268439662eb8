//go:build debug

package sweep

import (
	"log"
	"os"
)

var logger = log.New(os.Stderr, "[polyclip sweep DEBUG] ", log.LstdFlags)

func debugf(format string, v ...any) {
	logger.Printf(format, v...)
}
