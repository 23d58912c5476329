package engine

import (
	"apple-chase/pkg/logger"
	"io"
	"os"
	"testing"
)

func TestMain(m *testing.M) {
	logger.Configure(logger.Options{Level: "error", Output: io.Discard})
	os.Exit(m.Run())
}
