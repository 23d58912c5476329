package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestConfigure_JSONWithConnField(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "debug", Format: "json", Output: &buf})
	defer Init()

	if Log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("Expected debug level, got %s", Log.GetLevel())
	}

	ForConn("c-1").Info("hello")

	var line map[string]any
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("log line is not JSON: %v (%q)", err, buf.String())
	}
	if line["conn_id"] != "c-1" {
		t.Errorf("Expected conn_id field, got %v", line["conn_id"])
	}
	if line["msg"] != "hello" {
		t.Errorf("Expected msg=hello, got %v", line["msg"])
	}
}

func TestConfigure_BadLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	Configure(Options{Level: "chatty", Output: &buf})
	defer Init()

	if Log.GetLevel() != logrus.InfoLevel {
		t.Errorf("Expected info level, got %s", Log.GetLevel())
	}
}
