package env

import (
	"strings"
	"testing"
	"time"
)

type sampleConfig struct {
	Addr     string        `env:"HTTP_ADDR"`
	Window   int           `env:"HISTORY_WINDOW_SIZE"`
	Enabled  bool          `env:"ENABLE_HTTP"`
	Timeout  time.Duration `env:"MODEL_TIMEOUT"`
	Disabled bool          `env:"ENABLE_TELEGRAM"`
	ignored  string        `env:"IGNORED"`
	NoTag    string
}

func TestMarshalEnv(t *testing.T) {
	cfg := &sampleConfig{
		Addr:    ":8000",
		Window:  10,
		Enabled: true,
		Timeout: 60 * time.Second,
	}

	out, err := MarshalEnv(cfg)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{
		"HTTP_ADDR=:8000",
		"HISTORY_WINDOW_SIZE=10",
		"ENABLE_HTTP=true",
		"MODEL_TIMEOUT=1m0s",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	// Zero values and unexported fields stay out of the file
	if strings.Contains(out, "ENABLE_TELEGRAM") {
		t.Errorf("zero value leaked:\n%s", out)
	}
	if strings.Contains(out, "IGNORED") {
		t.Errorf("unexported field leaked:\n%s", out)
	}
}

func TestMarshalEnvTagOptions(t *testing.T) {
	cfg := &struct {
		Token string `env:"TELEGRAM_TOKEN,required,notEmpty"`
	}{Token: "abc"}

	out, err := MarshalEnv(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "TELEGRAM_TOKEN=abc") {
		t.Errorf("tag options should be stripped from the key:\n%s", out)
	}
}
