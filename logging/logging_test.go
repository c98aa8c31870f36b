package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		"INFO":    zerolog.InfoLevel,
		" warn ":  zerolog.WarnLevel,
		"Error":   zerolog.ErrorLevel,
		"trace":   zerolog.TraceLevel,
		"off":     zerolog.Disabled,
		"verbose": zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "level %q", in)
	}
}

func TestNew_FiltersAndFormats(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	log.Warn().Str("driver", "sqlite").Msg("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
	assert.Contains(t, out, "driver=sqlite")
	assert.NotContains(t, out, "\x1b[", "expected no color escapes")
}

func TestOpenFile_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "logs")
	start := time.Date(2024, 3, 9, 14, 5, 6, 0, time.UTC)

	f, err := OpenFile(dir, start)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, filepath.Join(dir, "space-cannon_20240309_140506.log"), f.Name())

	log := New(f, zerolog.InfoLevel)
	log.Info().Msg("written")
	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "written"))
}

func TestSampled_ThrottlesBurst(t *testing.T) {
	var buf bytes.Buffer
	log := Sampled(New(&buf, zerolog.InfoLevel))

	for i := 0; i < 50; i++ {
		log.Info().Int("i", i).Msg("contact")
	}
	lines := strings.Count(buf.String(), "\n")
	assert.Less(t, lines, 50)
	assert.GreaterOrEqual(t, lines, 5)
}
