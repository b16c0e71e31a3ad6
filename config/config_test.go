package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
log:
  level: debug
  format: json
statement:
  format: html
movies:
  - title: Regent
    category: regular
  - title: Newton
    category: new_release
customers:
  - name: Smith
    rentals:
      - movie: Regent
        days: 2
      - movie: Newton
        days: 3
`

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statement.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, FormatHTML, cfg.Statement.Format)
	assert.Equal(t, []MovieConfig{{"Regent", "regular"}, {"Newton", "new_release"}}, cfg.Movies)
	require.Len(t, cfg.Customers, 1)
	assert.Equal(t, "Smith", cfg.Customers[0].Name)
	assert.Equal(t, []RentalConfig{{"Regent", 2}, {"Newton", 3}}, cfg.Customers[0].Rentals)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Reading config file failed")
}

func TestDefaults(t *testing.T) {
	cfg, err := Parse([]byte("movies: []\n"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, FormatText, cfg.Statement.Format)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("STATEMENT_FORMAT", "TEXT")

	cfg, err := Parse([]byte(sample))
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, FormatText, cfg.Statement.Format)
}

func TestInvalidConfig(t *testing.T) {
	testCases := []struct {
		yaml     string
		expected string
	}{
		{"log: {level: loud}", `Invalid config: Unknown log level "loud"`},
		{"log: {format: xml}", `Invalid config: Unknown log format "xml"`},
		{"statement: {format: pdf}", `Invalid config: Unknown statement format "pdf"`},
		{"movies: [{category: regular}]", "Invalid config: Movie 1 has no title"},
		{"movies: [{title: A, category: regular}, {title: A, category: regular}]", `Invalid config: Movie "A" is listed more than once`},
		{"movies: [{title: A, category: horror}]", `Invalid config: Movie "A": unknown movie category "horror": invalid argument`},
		{"customers: [{rentals: []}]", "Invalid config: Customer 1 has no name"},
		{"customers: [{name: Smith, rentals: [{movie: B, days: 1}]}]", `Invalid config: Customer "Smith" rents unknown movie "B"`},
		{"movies: [{title: A, category: regular}]\ncustomers: [{name: Smith, rentals: [{movie: A, days: 0}]}]", `Invalid config: Customer "Smith" rents "A" for 0 days, at least one day is required`},
	}

	for _, tt := range testCases {
		_, err := Parse([]byte(tt.yaml))
		require.Error(t, err, tt.yaml)
		assert.Equal(t, tt.expected, err.Error())
	}
}

func TestMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("movies: ["))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "Parsing config failed")
}
