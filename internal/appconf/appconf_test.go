package appconf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvFlagToEnvironment(t *testing.T) {
	tests := []struct {
		flag     string
		expected Environment
	}{
		{"development", Development},
		{"test", Test},
		{"Production", Production},
		{"staging", Production},
		{"", Development},
		{"whatever", Development},
	}

	for _, tt := range tests {
		t.Run(tt.flag, func(t *testing.T) {
			assert.Equal(t, tt.expected, EnvFlagToEnvironment(tt.flag))
		})
	}
}

func TestConfigOrigins(t *testing.T) {
	assert.Equal(t, []string{DefaultAllowedOrigin}, Config{}.Origins())
	assert.Equal(t, []string{DefaultAllowedOrigin}, Config{AllowedOrigins: []string{" ", ""}}.Origins())
	assert.Equal(t,
		[]string{"https://a.example", "https://b.example"},
		Config{AllowedOrigins: []string{"https://a.example", " https://b.example "}}.Origins())
}
