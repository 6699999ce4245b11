//go:build unit
// +build unit

package connector

import (
	"testing"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	pkgTesting "github.com/BillBrieferServer/scribe/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAnthropicConnector_MissingAPIKey(t *testing.T) {
	logger := pkgTesting.SetupTestLogger(t)

	settings := &config.AnthropicSettings{Model: "claude-sonnet-4-20250514"}

	_, err := NewAnthropicConnector(settings, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestNewWhisperConnector_MissingAPIKey(t *testing.T) {
	logger := pkgTesting.SetupTestLogger(t)

	settings := &config.OpenAISettings{}

	_, err := NewWhisperConnector(settings, logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "api key")
}

func TestStripCodeFence(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain JSON", `{"gender": null}`, `{"gender": null}`},
		{"Fenced JSON", "```\n{\"gender\": null}\n```", `{"gender": null}`},
		{"Fenced with language tag", "```json\n{\"gender\": null}\n```", `{"gender": null}`},
		{"Fence without closing line", "```json\n{\"gender\": null}", `{"gender": null}`},
		{"Surrounding whitespace", "  \n{\"gender\": null}\n  ", `{"gender": null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, stripCodeFence(tt.input))
		})
	}
}

func TestFormatPatientContext(t *testing.T) {
	gender := "Female"
	age := "45"
	empty := ""

	tests := []struct {
		name     string
		input    *dictation.Demographics
		expected string
	}{
		{"Nil demographics", nil, ""},
		{"Empty demographics", &dictation.Demographics{}, ""},
		{"Gender and age", &dictation.Demographics{Gender: &gender, Age: &age},
			"Patient Gender: Female\nPatient Age: 45"},
		{"Empty strings skipped", &dictation.Demographics{Gender: &empty, Age: &age},
			"Patient Age: 45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatPatientContext(tt.input))
		})
	}
}
