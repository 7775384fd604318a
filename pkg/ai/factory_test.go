package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExtractorService_Gemini(t *testing.T) {
	svc, err := NewExtractorService(Config{Provider: ProviderGemini, GeminiAPIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &GeminiService{}, svc)
}

func TestNewExtractorService_GeminiRequiresKey(t *testing.T) {
	_, err := NewExtractorService(Config{Provider: ProviderGemini})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")
}

func TestNewExtractorService_Ollama(t *testing.T) {
	svc, err := NewExtractorService(Config{Provider: ProviderOllama, OllamaBaseURL: "http://localhost:11434", OllamaModel: "llama3"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaService{}, svc)
}

func TestNewExtractorService_AutoPrefersGemini(t *testing.T) {
	svc, err := NewExtractorService(Config{Provider: ProviderAuto, GeminiAPIKey: "key"})
	require.NoError(t, err)
	assert.IsType(t, &GeminiService{}, svc)
}

func TestNewExtractorService_AutoFallsBackToOllama(t *testing.T) {
	svc, err := NewExtractorService(Config{Provider: ProviderAuto})
	require.NoError(t, err)
	assert.IsType(t, &OllamaService{}, svc)
}
