// Package connector contains clients for external model providers: the
// Anthropic Messages API for drafting and the OpenAI transcription API for
// speech-to-text. Both are kept behind domain interfaces so the providers
// can be swapped without touching application services.
package connector
