package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BillBrieferServer/scribe/internal/domain/dictation"
	"github.com/BillBrieferServer/scribe/internal/pkg/config"
	"github.com/BillBrieferServer/scribe/internal/pkg/logger"
	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const extractSystemPrompt = `You are a medical transcription assistant. Analyze the following physician dictation and extract patient demographics and visit information.

Return a JSON object with these fields:
- gender: "Male", "Female", or null if not mentioned
- age: Patient age as string (e.g., "45", "3 months") or null if not mentioned
- visitType: One of "New Patient", "Follow-up", "Annual Exam", "Urgent", "Consultation", or null if unclear
- specialty: Medical specialty if apparent (e.g., "Family Medicine", "Cardiology", "Pediatrics") or null
- chiefComplaint: Brief chief complaint (e.g., "chest pain", "annual wellness") or null
- confidence: Float 0-1 indicating overall confidence in extractions

Only return valid JSON, no other text.`

const soapSystemPrompt = `You are a medical scribe assistant helping physicians create SOAP notes from their dictations.

Generate a properly formatted SOAP note following this structure:

**SUBJECTIVE**
- Chief Complaint (CC)
- History of Present Illness (HPI)
- Review of Systems (ROS)
- Past Medical History (PMH) if mentioned
- Medications if mentioned
- Allergies if mentioned
- Social/Family History if mentioned

**OBJECTIVE**
- Vital Signs if mentioned
- Physical Exam findings
- Lab/Imaging results if mentioned

**ASSESSMENT**
- Primary diagnosis or differential diagnoses
- Problem list

**PLAN**
- Treatment plan
- Medications prescribed/changed
- Follow-up instructions
- Patient education
- Referrals if applicable

Guidelines:
- Use professional medical terminology
- Be concise but complete
- Include only information explicitly stated or clearly implied
- Use standard medical abbreviations appropriately
- Format with clear sections and bullet points
- If information for a section is not provided, omit that section
- Do not fabricate or assume information not in the dictation`

const (
	extractMaxTokens = 500
	soapMaxTokens    = 2000
)

// anthropicConnector implements the dictation.ModelConnector interface using
// the Anthropic Messages API.
type anthropicConnector struct {
	client anthropic.Client
	model  anthropic.Model
	logger logger.Logger
}

// NewAnthropicConnector creates a new Anthropic-backed ModelConnector
func NewAnthropicConnector(settings *config.AnthropicSettings, logger logger.Logger) (dictation.ModelConnector, error) {
	if settings.APIKey == "" {
		return nil, fmt.Errorf("anthropic api key is not configured")
	}

	client := anthropic.NewClient(option.WithAPIKey(settings.APIKey))

	return &anthropicConnector{
		client: client,
		model:  anthropic.Model(settings.Model),
		logger: logger,
	}, nil
}

// demographicsPayload mirrors the JSON shape the extraction prompt requests.
type demographicsPayload struct {
	Gender         *string  `json:"gender"`
	Age            *string  `json:"age"`
	VisitType      *string  `json:"visitType"`
	Specialty      *string  `json:"specialty"`
	ChiefComplaint *string  `json:"chiefComplaint"`
	Confidence     *float64 `json:"confidence"`
}

// ExtractDemographics asks the model for structured demographics.
func (c *anthropicConnector) ExtractDemographics(ctx context.Context, dictationText string) (*dictation.Demographics, error) {
	text, err := c.complete(ctx, extractSystemPrompt, dictationText, extractMaxTokens)
	if err != nil {
		return nil, err
	}

	var payload demographicsPayload
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &payload); err != nil {
		c.logger.Error("Failed to decode extraction response: ", err)
		return nil, fmt.Errorf("%w: %v", dictation.ErrModelResponse, err)
	}

	confidence := 0.5
	if payload.Confidence != nil {
		confidence = *payload.Confidence
	}

	return &dictation.Demographics{
		Gender:         payload.Gender,
		Age:            payload.Age,
		VisitType:      payload.VisitType,
		Specialty:      payload.Specialty,
		ChiefComplaint: payload.ChiefComplaint,
		Confidence:     confidence,
	}, nil
}

// GenerateSOAPNote asks the model for a formatted SOAP note.
func (c *anthropicConnector) GenerateSOAPNote(ctx context.Context, dictationText string, demographics *dictation.Demographics) (string, error) {
	userMessage := fmt.Sprintf(
		"Patient Context:\n%s\n\nPhysician Dictation:\n%s\n\nPlease generate a complete SOAP note from this dictation.",
		formatPatientContext(demographics), dictationText,
	)

	text, err := c.complete(ctx, soapSystemPrompt, userMessage, soapMaxTokens)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(text), nil
}

// complete sends a single-turn message and returns the first text block.
func (c *anthropicConnector) complete(ctx context.Context, systemPrompt, userMessage string, maxTokens int64) (string, error) {
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     c.model,
		MaxTokens: maxTokens,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("message request failed: %w", err)
	}

	if len(message.Content) == 0 {
		return "", fmt.Errorf("%w: empty content", dictation.ErrModelResponse)
	}

	return message.Content[0].Text, nil
}

// formatPatientContext renders the known demographics as prompt context lines.
func formatPatientContext(d *dictation.Demographics) string {
	if d == nil {
		return ""
	}

	var parts []string
	appendPart := func(label string, value *string) {
		if value != nil && *value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", label, *value))
		}
	}
	appendPart("Patient Gender", d.Gender)
	appendPart("Patient Age", d.Age)
	appendPart("Visit Type", d.VisitType)
	appendPart("Specialty", d.Specialty)
	appendPart("Chief Complaint", d.ChiefComplaint)

	return strings.Join(parts, "\n")
}

// stripCodeFence removes a surrounding markdown code fence when the model
// wraps its JSON answer in one.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	lines := strings.Split(text, "\n")
	if len(lines) > 1 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
		lines = lines[1 : len(lines)-1]
	} else {
		lines = lines[1:]
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}
