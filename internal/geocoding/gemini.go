package geocoding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/UnknownOlympus/hermes/internal/locale"
	"github.com/UnknownOlympus/hermes/internal/models"
	"google.golang.org/genai"
)

// DefaultGeminiModel is the model used when none is configured. It supports
// Google Maps and Google Search grounding.
const DefaultGeminiModel = "gemini-2.5-flash"

// ContentGenerator is the subset of the genai Models service used by the resolver.
// *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(
		ctx context.Context,
		model string,
		contents []*genai.Content,
		config *genai.GenerateContentConfig,
	) (*genai.GenerateContentResponse, error)
}

// ErrGeminiEmptyResponse is returned when the model answers without any candidate.
var ErrGeminiEmptyResponse = errors.New("gemini API returned empty response")

// GeminiResolver resolves coordinates by asking a generative model grounded
// with Google Maps and Google Search, then parsing its labelled-line answer.
type GeminiResolver struct {
	client   ContentGenerator // client is the Gemini models API
	model    string           // model is the Gemini model name
	messages locale.Messages  // messages provides the prompt and label tokens
	parser   *LabelParser     // parser extracts the labelled fields
	log      *slog.Logger     // log is the logger for logging operations
}

// NewGeminiResolver creates a resolver that sends requests to the given model
// using the prompt and labels of msgs.
func NewGeminiResolver(client ContentGenerator, model string, msgs locale.Messages, log *slog.Logger) *GeminiResolver {
	if model == "" {
		model = DefaultGeminiModel
	}

	return &GeminiResolver{
		client:   client,
		model:    model,
		messages: msgs,
		parser:   NewLabelParser(msgs.Labels),
		log:      log,
	}
}

// Resolve asks the model for the postal address at coords. Transport,
// authentication and empty responses fail with models.ErrUpstream. A response
// whose text is empty is not an error here: the address is returned with
// empty fields and the caller decides whether it is acceptable.
func (gr *GeminiResolver) Resolve(ctx context.Context, coords models.Coordinates) (*models.AddressDetails, error) {
	gr.log.DebugContext(ctx, "Resolving using Gemini", "model", gr.model,
		"lat", coords.Latitude, "lon", coords.Longitude)

	resp, err := gr.client.GenerateContent(
		ctx,
		gr.model,
		genai.Text(gr.messages.Prompt(coords)),
		gr.requestConfig(coords),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: gemini request failed: %w", models.ErrUpstream, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("%w: %w", models.ErrUpstream, ErrGeminiEmptyResponse)
	}

	text := resp.Text()
	gr.log.DebugContext(ctx, "Gemini raw response", "text", text)

	addr := gr.parser.Parse(text)

	return &addr, nil
}

// requestConfig enables map and web search grounding centred on coords.
func (gr *GeminiResolver) requestConfig(coords models.Coordinates) *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		Tools: []*genai.Tool{
			{GoogleMaps: &genai.GoogleMaps{}},
			{GoogleSearch: &genai.GoogleSearch{}},
		},
		ToolConfig: &genai.ToolConfig{
			RetrievalConfig: &genai.RetrievalConfig{
				LatLng: &genai.LatLng{
					Latitude:  genai.Ptr(coords.Latitude),
					Longitude: genai.Ptr(coords.Longitude),
				},
				LanguageCode: gr.messages.Language,
			},
		},
	}
}
