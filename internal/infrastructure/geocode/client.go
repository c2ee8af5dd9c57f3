package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mysmileproject/api/internal/config"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// Place is the structured result of a reverse-geocode call. Empty fields are
// omitted when joining into a display name.
type Place struct {
	City    string `json:"city"`
	Region  string `json:"region"`
	Country string `json:"country"`
}

// Name joins the non-empty parts with ", ", matching the display format used
// on smile cards ("Berlin, Berlin, Germany").
func (p Place) Name() string {
	parts := make([]string, 0, 3)
	for _, s := range []string{p.City, p.Region, p.Country} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}

// ReverseGeocoder resolves coordinates into a human-readable place.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, latitude, longitude float64) (Place, error)
}

// Client reverse-geocodes through an LLM with a structured prompt. There is
// no dedicated geocoding backend in this deployment; the model is accurate
// enough for a city-level display name.
type Client struct {
	llm llms.Model
}

func NewClient(cfg *config.Config) (*Client, error) {
	opts := []openai.Option{openai.WithModel(cfg.GeocodeModel)}
	if cfg.GeocodeAPIKey != "" {
		opts = append(opts, openai.WithToken(cfg.GeocodeAPIKey))
	}
	if cfg.GeocodeBaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.GeocodeBaseURL))
	}
	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("init geocode model: %w", err)
	}
	return &Client{llm: llm}, nil
}

// NewClientWithModel wires an already-constructed model, used by tests.
func NewClientWithModel(llm llms.Model) *Client {
	return &Client{llm: llm}
}

func (c *Client) Reverse(ctx context.Context, latitude, longitude float64) (Place, error) {
	prompt := fmt.Sprintf(
		"Provide the city, state/region, and country for the following coordinates: latitude %f, longitude %f. "+
			`Respond with only a JSON object of the form {"city": "", "region": "", "country": ""}.`,
		latitude, longitude)

	resp, err := llms.GenerateFromSinglePrompt(ctx, c.llm, prompt)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: %w", err)
	}
	place, err := parsePlace(resp)
	if err != nil {
		return Place{}, fmt.Errorf("reverse geocode: %w", err)
	}
	return place, nil
}

// parsePlace extracts the JSON object from a model completion, tolerating
// surrounding prose or code fences.
func parsePlace(resp string) (Place, error) {
	start := strings.Index(resp, "{")
	end := strings.LastIndex(resp, "}")
	if start < 0 || end <= start {
		return Place{}, fmt.Errorf("no JSON object in completion %q", resp)
	}
	var p Place
	if err := json.Unmarshal([]byte(resp[start:end+1]), &p); err != nil {
		return Place{}, fmt.Errorf("decode completion: %w", err)
	}
	return p, nil
}
