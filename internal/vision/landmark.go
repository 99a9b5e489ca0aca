package vision

import (
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/vertexai/genai"
)

const landmarkPrompt = `Identify the famous landmark shown in this photo.
Reply with only "Landmark name, City, Country".
If no well-known landmark is visible, reply with exactly NONE.`

type generator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// LandmarkDetector asks a Vertex AI multimodal model to name the landmark in
// a photo.
type LandmarkDetector struct {
	client *genai.Client
	model  generator
}

func NewLandmarkDetector(ctx context.Context, projectID, location, modelName string) (*LandmarkDetector, error) {
	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.SetMaxOutputTokens(64)

	return &LandmarkDetector{client: client, model: model}, nil
}

// Detect returns the landmark description, or "" when the model sees none.
func (d *LandmarkDetector) Detect(ctx context.Context, image []byte, mimeType string) (string, error) {
	format := strings.TrimPrefix(strings.ToLower(mimeType), "image/")
	if format == "" || format == "jpg" {
		format = "jpeg"
	}

	resp, err := d.model.GenerateContent(ctx, genai.ImageData(format, image), genai.Text(landmarkPrompt))
	if err != nil {
		return "", fmt.Errorf("landmark detection failed: %w", err)
	}

	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
		break
	}
	return parseLandmark(sb.String()), nil
}

func (d *LandmarkDetector) Close() error {
	if d.client == nil {
		return nil
	}
	return d.client.Close()
}

func parseLandmark(text string) string {
	text = strings.TrimSpace(text)
	if i := strings.IndexByte(text, '\n'); i >= 0 {
		text = strings.TrimSpace(text[:i])
	}
	text = strings.Trim(text, "\"'*`. ")
	if text == "" || strings.EqualFold(text, "none") {
		return ""
	}
	return text
}
