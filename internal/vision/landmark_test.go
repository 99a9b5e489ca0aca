package vision

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	reply string
	err   error
	parts []genai.Part
}

func (f *fakeModel) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	f.parts = parts
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(f.reply)}}},
		},
	}, nil
}

func TestDetect_ReturnsLandmark(t *testing.T) {
	model := &fakeModel{reply: "\"Eiffel Tower, Paris, France.\"\n"}
	d := &LandmarkDetector{model: model}

	got, err := d.Detect(context.Background(), []byte{0xff, 0xd8}, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "Eiffel Tower, Paris, France", got)

	require.Len(t, model.parts, 2)
	blob, ok := model.parts[0].(genai.Blob)
	require.True(t, ok)
	assert.Equal(t, "image/jpeg", blob.MIMEType)
}

func TestDetect_None(t *testing.T) {
	d := &LandmarkDetector{model: &fakeModel{reply: "NONE"}}

	got, err := d.Detect(context.Background(), []byte{1}, "image/png")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDetect_Error(t *testing.T) {
	d := &LandmarkDetector{model: &fakeModel{err: errors.New("quota exceeded")}}

	_, err := d.Detect(context.Background(), []byte{1}, "")
	assert.ErrorContains(t, err, "quota exceeded")
}

func TestParseLandmark(t *testing.T) {
	assert.Equal(t, "Big Ben, London, United Kingdom", parseLandmark("**Big Ben, London, United Kingdom**"))
	assert.Equal(t, "", parseLandmark("  none. "))
	assert.Equal(t, "Colosseum, Rome, Italy", parseLandmark("Colosseum, Rome, Italy\nThis amphitheatre..."))
}
