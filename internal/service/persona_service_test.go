package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStreamer struct {
	chunks []string
	prompt string
}

func (f *fakeStreamer) GenerateStream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	f.prompt = prompt
	out := make(chan string, len(f.chunks))
	errs := make(chan error, 1)
	for _, c := range f.chunks {
		out <- c
	}
	close(out)
	close(errs)
	return out, errs
}

func TestChatStreamPromptInCharacter(t *testing.T) {
	streamer := &fakeStreamer{chunks: []string{"Hello ", "there."}}
	svc := NewPersonaService(nil, streamer)

	out, errs := svc.ChatStream(context.Background(), &PersonaChatRequest{
		Name:      "Lerato",
		Role:      "Student",
		Backstory: "Studies by candlelight during outages.",
		Question:  "What is hardest for you?",
	})

	var got strings.Builder
	for chunk := range out {
		got.WriteString(chunk)
	}
	require.NoError(t, <-errs)
	assert.Equal(t, "Hello there.", got.String())

	assert.Contains(t, streamer.prompt, "Respond as Lerato (Student)")
	assert.Contains(t, streamer.prompt, "Studies by candlelight")
	assert.Contains(t, streamer.prompt, "B1 (Intermediate) level English")
}

func TestPrototypeFeedbackPromptIncludesNotes(t *testing.T) {
	gen := &fakeGenerator{response: "I like the solar idea. I worry about cost. Maybe share lamps."}
	svc := NewPersonaService(gen, nil)

	req := &PersonaFeedbackRequest{ProblemTitle: "Load shedding"}
	req.Persona.Name = "Thabo"
	req.Persona.Role = "Teacher"
	req.PrototypeData = &PrototypeData{
		SelectedIdea: "Solar study lamps",
		PosterNotes:  map[string][]string{"features": {"solar panel", "battery"}},
	}

	text, err := svc.PrototypeFeedback(context.Background(), req)
	require.NoError(t, err)
	assert.Contains(t, text, "solar idea")

	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "You are Thabo, a Teacher in SA")
	assert.Contains(t, gen.prompts[0], "Load shedding")
	assert.Contains(t, gen.prompts[0], "solar panel")
	assert.Contains(t, gen.prompts[0], "4-7 simple B1 sentences")
}

func TestReviewPrototypeParsesFeedback(t *testing.T) {
	gen := &fakeGenerator{response: "```json\n" +
		`{"score": 88, "strengths": "Clear flow", "improvements": "Label buttons", "suggestions": ["Test with users"], "overallComment": "Good", "addressesProblem": true, "visualFeedback": [{"quote": "Intuitive navigation.", "sentiment": "positive"}]}` +
		"\n```"}
	svc := NewPersonaService(gen, nil)

	feedback, err := svc.ReviewPrototype(context.Background(), &PrototypeReviewRequest{
		SelectedIdea: "Solar study lamps",
		Poster:       "Features: solar panel, battery pack",
		Uploads:      []Upload{{Type: "image/png", Base64: "data:image/png;base64,aGVsbG8="}},
	})
	require.NoError(t, err)
	assert.Equal(t, 88.0, feedback.Score)
	assert.True(t, feedback.AddressesProblem)
	require.Len(t, feedback.VisualFeedback, 1)
	assert.Equal(t, "positive", feedback.VisualFeedback[0].Sentiment)
}

func TestReviewPrototypeMissingAddressesProblem(t *testing.T) {
	// The review verdict must say explicitly whether the prototype
	// addresses the problem; an absent flag is not a no.
	gen := &fakeGenerator{response: `{"score": 88, "strengths": "s", "improvements": "i", "suggestions": ["x"], "overallComment": "o"}`}
	svc := NewPersonaService(gen, nil)

	_, err := svc.ReviewPrototype(context.Background(), &PrototypeReviewRequest{
		SelectedIdea: "Idea",
		Poster:       "Poster",
	})
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestReviewPrototypeUnparseable(t *testing.T) {
	gen := &fakeGenerator{response: "I cannot answer in JSON, sorry."}
	svc := NewPersonaService(gen, nil)

	_, err := svc.ReviewPrototype(context.Background(), &PrototypeReviewRequest{
		SelectedIdea: "Idea",
		Poster:       "Poster",
	})
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, "I cannot answer in JSON, sorry.", parseErr.Raw)
}
