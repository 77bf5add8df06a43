package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	response string
	err      error
	prompts  []string
}

func (f *fakeGenerator) GenerateContent(ctx context.Context, parts ...Part) (string, error) {
	for _, p := range parts {
		if p.Text != "" {
			f.prompts = append(f.prompts, p.Text)
		}
	}
	return f.response, f.err
}

func validEmpathyRequest() *ScoreRequest {
	return &ScoreRequest{
		Stage:           "empathy",
		EmpathyMapInput: "Students study by candlelight.",
		Reflection:      "I learned that outages hit homework hardest.",
		Insights: []EmpathyInsight{
			{Persona: "Lerato", Activity: "studies at night", Because: "daytime is for chores", But: "the power is off"},
		},
		Themes:          json.RawMessage(`["Energy poverty"]`),
		SelectedProblem: &ProblemRef{Title: "Load shedding", Context: "Schools lose power daily."},
	}
}

func TestScoreStageParsesFencedResponse(t *testing.T) {
	gen := &fakeGenerator{response: "Sure!\n```json\n{\"score\": 82, \"strengths\": \"Rich detail\", \"improvements\": \"Link to problem\", \"suggestions\": [\"Add emotions\"], \"overallComment\": \"Solid work\"}\n```"}
	svc := NewScoreService(gen)

	feedback, err := svc.ScoreStage(context.Background(), validEmpathyRequest())
	require.NoError(t, err)
	assert.Equal(t, 82.0, feedback.Score)
	assert.Equal(t, "Rich detail", feedback.Strengths)
	assert.Equal(t, []string{"Add emotions"}, feedback.Suggestions)
}

func TestScoreStagePromptMentionsProblem(t *testing.T) {
	gen := &fakeGenerator{response: `{"score": 70, "strengths": "s", "improvements": "i", "suggestions": ["x"], "overallComment": "o"}`}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), validEmpathyRequest())
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.True(t, strings.Contains(gen.prompts[0], "Load shedding"))
	assert.True(t, strings.Contains(gen.prompts[0], "Empathize stage"))
}

func TestScoreStageMissingFields(t *testing.T) {
	svc := NewScoreService(&fakeGenerator{})

	req := validEmpathyRequest()
	req.Reflection = ""
	_, err := svc.ScoreStage(context.Background(), req)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Message, "Empathy stage")
}

func TestScoreStageUnknownStage(t *testing.T) {
	svc := NewScoreService(&fakeGenerator{})

	_, err := svc.ScoreStage(context.Background(), &ScoreRequest{Stage: "polish"})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Invalid stage provided.", ve.Message)
}

func TestScoreStageUnparseableResponse(t *testing.T) {
	gen := &fakeGenerator{response: "I cannot help with that."}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), validEmpathyRequest())

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "I cannot help with that.", pe.Raw)
}

func TestScoreStageWrongShape(t *testing.T) {
	gen := &fakeGenerator{response: `{"score": 90}`}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), validEmpathyRequest())
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestScoreStageMissingScore(t *testing.T) {
	// All narrative fields present but no numeric score: the contract
	// is violated, not partially satisfied.
	gen := &fakeGenerator{response: `{"strengths": "s", "improvements": "i", "suggestions": ["x"], "overallComment": "o"}`}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), validEmpathyRequest())
	assert.ErrorIs(t, err, ErrUnexpectedFormat)
}

func TestScoreStageMistypedScore(t *testing.T) {
	// A string score decodes fine as JSON, so it is a contract
	// violation rather than a parse failure.
	gen := &fakeGenerator{response: `{"score": "82", "strengths": "s", "improvements": "i", "suggestions": ["x"], "overallComment": "o"}`}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), validEmpathyRequest())
	assert.ErrorIs(t, err, ErrUnexpectedFormat)

	var pe *ParseError
	assert.False(t, errors.As(err, &pe))
}

func TestDefineSubmissionBindsThemeObjects(t *testing.T) {
	body := `{
		"stage": "define",
		"selectedProblem": {"title": "Load shedding", "context": "Schools lose power daily."},
		"hmwList": ["How might we keep lessons going during outages?"],
		"themes": [{"title": "Energy poverty", "description": "Families cannot afford backups."}],
		"reflection": "The HMWs follow from the themes."
	}`
	var req ScoreRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	gen := &fakeGenerator{response: `{"score": 70, "strengths": "s", "improvements": "i", "suggestions": ["x"], "overallComment": "o"}`}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), &req)
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "Energy poverty: Families cannot afford backups.")
	assert.Contains(t, gen.prompts[0], "Define stage")
}

func TestScoreStageUpstreamFailure(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("connection refused")}
	svc := NewScoreService(gen)

	_, err := svc.ScoreStage(context.Background(), validEmpathyRequest())
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}

func TestIdeateRationaleFallback(t *testing.T) {
	gen := &fakeGenerator{response: `{"score": 65, "strengths": "s", "improvements": "i", "suggestions": [], "overallComment": "o"}`}
	svc := NewScoreService(gen)

	req := &ScoreRequest{
		Stage:             "ideate",
		HMW:               "HMW keep lessons going during outages?",
		SelectedTop3Ideas: []string{"Solar lamp library", "Offline lesson packs"},
		RationaleMap:      map[string]string{"Solar lamp library": "Cheap and shareable"},
		Reflection:        "Ideas map to the HMW.",
		SelectedProblem:   &ProblemRef{Title: "Load shedding", Context: "ctx"},
	}
	_, err := svc.ScoreStage(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, gen.prompts, 1)
	assert.Contains(t, gen.prompts[0], "No rationale provided.")
}

func TestPrototypePartsIncludeFiles(t *testing.T) {
	gen := &fakeGenerator{response: `{"score": 75, "strengths": "s", "improvements": "i", "suggestions": ["x"], "overallComment": "o"}`}
	svc := NewScoreService(gen)

	req := &ScoreRequest{
		Stage:         "prototype",
		SelectedIdea:  "Solar lamp library",
		PosterNotes:   map[string][]string{"what": {"lamp lending desk"}},
		TimelineNotes: map[string][]string{"week1": {"build desk"}},
		Prompt:        "score my poster",
		Files: []Upload{
			{Name: "sketch.png", Type: "image/png", Base64: "data:image/png;base64,aGVsbG8="},
		},
	}

	feedback, err := svc.ScoreStage(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 75.0, feedback.Score)
}

func TestStripDataURLPrefix(t *testing.T) {
	assert.Equal(t, "aGVsbG8=", stripDataURLPrefix("data:image/png;base64,aGVsbG8="))
	assert.Equal(t, "aGVsbG8=", stripDataURLPrefix("aGVsbG8="))
}
