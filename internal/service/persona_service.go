package service

import (
	"context"
	"fmt"
	"thinkquest_backend/internal/util"
	"thinkquest_backend/pkg/logger"

	"go.uber.org/zap"
)

// StreamGenerator is the slice of the Gemini client the chat flow needs.
type StreamGenerator interface {
	GenerateStream(ctx context.Context, prompt string) (<-chan string, <-chan error)
}

// PersonaChatRequest asks a persona a question in character.
type PersonaChatRequest struct {
	Name      string `json:"name" binding:"required"`
	Role      string `json:"role" binding:"required"`
	Backstory string `json:"backstory" binding:"required"`
	Question  string `json:"question" binding:"required"`
}

// PrototypeData is the concept poster content shown to a persona.
type PrototypeData struct {
	SelectedIdea  string              `json:"selectedIdea"`
	PosterNotes   map[string][]string `json:"posterNotes"`
	TimelineNotes map[string][]string `json:"timelineNotes"`
}

// PersonaFeedbackRequest asks a persona to react to a prototype.
type PersonaFeedbackRequest struct {
	Persona struct {
		Name string `json:"name" binding:"required"`
		Role string `json:"role" binding:"required"`
	} `json:"persona" binding:"required"`
	PrototypeData *PrototypeData `json:"prototypeData" binding:"required"`
	ProblemTitle  string         `json:"problemTitle" binding:"required"`
}

// PrototypeReviewRequest is the expert multimodal prototype review.
type PrototypeReviewRequest struct {
	SelectedIdea string   `json:"selectedIdea" binding:"required"`
	Poster       string   `json:"poster" binding:"required"`
	Uploads      []Upload `json:"uploads,omitempty"`
}

type PersonaService struct {
	generator TextGenerator
	streamer  StreamGenerator
}

func NewPersonaService(generator TextGenerator, streamer StreamGenerator) *PersonaService {
	return &PersonaService{generator: generator, streamer: streamer}
}

// ChatStream answers a question in a persona's voice, streaming text
// chunks as the model produces them. Replies are constrained to short
// B1 level English so learners can follow.
func (s *PersonaService) ChatStream(ctx context.Context, req *PersonaChatRequest) (<-chan string, <-chan error) {
	prompt := fmt.Sprintf("Respond as %s (%s) with backstory: %s to this question: %s. Please ensure your response is in B1 (Intermediate) level English: simple, clear, using basic grammar and vocabulary, avoiding idioms, and limited to 2-3 sentences. keep it concise",
		req.Name, req.Role, req.Backstory, req.Question)
	return s.streamer.GenerateStream(ctx, prompt)
}

// PrototypeFeedback lets a persona react to a concept poster in plain
// language: one like, one worry, one idea.
func (s *PersonaService) PrototypeFeedback(ctx context.Context, req *PersonaFeedbackRequest) (string, error) {
	prompt := fmt.Sprintf(`You are %s, a %s in SA. This prototype tries to solve %s. Here are the notes:
%s
%s
Reply in 4-7 simple B1 sentences: what you like, one worry, one idea.`,
		req.Persona.Name, req.Persona.Role, req.ProblemTitle,
		formatNoteMap(req.PrototypeData.PosterNotes),
		formatNoteMap(req.PrototypeData.TimelineNotes))

	return s.generator.GenerateContent(ctx, TextPart(prompt))
}

// ReviewPrototype runs the strict expert review over the poster text
// and any uploaded visuals.
func (s *PersonaService) ReviewPrototype(ctx context.Context, req *PrototypeReviewRequest) (*PrototypeFeedback, error) {
	uploadsHint := ""
	if len(req.Uploads) > 0 {
		uploadsHint = fmt.Sprintf("The user has also provided %d uploaded files (images/PDFs) as part of their prototype.", len(req.Uploads))
	}

	prompt := fmt.Sprintf(`You are a Design Thinking expert. Analyze this Concept Poster (text provided) and the attached wireframes/prototype visuals.
The selected idea is: %q
The concept poster content is:
%s
%s

Now analyze these prototype visuals:
Give specific feedback for each visual, indicating whether it's a strength (positive) or an area for improvement (negative).
For example:
"visualFeedback": [
  { "quote": "The mobile app flow is intuitive with clear navigation.", "sentiment": "positive" },
  { "quote": "The physical cart design needs clearer labeling on buttons.", "sentiment": "negative" }
]

Score 0-100. Check the following criteria:
1. Does it clearly address the selected problem and HMW questions?
2. Is the solution feasible and creative?
3. Are visuals clear and relevant? Penalize if no uploads for software solutions.

Give honest, strict feedback. Only award 90+ if the prototype is excellent and clearly solves the problem.

Your response MUST be a JSON object with the following properties: 'score' (number), 'strengths' (string), 'improvements' (string), 'suggestions' (array of strings), 'overallComment' (string), 'addressesProblem' (boolean), and 'visualFeedback' (array of objects with 'quote' and 'sentiment' properties).`,
		req.SelectedIdea, req.Poster, uploadsHint)

	parts := []Part{TextPart(prompt)}
	for _, u := range req.Uploads {
		data := stripDataURLPrefix(u.Base64)
		if data == "" || u.Type == "" {
			continue
		}
		parts = append(parts, FilePart(u.Type, data))
	}

	text, err := s.generator.GenerateContent(ctx, parts...)
	if err != nil {
		logger.Log.Error("Gemini prototype review call failed", zap.Error(err))
		return nil, err
	}

	obj, err := util.DecodeModelObject(text)
	if err != nil {
		logger.Log.Warn("Unparseable prototype review response")
		return nil, &ParseError{Raw: text}
	}

	base, ok := feedbackFromObject(obj)
	if !ok {
		logger.Log.Warn("Prototype review response violates the feedback contract")
		return nil, ErrUnexpectedFormat
	}
	// The review contract also demands an explicit verdict on whether
	// the prototype addresses the problem; absent is not false.
	addresses, ok := obj["addressesProblem"].(bool)
	if !ok {
		logger.Log.Warn("Prototype review response missing addressesProblem")
		return nil, ErrUnexpectedFormat
	}

	feedback := &PrototypeFeedback{ScoreFeedback: *base, AddressesProblem: addresses}
	if notes, ok := obj["visualFeedback"].([]any); ok {
		for _, item := range notes {
			note, ok := item.(map[string]any)
			if !ok {
				continue
			}
			quote, _ := note["quote"].(string)
			sentiment, _ := note["sentiment"].(string)
			feedback.VisualFeedback = append(feedback.VisualFeedback, VisualNote{Quote: quote, Sentiment: sentiment})
		}
	}
	return feedback, nil
}
