package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"thinkquest_backend/internal/util"
	"thinkquest_backend/pkg/logger"

	"go.uber.org/zap"
)

// TextGenerator is the slice of the Gemini client the scorer needs.
type TextGenerator interface {
	GenerateContent(ctx context.Context, parts ...Part) (string, error)
}

// ScoreFeedback is the structured verdict the model must return.
type ScoreFeedback struct {
	Score          float64  `json:"score"`
	Strengths      string   `json:"strengths"`
	Improvements   string   `json:"improvements"`
	Suggestions    []string `json:"suggestions"`
	OverallComment string   `json:"overallComment"`
}

// VisualNote is one remark about an uploaded prototype visual.
type VisualNote struct {
	Quote     string `json:"quote"`
	Sentiment string `json:"sentiment"`
}

// PrototypeFeedback extends the verdict for the prototype review flow.
type PrototypeFeedback struct {
	ScoreFeedback
	AddressesProblem bool         `json:"addressesProblem"`
	VisualFeedback   []VisualNote `json:"visualFeedback,omitempty"`
}

// ProblemRef is the problem the submission is scored against.
type ProblemRef struct {
	Title   string `json:"title"`
	Context string `json:"context"`
}

// EmpathyInsight is one row of the empathy kanban.
type EmpathyInsight struct {
	Persona  string `json:"persona"`
	Activity string `json:"activity"`
	Because  string `json:"because"`
	But      string `json:"but"`
}

// DefineTheme is an empathy theme carried into the define stage.
type DefineTheme struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Upload is a base64 encoded supporting file for the prototype stage.
type Upload struct {
	Name   string `json:"name"`
	Type   string `json:"type"`
	Base64 string `json:"base64"`
}

// ScoreRequest is the union of all stage submissions. Which fields are
// required depends on Stage.
type ScoreRequest struct {
	Stage           string      `json:"stage" binding:"required"`
	SelectedProblem *ProblemRef `json:"selectedProblem,omitempty"`

	// empathy
	EmpathyMapInput string           `json:"empathyMapInput,omitempty"`
	Insights        []EmpathyInsight `json:"insights,omitempty"`

	// Themes is sent under the same wire key by the empathy stage (a
	// list of strings) and the define stage (a list of title and
	// description objects), so it stays raw until the stage is known.
	Themes json.RawMessage `json:"themes,omitempty"`

	// define
	HMWList []string `json:"hmwList,omitempty"`

	// ideate
	HMW               string            `json:"hmw,omitempty"`
	SelectedTop3Ideas []string          `json:"selectedTop3Ideas,omitempty"`
	RationaleMap      map[string]string `json:"rationaleMap,omitempty"`

	// prototype
	SelectedIdea  string              `json:"selectedIdea,omitempty"`
	PosterNotes   map[string][]string `json:"posterNotes,omitempty"`
	TimelineNotes map[string][]string `json:"timelineNotes,omitempty"`
	Prompt        string              `json:"prompt,omitempty"`
	Files         []Upload            `json:"files,omitempty"`

	// shared
	Reflection string `json:"reflection,omitempty"`
}

func (r *ScoreRequest) themeNames() []string {
	var themes []string
	if err := json.Unmarshal(r.Themes, &themes); err != nil {
		return nil
	}
	return themes
}

func (r *ScoreRequest) defineThemes() []DefineTheme {
	var themes []DefineTheme
	if err := json.Unmarshal(r.Themes, &themes); err != nil {
		return nil
	}
	return themes
}

// ValidationError marks a submission the client must fix.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ParseError carries the raw model output that failed JSON extraction.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string { return "ai response could not be parsed" }

// ErrUnexpectedFormat signals the extracted JSON was missing required
// feedback fields. Callers should fall back to FallbackFeedback.
var ErrUnexpectedFormat = fmt.Errorf("ai response in unexpected format")

// FallbackFeedback is returned when the model answers but not in the
// agreed shape.
func FallbackFeedback() *ScoreFeedback {
	return &ScoreFeedback{
		Score:          50,
		Strengths:      "N/A",
		Improvements:   "Could not parse detailed feedback.",
		Suggestions:    []string{"Ensure your input is clear and concise."},
		OverallComment: "Please try again.",
	}
}

// UpstreamFallback is returned when the model could not be reached.
func UpstreamFallback() *ScoreFeedback {
	return &ScoreFeedback{
		Score:          50,
		Strengths:      "N/A",
		Improvements:   "Failed to connect to AI service.",
		Suggestions:    []string{"Check your internet connection or try again later."},
		OverallComment: "An error occurred.",
	}
}

type ScoreService struct {
	generator TextGenerator
}

func NewScoreService(generator TextGenerator) *ScoreService {
	return &ScoreService{generator: generator}
}

const feedbackContract = `Your feedback MUST include: 1) Specific strengths, 2) Areas for improvement with examples, 3) Actionable suggestions, and 4) An overall comment. Your response MUST be a JSON object with the following properties: 'score' (number), 'strengths' (string), 'improvements' (string), 'suggestions' (array of strings), and 'overallComment' (string).`

// ScoreStage validates a submission, asks the model for a verdict, and
// decodes it. It returns a ValidationError for client mistakes, a
// ParseError when the output held no JSON, and ErrUnexpectedFormat
// when the JSON missed required fields.
func (s *ScoreService) ScoreStage(ctx context.Context, req *ScoreRequest) (*ScoreFeedback, error) {
	parts, err := s.buildParts(req)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.GenerateContent(ctx, parts...)
	if err != nil {
		logger.Log.Error("Gemini scoring call failed", zap.String("stage", req.Stage), zap.Error(err))
		return nil, err
	}

	obj, err := util.DecodeModelObject(text)
	if err != nil {
		logger.Log.Warn("Unparseable scoring response", zap.String("stage", req.Stage))
		return nil, &ParseError{Raw: text}
	}

	feedback, ok := feedbackFromObject(obj)
	if !ok {
		logger.Log.Warn("Scoring response violates the feedback contract", zap.String("stage", req.Stage))
		return nil, ErrUnexpectedFormat
	}
	return feedback, nil
}

// feedbackFromObject type-checks the decoded verdict: score must be a
// number, the narrative fields strings, suggestions an array of
// strings. A missing or mistyped field fails the contract.
func feedbackFromObject(obj map[string]any) (*ScoreFeedback, bool) {
	score, ok := obj["score"].(float64)
	if !ok {
		return nil, false
	}
	strengths, ok := obj["strengths"].(string)
	if !ok {
		return nil, false
	}
	improvements, ok := obj["improvements"].(string)
	if !ok {
		return nil, false
	}
	overall, ok := obj["overallComment"].(string)
	if !ok {
		return nil, false
	}
	rawSuggestions, ok := obj["suggestions"].([]any)
	if !ok {
		return nil, false
	}
	suggestions := make([]string, 0, len(rawSuggestions))
	for _, s := range rawSuggestions {
		text, ok := s.(string)
		if !ok {
			return nil, false
		}
		suggestions = append(suggestions, text)
	}

	return &ScoreFeedback{
		Score:          score,
		Strengths:      strengths,
		Improvements:   improvements,
		Suggestions:    suggestions,
		OverallComment: overall,
	}, true
}

func (s *ScoreService) buildParts(req *ScoreRequest) ([]Part, error) {
	switch req.Stage {
	case "empathy":
		return s.empathyParts(req)
	case "define":
		return s.defineParts(req)
	case "ideate":
		return s.ideateParts(req)
	case "prototype":
		return s.prototypeParts(req)
	default:
		return nil, &ValidationError{Message: "Invalid stage provided."}
	}
}

func (s *ScoreService) empathyParts(req *ScoreRequest) ([]Part, error) {
	themes := req.themeNames()
	if req.EmpathyMapInput == "" || req.Reflection == "" || len(req.Insights) == 0 || len(themes) == 0 {
		return nil, &ValidationError{Message: "Missing empathy map input, reflection, insights, or themes for Empathy stage."}
	}
	if req.SelectedProblem == nil {
		return nil, &ValidationError{Message: "Missing selected problem for Empathy stage."}
	}

	var insights strings.Builder
	for i, in := range req.Insights {
		if i > 0 {
			insights.WriteString("\n")
		}
		fmt.Fprintf(&insights, "Persona: %s, Activity: %s, Because: %s, But: %s", in.Persona, in.Activity, in.Because, in.But)
	}

	prompt := fmt.Sprintf(`Analyze the following user inputs for the Empathize stage in design thinking, specifically for the problem: %q (Context: %q).

Empathy Map Input: %q
Reflection: %q
Kanban Themes: %q
Kanban Insights (focus on these for depth, relevance, and Sci-Bono criteria - true to user, surprising/revealing, helpful for defining problems):
%s

Provide a score out of 100 for accuracy, clarity, completeness, and adherence to Sci-Bono criteria. Impose stricter scoring: scores below 50 should be given for incomplete, vague, or generic notes/insights. Deduct points for unprocessed data or lack of detailed emotional insights and problem connections. %s`,
		req.SelectedProblem.Title, req.SelectedProblem.Context,
		req.EmpathyMapInput, req.Reflection, strings.Join(themes, "\n"),
		insights.String(), feedbackContract)

	return []Part{TextPart(prompt)}, nil
}

func (s *ScoreService) defineParts(req *ScoreRequest) ([]Part, error) {
	defineThemes := req.defineThemes()
	if len(req.HMWList) == 0 || req.SelectedProblem == nil || len(defineThemes) == 0 || req.Reflection == "" {
		return nil, &ValidationError{Message: "Missing HMW list, selected problem, themes, or reflection for Define stage."}
	}

	var hmws strings.Builder
	for _, h := range req.HMWList {
		fmt.Fprintf(&hmws, "- %s\n", h)
	}
	var themes strings.Builder
	for _, t := range defineThemes {
		fmt.Fprintf(&themes, "- %s: %s\n", t.Title, t.Description)
	}

	prompt := fmt.Sprintf(`Analyze the following Define stage submission for the design thinking process.
The selected problem statement the user is trying to solve is: %q (Context: %q).

User's How Might We (HMW) Questions:
%s
Empathy Themes from previous stage:
%s
User's Reflection: %q

Provide a score out of 100 for the quality of the HMW questions (specificity, actionability, breadth), their relevance to the selected problem and empathy themes, and the insightfulness of the reflection. Penalize <60 if HMWs are too broad/narrow, not actionable, or the reflection is superficial.
%s`,
		req.SelectedProblem.Title, req.SelectedProblem.Context,
		hmws.String(), themes.String(), req.Reflection, feedbackContract)

	return []Part{TextPart(prompt)}, nil
}

func (s *ScoreService) ideateParts(req *ScoreRequest) ([]Part, error) {
	if req.HMW == "" || len(req.SelectedTop3Ideas) == 0 || req.RationaleMap == nil || req.Reflection == "" || req.SelectedProblem == nil {
		return nil, &ValidationError{Message: "Missing HMW, selected top 3 ideas, rationale map, reflection, or selected problem for Ideate stage."}
	}

	var ideas strings.Builder
	for i, idea := range req.SelectedTop3Ideas {
		rationale, ok := req.RationaleMap[idea]
		if !ok {
			rationale = "No rationale provided."
		}
		if i > 0 {
			ideas.WriteString("\n")
		}
		fmt.Fprintf(&ideas, "- Idea: %q\n  Rationale: %q", idea, rationale)
	}

	prompt := fmt.Sprintf(`Analyze the following Ideate stage submission for the design thinking process.
The selected problem statement the user is trying to solve is: %q (Context: %q).
The How-Might-We (HMW) question addressed is: %q.

User's Top 3 Ideas and their Rationales:
%s

User's Reflection: %q

Score this Ideate stage (0-100). Penalize <60 if ideas are generic, rationales weak, or reflection missing problem links to the original problem or the selected HMW.
Consider the creativity, feasibility, and relevance of the ideas to the HMW and the problem. Evaluate the strength and clarity of the rationales. Assess if the reflection effectively connects the ideas back to the HMW and the original problem.
%s`,
		req.SelectedProblem.Title, req.SelectedProblem.Context, req.HMW,
		ideas.String(), req.Reflection, feedbackContract)

	return []Part{TextPart(prompt)}, nil
}

func (s *ScoreService) prototypeParts(req *ScoreRequest) ([]Part, error) {
	if req.SelectedIdea == "" || len(req.PosterNotes) == 0 || len(req.TimelineNotes) == 0 || req.Prompt == "" {
		return nil, &ValidationError{Message: "Missing selectedIdea, posterNotes, timelineNotes, or prompt for Prototype stage."}
	}

	filesHint := ""
	if len(req.Files) > 0 {
		filesHint = fmt.Sprintf("The user has also uploaded %d supporting documents (images/PDFs) for their prototype. Please consider these as additional context for the analysis.", len(req.Files))
	}

	prompt := fmt.Sprintf(`Analyze the following Concept Poster submission for the Prototype stage in design thinking.
The selected idea is: %q
The poster contains the following notes:
%s
The timeline notes are:
%s
%s
Please return a JSON object containing the score and feedback for the prototype, taking into account the textual information and the uploaded files. %s`,
		req.SelectedIdea, formatNoteMap(req.PosterNotes), formatNoteMap(req.TimelineNotes),
		filesHint, feedbackContract)

	parts := []Part{TextPart(prompt)}
	for _, f := range req.Files {
		data := stripDataURLPrefix(f.Base64)
		if data == "" || f.Type == "" {
			continue
		}
		parts = append(parts, FilePart(f.Type, data))
	}
	return parts, nil
}

func formatNoteMap(notes map[string][]string) string {
	keys := make([]string, 0, len(notes))
	for k := range notes {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&sb, "  %s: %s\n", k, strings.Join(notes[k], ", "))
	}
	return sb.String()
}

// stripDataURLPrefix drops a "data:image/png;base64," prefix when the
// client sent a data URL instead of bare base64.
func stripDataURLPrefix(b64 string) string {
	if idx := strings.Index(b64, ","); idx >= 0 && strings.HasPrefix(b64, "data:") {
		return b64[idx+1:]
	}
	return b64
}
