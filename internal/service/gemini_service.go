package service

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"thinkquest_backend/internal/config"
)

// GeminiService is a thin client for the Gemini REST API. Keys stay
// server side; browsers never talk to the model directly.
type GeminiService struct {
	config config.GeminiConfig
	client *http.Client
}

func NewGeminiService(cfg config.GeminiConfig) *GeminiService {
	return &GeminiService{
		config: cfg,
		client: &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// Part is one piece of a multimodal request. Either Text or InlineData
// is set, not both.
type Part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *InlineData `json:"inlineData,omitempty"`
}

// InlineData carries base64 encoded file content, such as prototype
// wireframe images.
type InlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

func TextPart(text string) Part {
	return Part{Text: text}
}

func FilePart(mimeType, base64Data string) Part {
	return Part{InlineData: &InlineData{MimeType: mimeType, Data: base64Data}}
}

type geminiContent struct {
	Role  string `json:"role"`
	Parts []Part `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

func (s *GeminiService) endpoint(verb string) string {
	return fmt.Sprintf("%s/models/%s:%s", strings.TrimSuffix(s.config.BaseURL, "/"), s.config.Model, verb)
}

// GenerateContent sends a single-turn request and returns the full
// text of the first candidate.
func (s *GeminiService) GenerateContent(ctx context.Context, parts ...Part) (string, error) {
	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
	})
	if err != nil {
		return "", err
	}

	url := s.endpoint("generateContent") + "?key=" + s.config.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(raw))
	}

	var decoded geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", err
	}
	if decoded.Error != nil {
		return "", fmt.Errorf("gemini API error: %s", decoded.Error.Message)
	}
	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini API returned no candidates")
	}

	var sb strings.Builder
	for _, p := range decoded.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}

// GenerateStream starts a streaming request and forwards text chunks
// on the returned channel. The error channel receives at most one
// error; both channels close when the stream ends.
func (s *GeminiService) GenerateStream(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	out := make(chan string)
	errChan := make(chan error, 1)

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: []Part{TextPart(prompt)}}},
	})

	go func() {
		defer close(out)
		defer close(errChan)

		if err != nil {
			errChan <- err
			return
		}

		url := s.endpoint("streamGenerateContent") + "?alt=sse&key=" + s.config.APIKey
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(body))
		if err != nil {
			errChan <- err
			return
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.client.Do(req)
		if err != nil {
			errChan <- err
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			errChan <- fmt.Errorf("gemini API error (status %d): %s", resp.StatusCode, string(raw))
			return
		}

		reader := bufio.NewReader(resp.Body)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				if err != io.EOF {
					errChan <- err
				}
				break
			}

			line = strings.TrimSpace(line)
			if line == "" || !strings.HasPrefix(line, "data: ") {
				continue
			}

			data := strings.TrimPrefix(line, "data: ")
			if data == "[DONE]" {
				break
			}

			var chunk geminiResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}
			for _, cand := range chunk.Candidates {
				for _, p := range cand.Content.Parts {
					if p.Text != "" {
						select {
						case out <- p.Text:
						case <-ctx.Done():
							return
						}
					}
				}
			}
		}
	}()

	return out, errChan
}
