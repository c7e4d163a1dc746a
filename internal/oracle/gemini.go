package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/tgpolish/internal/common"
)

const promptTemplate = `Ты - профессиональный редактор русского языка. Твоя задача - исправить ВСЕ орфографические, грамматические, пунктуационные и стилистические ошибки в тексте.

ПРАВИЛА ИСПРАВЛЕНИЯ:
- Исправь все опечатки и орфографические ошибки
- Исправь грамматические ошибки (падежи, времена, согласования)
- Расставь правильную пунктуацию
- Сохрани исходный смысл и стиль сообщения
- Не добавляй лишних слов, не убирай важную информацию
- Сохрани эмоциональную окраску (разговорный стиль, сленг и т.д.)

ФОРМАТ ОТВЕТА:
Верни ТОЛЬКО исправленный текст в следующем JSON формате:
{"corrected_text": "исправленный текст здесь"}

ИСХОДНЫЙ ТЕКСТ: %s

ОТВЕТ:`

// GeminiOracle calls a Gemini-style generateContent endpoint over HTTP.
// The zero value is not usable; construct with NewGeminiOracle.
type GeminiOracle struct {
	endpoint string
	apiKey   string
	model    string
	client   *http.Client
}

// NewGeminiOracle builds an oracle for the given base endpoint, API key and
// model name. The provided http.Client controls transport-level timeouts;
// per-call deadlines come from the context.
func NewGeminiOracle(endpoint, apiKey, model string, client *http.Client) *GeminiOracle {
	if client == nil {
		client = http.DefaultClient
	}
	return &GeminiOracle{
		endpoint: strings.TrimRight(endpoint, "/"),
		apiKey:   apiKey,
		model:    model,
		client:   client,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Correct sends the prompt and extracts the corrected text from the model
// response. Transport and decoding failures are returned as errors; an empty
// or unparseable model answer falls back to the original text.
func (o *GeminiOracle) Correct(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: fmt.Sprintf(promptTemplate, text)}}}},
	})
	if err != nil {
		return "", err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", o.endpoint, o.model, o.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", common.ErrOracleFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("%w: status %d: %s", common.ErrOracleFailure, resp.StatusCode, payload)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%w: response decode: %v", common.ErrOracleFailure, err)
	}

	if len(decoded.Candidates) == 0 || len(decoded.Candidates[0].Content.Parts) == 0 {
		return text, nil
	}

	answer := strings.TrimSpace(decoded.Candidates[0].Content.Parts[0].Text)
	return extractCorrectedText(answer, text), nil
}

// extractCorrectedText recovers the corrected text from a model answer.
// Preferred form is the JSON object the prompt asks for; model output being
// what it is, the fallbacks handle answers with the object embedded in prose,
// bare "corrected_text:" prefixes, and raw text.
func extractCorrectedText(answer, original string) string {
	start := strings.Index(answer, "{")
	end := strings.LastIndex(answer, "}")

	if start != -1 && end > start {
		var parsed struct {
			CorrectedText string `json:"corrected_text"`
		}
		if err := json.Unmarshal([]byte(answer[start:end+1]), &parsed); err == nil && parsed.CorrectedText != "" {
			return parsed.CorrectedText
		}
	}

	corrected := strings.TrimSpace(answer)
	for _, prefix := range []string{"corrected_text:", "Исправленный текст:", "Ответ:", "ОТВЕТ:"} {
		if strings.HasPrefix(corrected, prefix) {
			corrected = strings.TrimSpace(corrected[len(prefix):])
		}
	}
	corrected = strings.Trim(corrected, "\"'{}")

	if corrected == "" {
		return original
	}
	return corrected
}
