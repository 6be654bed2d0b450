package assistant

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const markupPrompt = `Eres un asistente de edición de audio. El siguiente texto es la transcripción de una locución. Propón una versión anotada usando esta sintaxis:

- "(segundos)" marca un instante, por ejemplo "(3.25)"
- "<pitch N>" cambia el tono en N semitonos desde la marca anterior
- "<volume N>" cambia el volumen en N dB
- "<velocity N>" multiplica la velocidad por N
- "<silencio N>" inserta una pausa de N segundos

Anota solo donde una pausa o un cambio de énfasis mejore la locución. Devuelve únicamente el texto anotado, sin explicaciones.

Transcripción:
---
%s
---`

// SuggestMarkup asks Gemini for an annotated draft of the transcript.
func (a *implAssistant) SuggestMarkup(ctx context.Context, transcript string) (string, error) {
	if a.apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  a.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	prompt := fmt.Sprintf(markupPrompt, transcript)
	result, err := client.Models.GenerateContent(ctx, a.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from Gemini")
	}

	var text string
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			text += part.Text
		}
	}
	return text, nil
}
