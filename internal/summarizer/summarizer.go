package summarizer

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"google.golang.org/genai"
)

const summaryPrompt = `You are an expert at analyzing video transcripts. Based on the timed transcript below, write a DETAILED summary.

Requirements:
- Start with a one-sentence overview of the video's topic
- List ALL key points in order of appearance, with the approximate time in minutes
- Explain each point, including any caveats or warnings mentioned
- Keep domain terminology exactly as spoken
- Use markdown: headings, bullet points, bold for key terms

Transcript (one line per segment, time in minutes):
---
%s
---`

// transcript is one video's retained rows from the output CSV.
type transcript struct {
	Video string
	Lines []string
}

// SummarizeAll groups the CSV rows per video, calls Gemini for each video,
// and writes a markdown and a docx summary into destDir. One failed video
// does not stop the others.
func (s *implSummarizer) SummarizeAll(ctx context.Context, csvPath, destDir string) error {
	transcripts, err := loadTranscripts(csvPath)
	if err != nil {
		return fmt.Errorf("load transcripts: %w", err)
	}

	if len(transcripts) == 0 {
		s.logger.Info(ctx, "No transcripts found in %s", csvPath)
		return nil
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	s.logger.Info(ctx, "Found %d transcripts to summarize", len(transcripts))

	successCount := 0
	failCount := 0

	for i, tr := range transcripts {
		videoName := strings.TrimSuffix(tr.Video, filepath.Ext(tr.Video))
		s.logger.Info(ctx, "[%d/%d] Summarizing: %s", i+1, len(transcripts), videoName)

		summary, err := s.callGemini(ctx, strings.Join(tr.Lines, "\n"))
		if err != nil {
			s.logger.Error(ctx, "Failed to summarize %s: %v", videoName, err)
			failCount++
			continue
		}

		md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
			videoName,
			time.Now().Format("2006-01-02 15:04"),
			strings.TrimSpace(summary),
		)

		mdPath := filepath.Join(destDir, videoName+".md")
		if err := os.WriteFile(mdPath, []byte(md), 0644); err != nil {
			s.logger.Error(ctx, "Failed to write %s: %v", mdPath, err)
			failCount++
			continue
		}

		docxPath := filepath.Join(destDir, videoName+".docx")
		if err := markdownToDocx(videoName, summary, docxPath); err != nil {
			s.logger.Warn(ctx, "Failed to write %s: %v", docxPath, err)
		}

		s.logger.Info(ctx, "[DONE] %s -> %s", videoName, mdPath)
		successCount++
	}

	s.logger.Info(ctx, "Summary complete: %d success, %d failed", successCount, failCount)
	return nil
}

// callGemini sends the transcript to Gemini and returns the summary text.
// Rotates API keys on 429 / quota errors.
func (s *implSummarizer) callGemini(ctx context.Context, transcriptText string) (string, error) {
	if len(s.apiKeys) == 0 {
		return "", fmt.Errorf("no Gemini API keys configured")
	}

	prompt := fmt.Sprintf(summaryPrompt, transcriptText)

	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.logger.Warn(ctx, "Key %d rate limited, rotating...", s.currentKey+1)
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *implSummarizer) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// loadTranscripts reads the output CSV and groups rows per video in
// first-seen order. Each line keeps the segment's minute mark.
func loadTranscripts(csvPath string) ([]transcript, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) <= 1 {
		return nil, nil
	}

	index := make(map[string]int)
	var transcripts []transcript

	for _, row := range rows[1:] {
		if len(row) < 3 {
			continue
		}
		video, mins, text := row[0], row[1], row[2]

		i, ok := index[video]
		if !ok {
			i = len(transcripts)
			index[video] = i
			transcripts = append(transcripts, transcript{Video: video})
		}
		transcripts[i].Lines = append(transcripts[i].Lines, fmt.Sprintf("[%s] %s", mins, text))
	}

	return transcripts, nil
}
