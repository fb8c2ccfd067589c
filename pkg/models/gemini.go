package models

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// ---------------------------- Google Gemini ----------------------------------

// GeminiLLM implements Agent on top of the Gemini API: the Files endpoints for
// upload/get/delete and GenerateContent for multimodal prompts.
type GeminiLLM struct {
	Client *genai.Client
	Model  string

	// PollInterval and MaxPolls pace the wait for an uploaded file to leave
	// the PROCESSING state (video and large files are not ACTIVE immediately).
	PollInterval time.Duration
	MaxPolls     int
}

func NewGeminiLLM(ctx context.Context, apiKey, model string) (*GeminiLLM, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("missing API key")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiLLM{
		Client:       client,
		Model:        model,
		PollInterval: 500 * time.Millisecond,
		MaxPolls:     60,
	}, nil
}

func (g *GeminiLLM) Close() error { return g.Client.Close() }

// UploadFile streams a local file to the provider and blocks until the remote
// copy is usable in a generation request.
func (g *GeminiLLM) UploadFile(ctx context.Context, path, displayName string) (*RemoteFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	opts := &genai.UploadFileOptions{DisplayName: displayName}
	if mt := DetectMIME(path); mt != "" {
		opts.MIMEType = mt
	}
	uploaded, err := g.Client.UploadFile(ctx, "", f, opts)
	if err != nil {
		return nil, fmt.Errorf("gemini upload: %w", err)
	}
	uploaded, err = g.waitForActive(ctx, uploaded)
	if err != nil {
		return nil, err
	}
	return fromGenaiFile(uploaded), nil
}

// GenerateWithFile issues a multimodal prompt: the literal instruction plus a
// reference to the uploaded file.
func (g *GeminiLLM) GenerateWithFile(ctx context.Context, prompt string, file *RemoteFile) (string, error) {
	model := g.Client.GenerativeModel(g.Model)

	parts := []genai.Part{genai.Text(prompt)}
	if file != nil {
		parts = append(parts, genai.FileData{MIMEType: file.MIMEType, URI: file.URI})
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("gemini: empty response")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

func (g *GeminiLLM) GetFile(ctx context.Context, name string) (*RemoteFile, error) {
	f, err := g.Client.GetFile(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("gemini get %s: %w", name, err)
	}
	return fromGenaiFile(f), nil
}

func (g *GeminiLLM) DeleteFile(ctx context.Context, name string) error {
	if err := g.Client.DeleteFile(ctx, name); err != nil {
		return fmt.Errorf("gemini delete %s: %w", name, err)
	}
	return nil
}

// ListFiles returns every file the provider currently stores for this key.
func (g *GeminiLLM) ListFiles(ctx context.Context) ([]*RemoteFile, error) {
	var files []*RemoteFile
	it := g.Client.ListFiles(ctx)
	for {
		f, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("gemini list: %w", err)
		}
		files = append(files, fromGenaiFile(f))
	}
	return files, nil
}

// waitForActive polls the file resource until it is no longer PROCESSING.
func (g *GeminiLLM) waitForActive(ctx context.Context, f *genai.File) (*genai.File, error) {
	interval := g.PollInterval
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	maxPolls := g.MaxPolls
	if maxPolls <= 0 {
		maxPolls = 60
	}

	for i := 0; f.State == genai.FileStateProcessing; i++ {
		if i >= maxPolls {
			return nil, fmt.Errorf("gemini: file %s still processing after %d polls", f.Name, maxPolls)
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(interval):
		}
		var err error
		if f, err = g.Client.GetFile(ctx, f.Name); err != nil {
			return nil, fmt.Errorf("gemini poll: %w", err)
		}
	}
	if f.State == genai.FileStateFailed {
		return nil, fmt.Errorf("gemini: file %s failed server-side processing", f.Name)
	}
	return f, nil
}

func fromGenaiFile(f *genai.File) *RemoteFile {
	return &RemoteFile{
		Name:        f.Name,
		DisplayName: f.DisplayName,
		MIMEType:    f.MIMEType,
		URI:         f.URI,
		SizeBytes:   f.SizeBytes,
		CreateTime:  f.CreateTime,
		ExpireTime:  f.ExpirationTime,
		State:       stateString(f.State),
	}
}

func stateString(s genai.FileState) string {
	switch s {
	case genai.FileStateProcessing:
		return "PROCESSING"
	case genai.FileStateActive:
		return "ACTIVE"
	case genai.FileStateFailed:
		return "FAILED"
	default:
		return "STATE_UNSPECIFIED"
	}
}

var _ Agent = (*GeminiLLM)(nil)
