package service

import (
	"context"
	"errors"
	"io"
	"lms_backend/internal/model"
	"lms_backend/internal/util"
	"lms_backend/pkg/logger"
	"mime/multipart"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// textExtensions are the upload formats whose bytes are the text. Binary
// document formats are stored as-is with no extraction.
var textExtensions = map[string]bool{
	".txt": true,
	".md":  true,
	".csv": true,
}

// DocumentService handles the instructor upload flow: store the file,
// extract text where the format allows it, and ask the AI collaborator for a
// summary of what was extracted.
type DocumentService struct {
	Storage *StorageService
	AI      *AIService
}

func NewDocumentService(storage *StorageService, ai *AIService) *DocumentService {
	return &DocumentService{
		Storage: storage,
		AI:      ai,
	}
}

type DocumentResult struct {
	URL           string `json:"url"`
	ExtractedText string `json:"extractedText,omitempty"`
	Summary       string `json:"summary,omitempty"`
}

func (s *DocumentService) Process(ctx context.Context, header *multipart.FileHeader, file multipart.File) (*DocumentResult, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	storedName := model.GenerateUUID() + ext

	var text string
	if textExtensions[ext] {
		raw, err := io.ReadAll(file)
		if err != nil {
			return nil, err
		}
		text = string(raw)

		url, err := s.Storage.Upload(ctx, storedName, strings.NewReader(text), int64(len(raw)), header.Header.Get("Content-Type"))
		if err != nil {
			return nil, err
		}
		result := &DocumentResult{URL: url, ExtractedText: text}

		summary, err := s.AI.Summarize(ctx, text)
		if err != nil {
			// A summary is best effort; disabled or failing AI leaves the
			// stored document usable.
			if !errors.Is(err, util.ErrAINotConfigured) {
				logger.Log.Warn("Document summary failed", zap.Error(err))
			}
			return result, nil
		}
		result.Summary = summary
		return result, nil
	}

	url, err := s.Storage.Upload(ctx, storedName, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}
	return &DocumentResult{URL: url}, nil
}
