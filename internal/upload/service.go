// Package upload receives salary-slip files and hands them to document storage.
package upload

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"loan-gateway/internal/document"
)

// Service stores uploaded files under generated IDs. The chat pipeline learns
// about a completed upload from the follow-up chat message, not from the
// upload itself.
type Service struct {
	documents document.Store
	logger    *slog.Logger
}

func New(documents document.Store, logger *slog.Logger) *Service {
	return &Service{documents: documents, logger: logger}
}

// Receive reads the file and stores it, returning the generated file ID.
func (s *Service) Receive(ctx context.Context, r io.Reader) (string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}
	fileID := uuid.NewString()
	if err := s.documents.Put(ctx, "upload-"+fileID, data); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	s.logger.InfoContext(ctx, "salary slip received", "file_id", fileID, "bytes", len(data))
	return fileID, nil
}
