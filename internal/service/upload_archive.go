package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"path/filepath"
	"thinkquest_backend/internal/model"
	"thinkquest_backend/pkg/logger"

	"go.uber.org/zap"
)

// ArchiveUploads persists a submission's supporting files so a run can
// be reviewed later. Failures are logged and skipped; archival never
// blocks scoring.
func (s *StorageService) ArchiveUploads(ctx context.Context, userID uint, uploads []Upload) []string {
	urls := make([]string, 0, len(uploads))
	for _, u := range uploads {
		data, err := base64.StdEncoding.DecodeString(stripDataURLPrefix(u.Base64))
		if err != nil {
			logger.Log.Warn("Skipping upload with invalid base64",
				zap.Uint("userID", userID), zap.String("name", u.Name))
			continue
		}

		ext := filepath.Ext(u.Name)
		filename := fmt.Sprintf("prototypes/%d/%s%s", userID, model.GenerateUUID(), ext)
		url, err := s.Upload(ctx, filename, bytes.NewReader(data), int64(len(data)), u.Type)
		if err != nil {
			logger.Log.Warn("Failed to archive upload",
				zap.Uint("userID", userID), zap.String("name", u.Name), zap.Error(err))
			continue
		}
		urls = append(urls, url)
	}
	return urls
}
