package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ascend-community/backend/config"
	"github.com/ascend-community/backend/internal/model"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// ArchiveService writes selected plan snapshots to S3 for audit. Archiving
// is best effort; the plan engine works without it.
type ArchiveService struct {
	s3Config *config.S3Config
}

// Ensure ArchiveService implements Archiver
var _ Archiver = (*ArchiveService)(nil)

// NewArchiveService creates a new ArchiveService instance
func NewArchiveService(s3Config *config.S3Config) *ArchiveService {
	return &ArchiveService{s3Config: s3Config}
}

// ArchivePlan uploads a JSON snapshot of the plan and returns its object key.
func (s *ArchiveService) ArchivePlan(ctx context.Context, userID uuid.UUID, plan *model.PlanData) (string, error) {
	body, err := json.Marshal(plan)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plan snapshot: %w", err)
	}

	key := fmt.Sprintf("plan-archives/%s/%s/%d.json", userID, plan.PlanID, time.Now().UTC().Unix())
	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload plan snapshot: %w", err)
	}
	return key, nil
}
