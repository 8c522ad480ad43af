package digitalocean

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/everestllcweb-png/backend/config"
	"github.com/google/uuid"
)

// PresignExpiry is how long a presigned upload URL stays valid
const PresignExpiry = 15 * time.Minute

// SpacesClient handles DigitalOcean Spaces operations
type SpacesClient struct {
	s3Client *s3.S3
	bucket   string
	region   string
	endpoint string
	cdnURL   string
	now      func() time.Time
}

// SpacesConfig holds configuration for Spaces client
type SpacesConfig struct {
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	Endpoint  string
	CDNURL    string
}

// PresignedUpload tells the browser where and how to PUT a file
type PresignedUpload struct {
	UploadURL string            `json:"uploadUrl"`
	PublicURL string            `json:"publicUrl"`
	Key       string            `json:"key"`
	Headers   map[string]string `json:"headers"`
	ExpiresAt time.Time         `json:"expiresAt"`
}

// ConfigFromEnv reads the Spaces settings from the process configuration
func ConfigFromEnv(env *config.EnviornmentVariable) SpacesConfig {
	endpoint := env.DO_SPACES_ENDPOINT
	if endpoint == "" && env.DO_SPACES_REGION != "" {
		endpoint = fmt.Sprintf("%s.digitaloceanspaces.com", env.DO_SPACES_REGION)
	}
	return SpacesConfig{
		AccessKey: env.DO_SPACES_ACCESS_KEY,
		SecretKey: env.DO_SPACES_SECRET_KEY,
		Bucket:    env.DO_SPACES_BUCKET,
		Region:    env.DO_SPACES_REGION,
		Endpoint:  strings.TrimPrefix(endpoint, "https://"),
		CDNURL:    strings.TrimRight(env.DO_SPACES_CDN_ENDPOINT, "/"),
	}
}

// NewSpacesClient creates a new Spaces client
func NewSpacesClient(config SpacesConfig) (*SpacesClient, error) {
	// Create AWS session with DigitalOcean Spaces endpoint
	sess, err := session.NewSession(&aws.Config{
		Credentials: credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		),
		Endpoint:         aws.String("https://" + config.Endpoint),
		Region:           aws.String(config.Region),
		S3ForcePathStyle: aws.Bool(false),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Spaces session: %w", err)
	}

	return &SpacesClient{
		s3Client: s3.New(sess),
		bucket:   config.Bucket,
		region:   config.Region,
		endpoint: config.Endpoint,
		cdnURL:   config.CDNURL,
		now:      time.Now,
	}, nil
}

// PresignUpload returns a URL the browser can PUT a public image to directly
func (s *SpacesClient) PresignUpload(ctx context.Context, folder, filename, contentType string) (*PresignedUpload, error) {
	if contentType == "" {
		contentType = GetContentType(filename)
	}
	key := GenerateKey(folder, filename)

	req, _ := s.s3Client.PutObjectRequest(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		ACL:         aws.String("public-read"),
		ContentType: aws.String(contentType),
	})
	req.SetContext(ctx)

	url, err := req.Presign(PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &PresignedUpload{
		UploadURL: url,
		PublicURL: s.GetFileURL(key),
		Key:       key,
		Headers: map[string]string{
			"Content-Type": contentType,
			"x-amz-acl":    "public-read",
		},
		ExpiresAt: s.now().Add(PresignExpiry).UTC(),
	}, nil
}

// DeleteFile deletes a file from Spaces
func (s *SpacesClient) DeleteFile(ctx context.Context, key string) error {
	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// GetFileURL returns the public URL for a file
func (s *SpacesClient) GetFileURL(key string) string {
	if s.cdnURL != "" {
		return fmt.Sprintf("%s/%s", s.cdnURL, key)
	}
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, s.endpoint, key)
}

var unsafeKeyChars = regexp.MustCompile(`[^a-z0-9._-]+`)

// GenerateKey generates a unique key for file storage: <folder>/<uuid>-<name>
func GenerateKey(folder, filename string) string {
	folder = strings.Trim(unsafeKeyChars.ReplaceAllString(strings.ToLower(folder), "-"), "-./")
	if folder == "" {
		folder = "uploads"
	}

	ext := strings.ToLower(filepath.Ext(filename))
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Trim(unsafeKeyChars.ReplaceAllString(strings.ToLower(base), "-"), "-.")
	if base == "" {
		base = "file"
	}

	return fmt.Sprintf("%s/%s-%s%s", folder, uuid.NewString(), base, ext)
}

// GetContentType returns the content type for a filename
func GetContentType(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".png":
		return "image/png"
	case ".gif":
		return "image/gif"
	case ".webp":
		return "image/webp"
	case ".svg":
		return "image/svg+xml"
	case ".avif":
		return "image/avif"
	case ".pdf":
		return "application/pdf"
	default:
		return "application/octet-stream"
	}
}
