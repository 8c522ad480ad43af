package upload

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/everestllcweb-png/backend/config"
	"github.com/everestllcweb-png/backend/services"
	"github.com/gofiber/fiber/v2/log"
)

// DefaultFolder is used when the client does not name a folder
const DefaultFolder = "blogs"

// Signature lets the browser upload one asset straight to Cloudinary
type Signature struct {
	Timestamp int64  `json:"timestamp"`
	Signature string `json:"signature"`
	APIKey    string `json:"apiKey"`
	Folder    string `json:"folder"`
	CloudName string `json:"cloudName"`
}

// Signer issues Cloudinary upload signatures
type Signer struct {
	configured bool
	cloudName  string
	apiKey     string
	apiSecret  string
	now        func() time.Time
}

// NewSigner creates a signer from the process configuration
func NewSigner(env *config.EnviornmentVariable) *Signer {
	configured := env.CloudinaryConfigured()
	if !configured {
		log.Warn("Cloudinary credentials not set, upload signatures are disabled")
	}

	return &Signer{
		configured: configured,
		cloudName:  env.CLOUDINARY_CLOUD_NAME,
		apiKey:     env.CLOUDINARY_API_KEY,
		apiSecret:  env.CLOUDINARY_API_SECRET,
		now:        time.Now,
	}
}

// SetClock replaces the time source
func (s *Signer) SetClock(now func() time.Time) {
	s.now = now
}

// Signature signs an upload into folder
func (s *Signer) Signature(folder string) (*Signature, error) {
	if !s.configured {
		return nil, services.NewError(services.ErrConfiguration, "Cloudinary credentials are not configured", nil)
	}

	folder = strings.TrimSpace(folder)
	if folder == "" {
		folder = DefaultFolder
	}
	timestamp := s.now().Unix()

	return &Signature{
		Timestamp: timestamp,
		Signature: Sign(folder, timestamp, s.apiSecret),
		APIKey:    s.apiKey,
		Folder:    folder,
		CloudName: s.cloudName,
	}, nil
}

// Sign returns the hex SHA-1 of "folder=<folder>&timestamp=<timestamp>" followed by secret
func Sign(folder string, timestamp int64, secret string) string {
	sum := sha1.Sum([]byte(fmt.Sprintf("folder=%s&timestamp=%d%s", folder, timestamp, secret)))
	return hex.EncodeToString(sum[:])
}
