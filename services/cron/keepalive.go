package cron

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
)

// KeepaliveJob pings the service's own health endpoint
type KeepaliveJob struct {
	target  string
	timeout time.Duration
}

// NewKeepaliveJob creates a job pinging target
func NewKeepaliveJob(target string) *KeepaliveJob {
	return &KeepaliveJob{
		target:  target,
		timeout: 10 * time.Second,
	}
}

// Target returns the pinged URL
func (j *KeepaliveJob) Target() string {
	return j.target
}

// Ping performs one GET and returns the response status.
// Non-2xx responses are reported as errors.
func (j *KeepaliveJob) Ping() (int, error) {
	agent := fiber.Get(j.target)
	agent.Timeout(j.timeout)
	if err := agent.Parse(); err != nil {
		return 0, fmt.Errorf("invalid keepalive target %q: %w", j.target, err)
	}

	status, _, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("keepalive ping failed: %w", errs[0])
	}
	if status < 200 || status >= 300 {
		return status, fmt.Errorf("keepalive ping returned %d", status)
	}
	return status, nil
}
