package cron

import (
	"fmt"
	"sync"
	"time"

	"github.com/everestllcweb-png/backend/config"
	"github.com/gofiber/fiber/v2/log"
	"github.com/robfig/cron/v3"
)

const (
	// KeepaliveSchedule keeps free-tier hosts from idling the process
	KeepaliveSchedule = "@every 2m"
	// KeepaliveStartupDelay is the wait before the first ping after start
	KeepaliveStartupDelay = 5 * time.Second
)

// CronManager manages all scheduled cron jobs
type CronManager struct {
	cron      *cron.Cron
	keepalive *KeepaliveJob
	enabled   bool

	mu      sync.Mutex
	startup *time.Timer
}

// NewCronManager creates a new cron manager
func NewCronManager(env *config.EnviornmentVariable) *CronManager {
	// Create cron with seconds precision
	c := cron.New(cron.WithSeconds())

	return &CronManager{
		cron:      c,
		keepalive: NewKeepaliveJob(env.KeepaliveTarget()),
		enabled:   env.KEEPALIVE_ENABLED,
	}
}

// Start starts all cron jobs
func (m *CronManager) Start() error {
	if !m.enabled {
		log.Info("Keepalive disabled, no cron jobs scheduled")
		return nil
	}

	log.Info("Starting cron jobs...")

	// Register all jobs
	if err := m.registerJobs(); err != nil {
		return err
	}

	// Start the cron scheduler
	m.cron.Start()

	m.mu.Lock()
	m.startup = time.AfterFunc(KeepaliveStartupDelay, m.runKeepalive)
	m.mu.Unlock()

	log.Info("Cron jobs started successfully")
	return nil
}

// Stop stops all cron jobs and waits for running ones to finish
func (m *CronManager) Stop() {
	log.Info("Stopping cron jobs...")

	m.mu.Lock()
	if m.startup != nil {
		m.startup.Stop()
	}
	m.mu.Unlock()

	ctx := m.cron.Stop()
	<-ctx.Done()
	log.Info("Cron jobs stopped")
}

// registerJobs registers all cron jobs with their schedules
func (m *CronManager) registerJobs() error {
	if _, err := m.cron.AddFunc(KeepaliveSchedule, m.runKeepalive); err != nil {
		return err
	}

	log.Infof("Keepalive scheduled (%s) against %s", KeepaliveSchedule, m.keepalive.Target())
	return nil
}

func (m *CronManager) runKeepalive() {
	const jobName = "keepalive"

	m.logJobStart(jobName)
	status, err := m.keepalive.Ping()
	if err != nil {
		m.logJobError(jobName, err)
		return
	}
	m.logJobComplete(jobName, fmt.Sprintf("%s answered %d", m.keepalive.Target(), status))
}

// logJobStart logs the start of a cron job
func (m *CronManager) logJobStart(jobName string) {
	log.Debugf("[CRON] Starting job: %s at %s", jobName, time.Now().Format(time.RFC3339))
}

// logJobComplete logs successful completion of a cron job
func (m *CronManager) logJobComplete(jobName string, message string) {
	log.Infof("[CRON] Completed job: %s - %s", jobName, message)
}

// logJobError logs a cron job error. Failures never reach request handling.
func (m *CronManager) logJobError(jobName string, err error) {
	log.Warnf("[CRON] Error in job: %s - %v", jobName, err)
}
