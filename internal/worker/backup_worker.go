package worker

// backup_worker.go
// Processes backup jobs from QueueBackup: writes a full xlsx snapshot of the
// books to disk and optionally mails it to the owner's backup address.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fady121/alfady/internal/infra"
	"github.com/fady121/alfady/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	backupTickInterval = time.Hour
	backupInterval     = 24 * time.Hour

	// lastBackupKey survives restarts so a flapping process does not
	// generate a snapshot on every boot.
	lastBackupKey = "backup:last_run"
)

// BackupJobPayload is the job envelope sent to QueueBackup.
type BackupJobPayload struct {
	Reason string `json:"reason"`
}

// BackupWorker writes xlsx snapshots and mails them.
type BackupWorker struct {
	backupSvc   service.BackupService
	mailer      *infra.Mailer
	backupEmail string
}

func NewBackupWorker(backupSvc service.BackupService, mailer *infra.Mailer, backupEmail string) *BackupWorker {
	return &BackupWorker{backupSvc: backupSvc, mailer: mailer, backupEmail: backupEmail}
}

// Process writes the snapshot file and, when a backup address is configured,
// sends it as an attachment.
func (w *BackupWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload BackupJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("backup_worker: invalid payload")
		return
	}

	path, err := w.backupSvc.WriteBackupFile(ctx)
	if err != nil {
		log.Error().Err(err).Msg("backup_worker: failed to write backup")
		return
	}
	log.Info().Str("path", path).Str("reason", payload.Reason).Msg("backup_worker: snapshot written")

	if w.backupEmail == "" {
		return
	}
	subject := fmt.Sprintf("Alfady backup %s", time.Now().Format("2006-01-02"))
	body := "Automatic backup of the shop's books. Keep this file somewhere safe."
	if err := w.mailer.SendBackup(w.backupEmail, subject, body, path); err != nil {
		log.Error().Err(err).Str("to", w.backupEmail).Msg("backup_worker: failed to send backup email")
		return
	}
	log.Info().Str("to", w.backupEmail).Msg("backup_worker: snapshot mailed")
}

// BackupCronConfig holds the dependencies for the rolling backup goroutine.
type BackupCronConfig struct {
	RDB        *redis.Client
	Dispatcher *Dispatcher
}

// StartBackupCron launches a goroutine that ticks hourly and enqueues a
// backup job whenever more than 24h passed since the last snapshot. The
// last-run timestamp lives in Redis so the schedule rolls, it is not pinned
// to a wall-clock hour.
func StartBackupCron(ctx context.Context, cfg BackupCronConfig) {
	go func() {
		ticker := time.NewTicker(backupTickInterval)
		defer ticker.Stop()

		log.Info().Msg("backup_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("backup_cron: shutting down")
				return
			case <-ticker.C:
				maybeEnqueueBackup(ctx, cfg)
			}
		}
	}()
}

func maybeEnqueueBackup(ctx context.Context, cfg BackupCronConfig) {
	last, err := cfg.RDB.Get(ctx, lastBackupKey).Result()
	if err == nil {
		if t, perr := time.Parse(time.RFC3339, last); perr == nil && time.Since(t) < backupInterval {
			return
		}
	} else if err != redis.Nil {
		log.Error().Err(err).Msg("backup_cron: failed to read last-run key")
		return
	}

	if err := cfg.Dispatcher.EnqueueBackup(ctx, BackupJobPayload{Reason: "daily"}); err != nil {
		log.Error().Err(err).Msg("backup_cron: failed to enqueue backup job")
		return
	}
	if err := cfg.RDB.Set(ctx, lastBackupKey, time.Now().Format(time.RFC3339), 0).Err(); err != nil {
		log.Error().Err(err).Msg("backup_cron: failed to record last-run")
	}
	log.Info().Msg("backup_cron: daily backup enqueued")
}
