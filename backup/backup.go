package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/7248-om/gshock12/logger"
	"github.com/7248-om/gshock12/metrics"
	"github.com/robfig/cron/v3"
)

// Job copies the uploads folder into a timestamped backup folder and prunes
// backups older than the retention window.
type Job struct {
	SrcDir    string
	BackupDir string
	Retention time.Duration
	now       func() time.Time
}

func NewJob(srcDir, backupDir string, retention time.Duration) *Job {
	return &Job{SrcDir: srcDir, BackupDir: backupDir, Retention: retention, now: time.Now}
}

// Run performs one backup and returns the destination folder.
func (j *Job) Run() (string, error) {
	log := logger.WithComponent("backup")

	destDir := filepath.Join(j.BackupDir, j.now().Format("2006-01-02_15-04-05"))
	if err := copyDir(j.SrcDir, destDir); err != nil {
		metrics.RecordBackup(false)
		log.WithError(err).Error("❌ Failed to back up uploads")
		return "", err
	}
	metrics.RecordBackup(true)
	log.Infof("✅ Uploads backed up to %s", destDir)

	j.cleanup()
	return destDir, nil
}

// Schedule registers the job on a cron spec such as "0 2 * * *" and starts the scheduler.
func (j *Job) Schedule(spec string) (*cron.Cron, error) {
	c := cron.New()
	if _, err := c.AddFunc(spec, func() { _, _ = j.Run() }); err != nil {
		return nil, fmt.Errorf("invalid backup schedule %q: %w", spec, err)
	}
	c.Start()
	logger.WithComponent("backup").Infof("⏳ Upload backups scheduled: %s", spec)
	return c, nil
}

// copyDir recursively copies a folder
func copyDir(src, dest string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0755); err != nil {
		return err
	}
	for _, entry := range entries {
		srcPath := filepath.Join(src, entry.Name())
		destPath := filepath.Join(dest, entry.Name())

		if entry.IsDir() {
			if err := copyDir(srcPath, destPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(srcPath, destPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err = io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}

func (j *Job) cleanup() {
	log := logger.WithComponent("backup")

	entries, err := os.ReadDir(j.BackupDir)
	if err != nil {
		log.WithError(err).Error("❌ Failed to read backup directory")
		return
	}

	cutoff := j.now().Add(-j.Retention)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		folderPath := filepath.Join(j.BackupDir, entry.Name())
		info, err := os.Stat(folderPath)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.RemoveAll(folderPath); err != nil {
				log.WithError(err).Errorf("❌ Failed to remove old backup %s", folderPath)
			} else {
				log.Infof("🗑️ Removed old backup: %s", folderPath)
			}
		}
	}
}
