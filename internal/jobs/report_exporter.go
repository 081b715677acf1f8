package jobs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"prepmate/interview/internal/models"
	"prepmate/interview/internal/repositories"
)

// ReportExporterJob periodically writes completed-session reports as JSONL
// for offline analysis. Read-only with respect to interview state.
type ReportExporterJob struct {
	sessions *repositories.SessionRepository
	answers  *repositories.AnswerRepository
	config   *ExporterConfig
	logger   *zap.Logger
	cron     *cron.Cron
}

// ExporterConfig contains configuration for the exporter job
type ExporterConfig struct {
	Schedule  string // Cron schedule (e.g., "0 2 * * *" for 2 AM daily)
	ExportDir string // Directory to store exported files
	Enabled   bool
}

// SessionReport is one exported line: the session plus per-question scores.
type SessionReport struct {
	SessionID  uint      `json:"session_id"`
	UserID     uint      `json:"user_id"`
	Topic      string    `json:"topic"`
	Difficulty string    `json:"difficulty"`
	Questions  int       `json:"questions"`
	Scores     []*int    `json:"scores"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewReportExporterJob(
	sessions *repositories.SessionRepository,
	answers *repositories.AnswerRepository,
	config *ExporterConfig,
	logger *zap.Logger,
) *ReportExporterJob {
	return &ReportExporterJob{
		sessions: sessions,
		answers:  answers,
		config:   config,
		logger:   logger,
		cron:     cron.New(),
	}
}

// Start begins the scheduled export job
func (job *ReportExporterJob) Start() error {
	if !job.config.Enabled {
		job.logger.Info("session report export is disabled, skipping scheduler")
		return nil
	}

	_, err := job.cron.AddFunc(job.config.Schedule, func() {
		if err := job.RunExport(); err != nil {
			job.logger.Error("report export run failed", zap.Error(err))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule export job: %w", err)
	}

	job.cron.Start()
	job.logger.Info("session report exporter started", zap.String("schedule", job.config.Schedule))
	return nil
}

// Stop stops the scheduled export job
func (job *ReportExporterJob) Stop() {
	if job.cron != nil {
		job.cron.Stop()
	}
}

// RunExport performs a single export run over all completed sessions.
func (job *ReportExporterJob) RunExport() error {
	sessions, err := job.sessions.ListCompleted()
	if err != nil {
		return fmt.Errorf("failed to list completed sessions: %w", err)
	}
	if len(sessions) == 0 {
		job.logger.Info("no completed sessions to export")
		return nil
	}

	data, err := job.encodeReports(sessions)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(job.config.ExportDir, 0o755); err != nil {
		return fmt.Errorf("failed to create export directory: %w", err)
	}

	filename := filepath.Join(job.config.ExportDir,
		fmt.Sprintf("sessions_%s.jsonl", time.Now().Format("20060102_150405")))
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	job.logger.Info("exported completed sessions",
		zap.Int("count", len(sessions)),
		zap.String("file", filename))
	return nil
}

func (job *ReportExporterJob) encodeReports(sessions []models.InterviewSession) ([]byte, error) {
	var out []byte
	for i, session := range sessions {
		report := SessionReport{
			SessionID:  session.ID,
			UserID:     session.UserID,
			Topic:      session.Topic,
			Difficulty: session.Difficulty,
			Questions:  len(session.Questions),
			CreatedAt:  session.CreatedAt,
		}
		for _, question := range session.Questions {
			answer, err := job.answers.FirstByQuestionAndUser(question.ID, session.UserID)
			if err != nil {
				return nil, fmt.Errorf("failed to load answers for export: %w", err)
			}
			if answer != nil {
				report.Scores = append(report.Scores, answer.Score)
			}
		}

		line, err := json.Marshal(report)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal report: %w", err)
		}
		out = append(out, line...)
		if i < len(sessions)-1 {
			out = append(out, '\n')
		}
	}
	return out, nil
}
