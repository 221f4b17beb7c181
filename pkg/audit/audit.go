package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/arnavshah/vacancy-bidding-api/pkg/bidding"
	"github.com/arnavshah/vacancy-bidding-api/pkg/metrics"
	"github.com/arnavshah/vacancy-bidding-api/pkg/models"
)

const (
	// DefaultKey is the storage key holding the serialized log
	DefaultKey = "auditLogs"
	// MaxEntries caps the log; older entries are dropped first
	MaxEntries = 1000

	// CorruptLogWarning is surfaced to callers when the stored log was reset
	CorruptLogWarning = "Audit log could not be read and was reset."

	timestampLayout = "2006-01-02T15:04:05.000Z07:00"
)

// Storage is a key-value store holding the serialized log.
// Get reports ok=false when the key has never been written.
type Storage interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// Event describes one auditable change
type Event struct {
	Actor      string
	Action     models.AuditAction
	TargetType string
	TargetID   string
	Details    map[string]any
}

// OfferingChange describes a vacancy moving between offering tiers
type OfferingChange struct {
	VacancyID string `json:"vacancyId"`
	From      string `json:"from"`
	To        string `json:"to"`
	Actor     string `json:"actor"`
	Reason    string `json:"reason"`
	Note      string `json:"note"`
}

// Filter narrows a log read. Empty fields match everything.
type Filter struct {
	Date      string `form:"date"`
	VacancyID string `form:"vacancyId"`
}

// Logs is a snapshot of the stored log. Warning is set when the persisted
// log could not be read.
type Logs struct {
	Entries []models.AuditLogEntry `json:"entries"`
	Warning string                 `json:"warning,omitempty"`
}

// Logger appends to and reads the audit log kept in Store
type Logger struct {
	Store Storage
	Log   *zap.Logger
	Key   string
	NewID bidding.IDGenerator
	Now   func() time.Time
}

// NewLogger creates a Logger with uuid ids and the wall clock
func NewLogger(store Storage, log *zap.Logger) *Logger {
	if log == nil {
		log = zap.NewNop()
	}
	return &Logger{
		Store: store,
		Log:   log,
		Key:   DefaultKey,
		NewID: bidding.NewUUID,
		Now:   time.Now,
	}
}

// LogOfferingChange records an OFFERING_TIER_CHANGED entry for a vacancy
func (l *Logger) LogOfferingChange(ctx context.Context, c OfferingChange) (models.AuditLogEntry, string, error) {
	return l.Append(ctx, Event{
		Actor:      c.Actor,
		Action:     models.ActionOfferingTierChanged,
		TargetType: "vacancy",
		TargetID:   c.VacancyID,
		Details: map[string]any{
			"from":   c.From,
			"to":     c.To,
			"reason": c.Reason,
			"note":   c.Note,
		},
	})
}

// Append adds an entry, trims the log to MaxEntries and persists it. The
// returned string is a user-facing warning when the previous log was reset.
func (l *Logger) Append(ctx context.Context, ev Event) (models.AuditLogEntry, string, error) {
	entries, warning, err := l.load(ctx)
	if err != nil {
		return models.AuditLogEntry{}, "", err
	}

	entry := models.AuditLogEntry{
		ID:         l.NewID(),
		Ts:         l.Now().UTC().Format(timestampLayout),
		Actor:      ev.Actor,
		Action:     ev.Action,
		TargetType: ev.TargetType,
		TargetID:   ev.TargetID,
		Details:    ev.Details,
	}

	entries = append(entries, entry)
	if len(entries) > MaxEntries {
		entries = entries[len(entries)-MaxEntries:]
	}

	if err := l.save(ctx, entries); err != nil {
		return models.AuditLogEntry{}, warning, err
	}

	metrics.AuditEntries.WithLabelValues(string(ev.Action)).Inc()
	l.Log.Info("audit entry appended",
		zap.String("action", string(ev.Action)),
		zap.String("target_id", ev.TargetID),
		zap.String("actor", ev.Actor),
	)
	return entry, warning, nil
}

// GetAuditLogs returns the whole log, oldest first
func (l *Logger) GetAuditLogs(ctx context.Context) Logs {
	entries, warning, err := l.load(ctx)
	if err != nil {
		l.Log.Warn("audit log read failed", zap.Error(err))
		return Logs{Entries: []models.AuditLogEntry{}, Warning: CorruptLogWarning}
	}
	return Logs{Entries: entries, Warning: warning}
}

// FilterAuditLogs returns entries whose timestamp starts with f.Date and
// whose target is f.VacancyID
func (l *Logger) FilterAuditLogs(ctx context.Context, f Filter) Logs {
	logs := l.GetAuditLogs(ctx)
	filtered := make([]models.AuditLogEntry, 0, len(logs.Entries))
	for _, e := range logs.Entries {
		if f.Date != "" && !strings.HasPrefix(e.Ts, f.Date) {
			continue
		}
		if f.VacancyID != "" && e.TargetID != f.VacancyID {
			continue
		}
		filtered = append(filtered, e)
	}
	logs.Entries = filtered
	return logs
}

// ClearAuditLogs empties the log
func (l *Logger) ClearAuditLogs(ctx context.Context) error {
	return l.save(ctx, []models.AuditLogEntry{})
}

// load reads the stored log. An unparsable log is reset to empty and
// reported through the warning; only storage I/O errors are returned.
func (l *Logger) load(ctx context.Context) ([]models.AuditLogEntry, string, error) {
	raw, ok, err := l.Store.Get(ctx, l.Key)
	if err != nil {
		return nil, "", errors.Wrap(err, "read audit log")
	}
	if !ok || raw == "" {
		return []models.AuditLogEntry{}, "", nil
	}

	var entries []models.AuditLogEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		metrics.AuditResets.Inc()
		l.Log.Warn("resetting unreadable audit log", zap.String("key", l.Key), zap.Error(err))
		if err := l.save(ctx, []models.AuditLogEntry{}); err != nil {
			l.Log.Error("audit log reset failed", zap.Error(err))
		}
		return []models.AuditLogEntry{}, CorruptLogWarning, nil
	}
	if entries == nil {
		entries = []models.AuditLogEntry{}
	}
	return entries, "", nil
}

func (l *Logger) save(ctx context.Context, entries []models.AuditLogEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return errors.Wrap(err, "encode audit log")
	}
	return errors.Wrap(l.Store.Set(ctx, l.Key, string(data)), "write audit log")
}
