package service

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type AuditEntry struct {
	Action       string
	ResourceType string
	ResourceID   string
	Actor        string
	Detail       string
}

// AuditSink receives audit entries. The store holds no audit collection, so
// the default sink writes structured log lines only.
type AuditSink interface {
	Write(ctx context.Context, entry *AuditEntry) error
}

type ZapSink struct {
	log *zap.Logger
}

func NewZapSink(log *zap.Logger) *ZapSink {
	return &ZapSink{log: log}
}

func (s *ZapSink) Write(_ context.Context, entry *AuditEntry) error {
	s.log.Info("audit",
		zap.String("action", entry.Action),
		zap.String("resource_type", entry.ResourceType),
		zap.String("resource_id", entry.ResourceID),
		zap.String("actor", entry.Actor),
		zap.String("detail", entry.Detail),
	)
	return nil
}

type AuditService struct {
	sink    AuditSink
	log     *zap.Logger
	entries chan *AuditEntry
	done    chan struct{}
}

const auditBufferSize = 10_000

func NewAuditService(sink AuditSink, log *zap.Logger) *AuditService {
	svc := &AuditService{
		sink:    sink,
		log:     log,
		entries: make(chan *AuditEntry, auditBufferSize),
		done:    make(chan struct{}),
	}
	go svc.worker()
	return svc
}

// LogAsync enqueues an audit entry for async delivery.
// If the buffer is full, the entry is dropped and a warning is emitted.
func (s *AuditService) LogAsync(_ context.Context, entry AuditEntry) {
	e := entry
	select {
	case s.entries <- &e:
	default:
		s.log.Warn("audit buffer full, dropping entry",
			zap.String("action", entry.Action),
			zap.String("resource", entry.ResourceType),
		)
	}
}

func (s *AuditService) Shutdown() {
	close(s.entries)
	select {
	case <-s.done:
	case <-time.After(10 * time.Second):
		s.log.Warn("audit service shutdown timed out; some entries may be lost")
	}
}

func (s *AuditService) worker() {
	defer close(s.done)
	for entry := range s.entries {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := s.sink.Write(ctx, entry); err != nil {
			s.log.Error("failed to deliver audit entry", zap.Error(err))
		}
		cancel()
	}
}
