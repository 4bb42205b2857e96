package service

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/medcare-africa/medcare-api/internal/store/memory"
	"github.com/medcare-africa/medcare-api/pkg/auth"
	"github.com/medcare-africa/medcare-api/pkg/metrics"
)

type testEnv struct {
	store         *memory.Store
	metrics       *metrics.Collector
	auth          *AuthService
	appointments  *AppointmentService
	prescriptions *PrescriptionService
	users         *UserService
	stats         *StatsService
	notifications *NotificationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store := memory.New()
	store.Seed()

	log := zap.NewNop()
	m := metrics.NewCollector("test", prometheus.NewRegistry())

	auditSvc := NewAuditService(NewZapSink(log), log)
	t.Cleanup(auditSvc.Shutdown)

	authSvc, err := NewAuthService(store.Users(), auth.NewTokenIssuer("test-secret"), auditSvc, m, log)
	if err != nil {
		t.Fatalf("NewAuthService: %v", err)
	}

	return &testEnv{
		store:         store,
		metrics:       m,
		auth:          authSvc,
		appointments:  NewAppointmentService(store.Appointments(), store.Users(), store.Notifications(), auditSvc, m, log),
		prescriptions: NewPrescriptionService(store.Prescriptions(), store.Users(), auditSvc, m, log),
		users:         NewUserService(store.Users(), auditSvc, log),
		stats:         NewStatsService(store.Users(), store.Appointments(), store.Prescriptions(), log),
		notifications: NewNotificationService(store.Notifications(), auditSvc, log),
	}
}
