package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feedback Metrics
var (
	// FeedbackCreatedTotal - количество созданных записей по командам
	FeedbackCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_created_total",
		Help: "Total number of feedback entries created",
	}, []string{"team", "status"})

	// FeedbackUpdatedTotal - количество изменений записей по новому статусу
	FeedbackUpdatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_updated_total",
		Help: "Total number of feedback entry updates",
	}, []string{"status"})

	// FeedbackDeletedTotal - количество удалённых записей
	FeedbackDeletedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "feedback_deleted_total",
		Help: "Total number of feedback entries deleted",
	})

	// FeedbackExportsTotal - количество выгрузок по формату
	FeedbackExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "feedback_exports_total",
		Help: "Total number of feedback exports",
	}, []string{"format"})

	// FeedbackEntriesCount - текущее количество записей по командам и статусам
	FeedbackEntriesCount = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "feedback_entries_count",
		Help: "Current number of feedback entries by team and status",
	}, []string{"team", "status"})
)

// User Metrics
var (
	// LoginAttemptsTotal - попытки входа по результату
	LoginAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "login_attempts_total",
		Help: "Total number of login attempts",
	}, []string{"result"})

	// UsersCreatedTotal - созданные учётные записи по роли
	UsersCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "users_created_total",
		Help: "Total number of user accounts created",
	}, []string{"role"})

	// PasswordRehashTotal - пароли из открытого вида, переведённые в bcrypt
	PasswordRehashTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "password_rehash_total",
		Help: "Total number of legacy plain-text passwords rehashed",
	})
)

// HTTP Metrics
var (
	// HTTPRequestsTotal - общее количество HTTP запросов
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	// HTTPRequestDuration - время обработки запроса
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP request in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})
)

// Database Metrics
var (
	// DBTransactionDuration - время выполнения транзакций
	DBTransactionDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "db_transaction_duration_seconds",
		Help:    "Duration of database transaction in seconds",
		Buckets: prometheus.DefBuckets,
	})

	// DBTransactionTotal - количество транзакций
	DBTransactionTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "db_transaction_total",
		Help: "Total number of database transactions",
	}, []string{"status"})

	// DBConnectionPoolActive - активные соединения
	DBConnectionPoolActive = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_active",
		Help: "Number of active database connections",
	})

	// DBConnectionPoolIdle - idle соединения
	DBConnectionPoolIdle = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "db_connection_pool_idle",
		Help: "Number of idle database connections",
	})
)

// Error Metrics
var (
	// DomainErrorsTotal - доменные ошибки
	DomainErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "domain_errors_total",
		Help: "Total number of domain errors",
	}, []string{"error_code"})
)

// Service Layer Metrics
var (
	// ServiceOperationDuration - время операций сервиса
	ServiceOperationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "service_operation_duration_seconds",
		Help:    "Duration of service operation in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
