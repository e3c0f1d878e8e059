package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditAction represents the type of action being audited
type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionUpdate     AuditAction = "update"
	AuditActionDelete     AuditAction = "delete"
	AuditActionLogin      AuditAction = "login"
	AuditActionSignup     AuditAction = "signup"
	AuditActionPublish    AuditAction = "publish"
	AuditActionArchive    AuditAction = "archive"
	AuditActionNewVersion AuditAction = "new_version"
	AuditActionStatus     AuditAction = "status_change"
)

// AuditEntry is one administrative action on record
type AuditEntry struct {
	ID           string                 `json:"id"`
	TenantID     *string                `json:"tenant_id,omitempty"`
	AdminID      *string                `json:"admin_id,omitempty"`
	AdminEmail   string                 `json:"admin_email,omitempty"`
	AdminRole    string                 `json:"admin_role,omitempty"`
	Action       AuditAction            `json:"action"`
	ResourceType string                 `json:"resource_type"`
	ResourceID   *string                `json:"resource_id,omitempty"`
	Method       string                 `json:"method"`
	Path         string                 `json:"path"`
	StatusCode   int                    `json:"status_code"`
	IPAddress    string                 `json:"ip_address,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	Metadata     map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt    time.Time              `json:"created_at"`
}

// AuditSink persists batches of audit entries
type AuditSink interface {
	Write(ctx context.Context, entries []*AuditEntry)
}

// PostgresAuditSink batch-inserts audit entries into audit_logs
type PostgresAuditSink struct {
	pool *pgxpool.Pool
}

// NewPostgresAuditSink creates an AuditSink backed by PostgreSQL
func NewPostgresAuditSink(pool *pgxpool.Pool) *PostgresAuditSink {
	return &PostgresAuditSink{pool: pool}
}

// Write batch-inserts the entries. Failures are dropped; the audit trail
// must never take the request path down with it.
func (s *PostgresAuditSink) Write(ctx context.Context, entries []*AuditEntry) {
	query := `
		INSERT INTO audit_logs (id, tenant_id, admin_id, admin_email, admin_role, action, resource_type,
		                        resource_id, method, path, status_code, ip_address, user_agent, metadata, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14::jsonb, $15)
	`

	batch := &pgx.Batch{}
	for _, entry := range entries {
		metadata, _ := json.Marshal(entry.Metadata)
		if string(metadata) == "null" {
			metadata = []byte("{}")
		}
		batch.Queue(query,
			entry.ID, entry.TenantID, entry.AdminID, entry.AdminEmail, entry.AdminRole,
			string(entry.Action), entry.ResourceType, entry.ResourceID,
			entry.Method, entry.Path, entry.StatusCode,
			entry.IPAddress, entry.UserAgent, string(metadata), entry.CreatedAt,
		)
	}

	results := s.pool.SendBatch(ctx, batch)
	defer results.Close()
	for range entries {
		if _, err := results.Exec(); err != nil {
			return
		}
	}
}

// AuditConfig holds configuration for the audit middleware
type AuditConfig struct {
	Sink AuditSink
	// BufferSize is the size of the async audit buffer (default: 1000)
	BufferSize int
	// FlushInterval is how often to flush the buffer (default: 5 seconds)
	FlushInterval time.Duration
	// BatchSize is the maximum number of entries per insert batch (default: 100)
	BatchSize int
	// SkipPaths lists path prefixes that are never audited
	SkipPaths []string
}

// AuditLogger buffers entries and flushes them in the background, so the
// request path never waits on the audit table.
type AuditLogger struct {
	config    *AuditConfig
	buffer    chan *AuditEntry
	wg        sync.WaitGroup
	ctx       context.Context
	cancel    context.CancelFunc
	closeOnce sync.Once
}

// NewAuditLogger creates a new audit logger and starts its worker
func NewAuditLogger(config *AuditConfig) *AuditLogger {
	if config.BufferSize <= 0 {
		config.BufferSize = 1000
	}
	if config.FlushInterval <= 0 {
		config.FlushInterval = 5 * time.Second
	}
	if config.BatchSize <= 0 {
		config.BatchSize = 100
	}

	ctx, cancel := context.WithCancel(context.Background())
	al := &AuditLogger{
		config: config,
		buffer: make(chan *AuditEntry, config.BufferSize),
		ctx:    ctx,
		cancel: cancel,
	}

	al.wg.Add(1)
	go al.worker()
	return al
}

// Log adds an entry to the buffer without blocking. A full buffer drops
// the entry rather than stalling the request.
func (al *AuditLogger) Log(entry *AuditEntry) {
	select {
	case al.buffer <- entry:
	default:
	}
}

// Close flushes buffered entries and stops the worker
func (al *AuditLogger) Close() error {
	al.closeOnce.Do(func() {
		al.cancel()
		close(al.buffer)
		al.wg.Wait()
	})
	return nil
}

func (al *AuditLogger) worker() {
	defer al.wg.Done()

	ticker := time.NewTicker(al.config.FlushInterval)
	defer ticker.Stop()

	batch := make([]*AuditEntry, 0, al.config.BatchSize)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		al.config.Sink.Write(ctx, batch)
		cancel()
		batch = make([]*AuditEntry, 0, al.config.BatchSize)
	}

	for {
		select {
		case entry, ok := <-al.buffer:
			if !ok {
				flush()
				return
			}
			batch = append(batch, entry)
			if len(batch) >= al.config.BatchSize {
				flush()
			}
		case <-ticker.C:
			flush()
		case <-al.ctx.Done():
			flush()
			return
		}
	}
}

// Audit records every mutating admin request. Reads are not audited.
func Audit(logger *AuditLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		method := c.Request.Method
		if method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}
		for _, prefix := range logger.config.SkipPaths {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}

		startTime := time.Now()
		c.Next()

		path := c.Request.URL.Path
		entry := &AuditEntry{
			ID:         uuid.New().String(),
			Action:     actionFor(method, path),
			Method:     method,
			Path:       path,
			StatusCode: c.Writer.Status(),
			IPAddress:  clientIP(c),
			UserAgent:  c.GetHeader("User-Agent"),
			CreatedAt:  startTime,
		}
		entry.ResourceType, entry.ResourceID = resourceFor(c)

		if principal, ok := CurrentPrincipal(c); ok {
			entry.AdminID = &principal.AdminID
			entry.AdminEmail = principal.Email
			entry.AdminRole = string(principal.Role)
			if principal.TenantID != "" {
				tenantID := principal.TenantID
				entry.TenantID = &tenantID
			}
		}

		logger.Log(entry)
	}
}

// actionFor maps a request to its audit action. Lifecycle endpoints carry
// the action in the last path segment.
func actionFor(method, path string) AuditAction {
	switch {
	case strings.HasSuffix(path, "/login"):
		return AuditActionLogin
	case strings.HasSuffix(path, "/signup"):
		return AuditActionSignup
	case strings.HasSuffix(path, "/publish"):
		return AuditActionPublish
	case strings.HasSuffix(path, "/archive"):
		return AuditActionArchive
	case strings.HasSuffix(path, "/versions"):
		return AuditActionNewVersion
	case strings.HasSuffix(path, "/status"):
		return AuditActionStatus
	}

	switch method {
	case http.MethodPost:
		return AuditActionCreate
	case http.MethodPut, http.MethodPatch:
		return AuditActionUpdate
	case http.MethodDelete:
		return AuditActionDelete
	default:
		return AuditActionUpdate
	}
}

// resourceFor derives the resource type and ID from the matched route
func resourceFor(c *gin.Context) (string, *string) {
	parts := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")

	resourceType := "unknown"
	for _, part := range parts {
		switch part {
		case "auth":
			resourceType = "session"
		case "salon", "salons":
			resourceType = "salon"
		case "services":
			resourceType = "service"
		case "specialists":
			resourceType = "specialist"
		case "hero":
			resourceType = "hero_section"
		case "waitlist":
			resourceType = "waitlist_entry"
		case "consent-templates":
			resourceType = "consent_template"
		}
	}

	if id := c.Param("id"); id != "" {
		if _, err := uuid.Parse(id); err == nil {
			return resourceType, &id
		}
	}
	return resourceType, nil
}

// clientIP extracts the client IP, honouring proxy headers
func clientIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}
	if xri := c.GetHeader("X-Real-IP"); xri != "" {
		return xri
	}
	ip, _, err := net.SplitHostPort(c.Request.RemoteAddr)
	if err != nil {
		return c.Request.RemoteAddr
	}
	return ip
}
