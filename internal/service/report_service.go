package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"
	"github.com/Nirnayjain168/Gym-Management/internal/repository"
	"github.com/Nirnayjain168/Gym-Management/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemberReportFilename is the download name offered to the browser.
const MemberReportFilename = "gym_members_report.csv"

// How long a detached archive upload may take before being abandoned.
const archiveUploadTimeout = 30 * time.Second

// memberCSVColumns is the fixed export header. Six columns, every field
// double-quote wrapped, matching the report format consumers already parse.
var memberCSVColumns = []string{"Name", "Email", "Phone", "Date of Birth", "Address", "Registered At"}

// MemberReport is a fully rendered export. ArchiveKey is set only when the
// report archive is configured; the upload itself is not awaited.
type MemberReport struct {
	Filename   string
	Content    []byte
	ArchiveKey string
}

// ErrArchiveDisabled is returned when an archive operation is requested but
// no archive backend is configured.
var ErrArchiveDisabled = errors.New("report archive is not configured")

// ErrArchiveKeyInvalid is returned for object keys outside the report
// prefix; the archive bucket is not a general-purpose download proxy.
var ErrArchiveKeyInvalid = errors.New("invalid archive key")

// ReportService renders member data exports.
type ReportService interface {
	ExportMembersCSV(ctx context.Context, adminID primitive.ObjectID) (*MemberReport, error)
	// ArchivedReportURL returns a temporary download link for a
	// previously archived export.
	ArchivedReportURL(ctx context.Context, adminID primitive.ObjectID, objectKey string) (string, error)
}

// reportService implements the ReportService interface.
type reportService struct {
	userRepo repository.UserRepository
	archive  storage.ReportArchive // nil when archiving is disabled
	prefix   string
	audit    AuditLogger
}

// NewReportService creates a new instance of reportService. archive may be
// nil, in which case exports are only streamed to the caller.
func NewReportService(userRepo repository.UserRepository, archive storage.ReportArchive, prefix string, audit AuditLogger) ReportService {
	if prefix == "" {
		prefix = "reports"
	}
	return &reportService{
		userRepo: userRepo,
		archive:  archive,
		prefix:   prefix,
		audit:    audit,
	}
}

// ExportMembersCSV fetches every member in one round trip and renders the
// CSV. On a fetch failure nothing is produced. When the archive is
// configured a copy is uploaded best-effort on a detached goroutine.
func (s *reportService) ExportMembersCSV(ctx context.Context, adminID primitive.ObjectID) (*MemberReport, error) {
	members, err := s.userRepo.GetMembers(ctx)
	if err != nil {
		s.audit.Record("Export members failed", map[string]any{"error": err.Error()}, adminID.Hex())
		return nil, err
	}

	report := &MemberReport{
		Filename: MemberReportFilename,
		Content:  BuildMemberCSV(members),
	}

	if s.archive != nil {
		key := fmt.Sprintf("%s/members-%s-%s.csv", s.prefix, time.Now().UTC().Format("20060102T150405Z"), uuid.NewString())
		report.ArchiveKey = key
		content := report.Content
		go func() {
			archiveCtx, cancel := context.WithTimeout(context.Background(), archiveUploadTimeout)
			defer cancel()
			if err := s.archive.Store(archiveCtx, key, "text/csv", content); err != nil {
				log.Printf("WARN: report archive upload failed for %s: %v", key, err)
			}
		}()
	}

	s.audit.Record("Members exported to CSV", map[string]any{"count": len(members)}, adminID.Hex())
	return report, nil
}

// ArchivedReportURL presigns a download for an archived export. Keys are
// confined to the report prefix so the bucket cannot be browsed at large.
func (s *reportService) ArchivedReportURL(ctx context.Context, adminID primitive.ObjectID, objectKey string) (string, error) {
	if s.archive == nil {
		return "", ErrArchiveDisabled
	}
	if !strings.HasPrefix(objectKey, s.prefix+"/") {
		return "", ErrArchiveKeyInvalid
	}

	url, err := s.archive.GeneratePresignedDownloadURL(ctx, objectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		s.audit.Record("Archived report link failed", map[string]any{"key": objectKey, "error": err.Error()}, adminID.Hex())
		return "", err
	}

	s.audit.Record("Archived report link issued", map[string]any{"key": objectKey}, adminID.Hex())
	return url, nil
}

// BuildMemberCSV serializes members into the fixed six-column export.
// Every field is wrapped in double quotes and embedded newlines are
// collapsed to single spaces. Note this format is deliberately not
// RFC 4180: embedded quotes are left as-is.
func BuildMemberCSV(members []domain.User) []byte {
	var b strings.Builder

	writeCSVRow(&b, memberCSVColumns)
	for _, m := range members {
		registered := ""
		if !m.CreatedAt.IsZero() {
			registered = m.CreatedAt.Format("2006-01-02")
		}
		writeCSVRow(&b, []string{m.Name, m.Email, m.Phone, m.DOB, m.Address, registered})
	}

	return []byte(b.String())
}

var newlineCollapser = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func writeCSVRow(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(newlineCollapser.Replace(f))
		b.WriteByte('"')
	}
	b.WriteByte('\n')
}
