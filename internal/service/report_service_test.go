package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Nirnayjain168/Gym-Management/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestBuildMemberCSVHeaderOnly(t *testing.T) {
	content := string(BuildMemberCSV(nil))

	want := `"Name","Email","Phone","Date of Birth","Address","Registered At"` + "\n"
	if content != want {
		t.Fatalf("unexpected header:\n got: %q\nwant: %q", content, want)
	}
}

func TestBuildMemberCSVRowsAndQuoting(t *testing.T) {
	registered := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	members := []domain.User{
		{
			Name:      "Jane Doe",
			Email:     "jane@example.com",
			Phone:     "555-0101",
			DOB:       "1990-01-01",
			Address:   "12 Main St,\nSpringfield",
			CreatedAt: registered,
		},
		{
			Name:  "No Date",
			Email: "nodate@example.com",
		},
	}

	content := string(BuildMemberCSV(members))
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header plus 2 rows, got %d lines", len(lines))
	}

	// Embedded newlines collapse to spaces so each member stays one line.
	if !strings.Contains(lines[1], `"12 Main St, Springfield"`) {
		t.Fatalf("address newline was not collapsed: %q", lines[1])
	}
	if !strings.Contains(lines[1], `"2026-03-14"`) {
		t.Fatalf("registered date missing or misformatted: %q", lines[1])
	}

	// Every row carries exactly six quoted fields.
	for i, line := range lines {
		if strings.Count(line, `"`) != 12 {
			t.Fatalf("line %d does not have 6 quoted fields: %q", i, line)
		}
	}

	// A zero CreatedAt renders as an empty registered date, not a zero time.
	if !strings.HasSuffix(lines[2], `,""`) {
		t.Fatalf("zero registration date should render empty: %q", lines[2])
	}
}

type stubArchive struct {
	storeFn   func(ctx context.Context, objectKey, contentType string, body []byte) error
	presignFn func(ctx context.Context, objectKey string, expires time.Duration) (string, error)
}

func (s *stubArchive) Store(ctx context.Context, objectKey, contentType string, body []byte) error {
	if s.storeFn != nil {
		return s.storeFn(ctx, objectKey, contentType, body)
	}
	return nil
}

func (s *stubArchive) GeneratePresignedDownloadURL(ctx context.Context, objectKey string, expires time.Duration) (string, error) {
	if s.presignFn != nil {
		return s.presignFn(ctx, objectKey, expires)
	}
	return "https://archive.example.com/" + objectKey, nil
}

func TestExportMembersCSVWithoutArchive(t *testing.T) {
	userRepo := &stubUserRepo{
		getMembersFn: func(ctx context.Context) ([]domain.User, error) {
			return []domain.User{{Name: "Jane", Email: "jane@example.com"}}, nil
		},
	}
	svc := NewReportService(userRepo, nil, "", NopAuditLogger{})

	report, err := svc.ExportMembersCSV(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.Filename != MemberReportFilename {
		t.Fatalf("unexpected filename %q", report.Filename)
	}
	if report.ArchiveKey != "" {
		t.Fatalf("archive key must be empty with archiving disabled, got %q", report.ArchiveKey)
	}
	if !strings.Contains(string(report.Content), `"jane@example.com"`) {
		t.Fatalf("member row missing from export: %q", report.Content)
	}
}

func TestExportMembersCSVAssignsArchiveKey(t *testing.T) {
	userRepo := &stubUserRepo{
		getMembersFn: func(ctx context.Context) ([]domain.User, error) {
			return nil, nil
		},
	}
	svc := NewReportService(userRepo, &stubArchive{}, "reports", NopAuditLogger{})

	report, err := svc.ExportMembersCSV(context.Background(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(report.ArchiveKey, "reports/members-") || !strings.HasSuffix(report.ArchiveKey, ".csv") {
		t.Fatalf("unexpected archive key %q", report.ArchiveKey)
	}
}

func TestArchivedReportURLDisabled(t *testing.T) {
	svc := NewReportService(&stubUserRepo{}, nil, "reports", NopAuditLogger{})

	_, err := svc.ArchivedReportURL(context.Background(), primitive.NewObjectID(), "reports/members-x.csv")
	if !errors.Is(err, ErrArchiveDisabled) {
		t.Fatalf("expected ErrArchiveDisabled, got %v", err)
	}
}

func TestArchivedReportURLConfinedToPrefix(t *testing.T) {
	svc := NewReportService(&stubUserRepo{}, &stubArchive{}, "reports", NopAuditLogger{})

	if _, err := svc.ArchivedReportURL(context.Background(), primitive.NewObjectID(), "secrets/backup.csv"); !errors.Is(err, ErrArchiveKeyInvalid) {
		t.Fatalf("expected ErrArchiveKeyInvalid, got %v", err)
	}

	url, err := svc.ArchivedReportURL(context.Background(), primitive.NewObjectID(), "reports/members-x.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url == "" {
		t.Fatal("expected a presigned url")
	}
}
