package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"webaudit-srv/internal/audit"
	auditMocks "webaudit-srv/internal/audit/mocks"
	"webaudit-srv/internal/chat"
	chatMocks "webaudit-srv/internal/chat/mocks"
	"webaudit-srv/internal/export"
	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository/memory"
	kafkaMocks "webaudit-srv/pkg/kafka/mocks"
	"webaudit-srv/pkg/log"
	"webaudit-srv/pkg/minio"
	minioMocks "webaudit-srv/pkg/minio/mocks"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)

type fixture struct {
	uc       *implUseCase
	audit    *auditMocks.UseCase
	chat     *chatMocks.UseCase
	producer *kafkaMocks.IProducer
	storage  *minioMocks.Storage
}

func newFixture(t *testing.T, withStorage bool) *fixture {
	t.Helper()
	f := &fixture{
		audit:    auditMocks.NewUseCase(t),
		chat:     chatMocks.NewUseCase(t),
		producer: kafkaMocks.NewIProducer(t),
	}
	deps := Deps{
		Repo:     memory.New(log.NewNop(), memory.Options{TTL: time.Hour}),
		Audit:    f.audit,
		Chat:     f.chat,
		Producer: f.producer,
	}
	if withStorage {
		f.storage = minioMocks.NewStorage(t)
		deps.Storage = f.storage
	}

	uc := New(log.NewNop(), deps, Config{ScanTimeout: time.Second}).(*implUseCase)
	var seq atomic.Int64
	uc.newID = func() string { return fmt.Sprintf("id-%d", seq.Add(1)) }
	uc.now = func() time.Time { return fixedNow }
	f.uc = uc

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = uc.Shutdown(ctx)
	})
	return f
}

func testReport(target string) model.Report {
	sections := make([]model.Section, 0, model.SectionCount)
	for i := 1; i <= model.SectionCount; i++ {
		sections = append(sections, model.Section{
			ID:       model.SectionID(fmt.Sprint(i)),
			Title:    fmt.Sprintf("Dimension %d", i),
			Score:    6,
			Findings: []string{"finding"},
		})
	}
	return model.Report{
		SchemaVersion:    model.ReportSchemaVersion,
		TargetURL:        target,
		OverallScore:     64,
		ExecutiveSummary: "summary",
		Keywords:         []string{"running shoes"},
		Sections:         sections,
	}
}

func greeting(text string) model.ChatMessage {
	return model.ChatMessage{Role: model.ChatRoleModel, Text: text, Timestamp: fixedNow}
}

func (f *fixture) waitState(t *testing.T, id string, want model.AppState) model.Session {
	t.Helper()
	var s model.Session
	require.Eventually(t, func() bool {
		var err error
		s, err = f.uc.Get(context.Background(), id)
		return err == nil && s.State == want
	}, 2*time.Second, 5*time.Millisecond)
	return s
}

// completed runs a successful scan and returns the COMPLETE session.
func (f *fixture) completed(t *testing.T) model.Session {
	t.Helper()
	ctx := context.Background()
	report := testReport("https://example.com")

	f.audit.On("Audit", mock.Anything, audit.AuditInput{URL: "https://example.com"}).
		Return(audit.AuditOutput{Report: report, Strategy: audit.StrategyLiveSearch, Attempts: 1}, nil).Once()
	f.chat.On("Greeting", report).Return(greeting("Hello!")).Once()
	f.producer.On("PublishJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil).Once()

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	require.NoError(t, err)
	return f.waitState(t, s.ID, model.StateComplete)
}

func TestCreateGetDelete(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, s.State)
	assert.Equal(t, fixedNow, s.CreatedAt)

	got, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.ID, got.ID)

	require.NoError(t, f.uc.Delete(ctx, s.ID))
	_, err = f.uc.Get(ctx, s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
	assert.ErrorIs(t, f.uc.Delete(ctx, s.ID), session.ErrNotFound)
}

func TestSubmitSuccess(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	report := testReport("https://example.com")

	f.audit.On("Audit", mock.Anything, audit.AuditInput{URL: "https://example.com"}).
		Return(audit.AuditOutput{Report: report, Strategy: audit.StrategyOffline, Attempts: 2}, nil)
	f.chat.On("Greeting", report).Return(greeting("Hello! I've analyzed https://example.com."))
	f.producer.On("PublishJSON", mock.Anything, "id-1", mock.MatchedBy(func(ev session.ScanEvent) bool {
		return ev.Type == session.EventAuditCompleted &&
			ev.Strategy == audit.StrategyOffline &&
			ev.Attempts == 2 &&
			ev.OverallScore == 64 &&
			ev.ScanID == "id-2"
	})).Return(nil)

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)

	scanning, err := f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "  example.com "})
	require.NoError(t, err)
	assert.Equal(t, model.StateScanning, scanning.State)
	assert.Equal(t, "https://example.com", scanning.TargetURL)
	assert.Equal(t, "id-2", scanning.ScanID)

	require.NoError(t, f.uc.Shutdown(ctx))

	done, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateComplete, done.State)
	require.NotNil(t, done.Report)
	assert.Equal(t, 64, done.Report.OverallScore)
	require.Len(t, done.History, 1)
	assert.Equal(t, model.ChatRoleModel, done.History[0].Role)
}

func TestSubmitInvalidURLKeepsState(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)

	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "not a url"})
	assert.ErrorIs(t, err, audit.ErrInvalidURL)

	got, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, got.State)
	f.audit.AssertNotCalled(t, "Audit", mock.Anything, mock.Anything)
}

func TestSubmitUnknownSession(t *testing.T) {
	f := newFixture(t, false)

	_, err := f.uc.Submit(context.Background(), session.SubmitInput{SessionID: "missing", URL: "example.com"})
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestSubmitFailure(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"configuration", fmt.Errorf("%w: 403 permission denied", audit.ErrConfiguration), audit.KindConfiguration},
		{"unavailable", fmt.Errorf("%w: timeout", audit.ErrServiceUnavailable), audit.KindServiceUnavailable},
		{"malformed", audit.ErrMalformedReport, audit.KindMalformedReport},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, false)
			ctx := context.Background()

			f.audit.On("Audit", mock.Anything, mock.Anything).Return(audit.AuditOutput{}, tt.err)
			f.producer.On("PublishJSON", mock.Anything, mock.Anything, mock.MatchedBy(func(ev session.ScanEvent) bool {
				return ev.Type == session.EventAuditFailed && ev.ErrorKind == tt.kind
			})).Return(nil)

			s, err := f.uc.Create(ctx)
			require.NoError(t, err)
			_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
			require.NoError(t, err)

			got := f.waitState(t, s.ID, model.StateError)
			assert.Equal(t, tt.kind, got.ErrorKind)
			assert.Equal(t, audit.UserMessage(tt.err), got.ErrorMessage)
			assert.Nil(t, got.Report)
		})
	}
}

func TestSubmitPanicBecomesError(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.audit.On("Audit", mock.Anything, mock.Anything).Run(func(mock.Arguments) { panic("boom") })
	f.producer.On("PublishJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	require.NoError(t, err)

	got := f.waitState(t, s.ID, model.StateError)
	assert.Equal(t, audit.KindUnknown, got.ErrorKind)
}

func TestSubmitStateGuards(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	release := make(chan struct{})

	f.audit.On("Audit", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(audit.AuditOutput{}, audit.ErrServiceUnavailable)
	f.producer.On("PublishJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	require.NoError(t, err)

	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.org"})
	assert.ErrorIs(t, err, session.ErrScanInProgress)

	close(release)
	f.waitState(t, s.ID, model.StateError)

	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.org"})
	assert.ErrorIs(t, err, session.ErrNotIdle)
}

func TestResetDropsLateResult(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	release := make(chan struct{})

	f.audit.On("Audit", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(audit.AuditOutput{Report: testReport("https://example.com")}, nil)

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	require.NoError(t, err)

	reset, err := f.uc.Reset(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, reset.State)
	assert.Empty(t, reset.ScanID)

	close(release)
	require.NoError(t, f.uc.Shutdown(ctx))

	got, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, got.State)
	assert.Nil(t, got.Report)
	assert.Empty(t, got.History)
	f.chat.AssertNotCalled(t, "Greeting", mock.Anything)
	f.producer.AssertNotCalled(t, "PublishJSON", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeleteDuringScan(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	release := make(chan struct{})

	f.audit.On("Audit", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) { <-release }).
		Return(audit.AuditOutput{}, audit.ErrServiceUnavailable)

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	require.NoError(t, err)
	require.NoError(t, f.uc.Delete(ctx, s.ID))

	close(release)
	require.NoError(t, f.uc.Shutdown(ctx))

	_, err = f.uc.Get(ctx, s.ID)
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestResetAfterComplete(t *testing.T) {
	f := newFixture(t, false)
	s := f.completed(t)

	reset, err := f.uc.Reset(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, model.StateIdle, reset.State)
	assert.Nil(t, reset.Report)
	assert.Empty(t, reset.History)
	assert.Empty(t, reset.TargetURL)
}

func TestChat(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s := f.completed(t)

	reply := model.ChatMessage{Role: model.ChatRoleModel, Text: "Compress your images.", Timestamp: fixedNow}
	var captured chat.ReplyInput
	f.chat.On("Reply", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { captured = args.Get(1).(chat.ReplyInput) }).
		Return(chat.ReplyOutput{Message: reply}, nil)

	out, err := f.uc.Chat(ctx, session.ChatInput{SessionID: s.ID, Message: " How do I speed it up? "})
	require.NoError(t, err)

	assert.Equal(t, "How do I speed it up?", captured.Message)
	require.NotNil(t, captured.Report)
	assert.Equal(t, "https://example.com", captured.Report.TargetURL)
	assert.Len(t, captured.History, 1, "history excludes the new question")

	assert.Equal(t, reply, out.Reply)
	require.Len(t, out.History, 3)
	assert.Equal(t, model.ChatRoleUser, out.History[1].Role)
	assert.Equal(t, "How do I speed it up?", out.History[1].Text)
	assert.Equal(t, reply, out.History[2])

	got, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.ChatPending)
}

func TestChatDegradedReplyIsStored(t *testing.T) {
	f := newFixture(t, false)
	s := f.completed(t)

	apology := model.ChatMessage{Role: model.ChatRoleModel, Text: chat.ApologyMessage, Timestamp: fixedNow}
	f.chat.On("Reply", mock.Anything, mock.Anything).Return(chat.ReplyOutput{Message: apology, Degraded: true}, nil)

	out, err := f.uc.Chat(context.Background(), session.ChatInput{SessionID: s.ID, Message: "hi"})
	require.NoError(t, err)
	assert.True(t, out.Degraded)
	assert.Equal(t, chat.ApologyMessage, out.History[len(out.History)-1].Text)
}

func TestChatSinglePendingReply(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s := f.completed(t)

	started := make(chan struct{})
	release := make(chan struct{})
	f.chat.On("Reply", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			close(started)
			<-release
		}).
		Return(chat.ReplyOutput{Message: greeting("answer")}, nil).Once()

	errc := make(chan error, 1)
	go func() {
		_, err := f.uc.Chat(ctx, session.ChatInput{SessionID: s.ID, Message: "first"})
		errc <- err
	}()
	<-started

	_, err := f.uc.Chat(ctx, session.ChatInput{SessionID: s.ID, Message: "second"})
	assert.ErrorIs(t, err, session.ErrReplyPending)

	close(release)
	require.NoError(t, <-errc)

	got, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.False(t, got.ChatPending)
	assert.Len(t, got.History, 3)
}

func TestChatReplyDroppedAfterReset(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s := f.completed(t)

	f.chat.On("Reply", mock.Anything, mock.Anything).
		Run(func(mock.Arguments) {
			_, err := f.uc.Reset(ctx, s.ID)
			require.NoError(t, err)
		}).
		Return(chat.ReplyOutput{Message: greeting("late")}, nil)

	out, err := f.uc.Chat(ctx, session.ChatInput{SessionID: s.ID, Message: "question"})
	require.NoError(t, err)
	assert.True(t, out.Dropped)

	got, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	assert.Empty(t, got.History)
}

func TestChatGuards(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)

	_, err = f.uc.Chat(ctx, session.ChatInput{SessionID: s.ID, Message: "hi"})
	assert.ErrorIs(t, err, session.ErrNoReport)

	_, err = f.uc.Chat(ctx, session.ChatInput{SessionID: s.ID, Message: "   "})
	assert.ErrorIs(t, err, chat.ErrMessageRequired)

	_, err = f.uc.Chat(ctx, session.ChatInput{SessionID: "missing", Message: "hi"})
	assert.ErrorIs(t, err, session.ErrNotFound)
}

func TestGenerateAds(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s := f.completed(t)

	campaign := model.AdCampaign{Headlines: []string{"Fast Shoes"}, Descriptions: []string{"Free shipping"}}
	f.audit.On("GenerateAds", mock.Anything, audit.AdsInput{URL: "https://example.com", Keywords: []string{"running shoes"}}).
		Return(campaign, nil)

	got, err := f.uc.GenerateAds(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign, got)

	stored, err := f.uc.Get(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.AdCampaign)
	assert.Equal(t, campaign, *stored.AdCampaign)
}

func TestGenerateAdsRequiresReport(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s, err := f.uc.Create(ctx)
	require.NoError(t, err)

	_, err = f.uc.GenerateAds(ctx, s.ID)
	assert.ErrorIs(t, err, session.ErrNoReport)
}

func TestExport(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s := f.completed(t)

	file, err := f.uc.Export(ctx, session.ExportInput{SessionID: s.ID, Format: export.FormatJSON})
	require.NoError(t, err)
	assert.Equal(t, "audit_report_example.com.json", file.Name)

	_, err = f.uc.Export(ctx, session.ExportInput{SessionID: s.ID, Format: "xml"})
	assert.ErrorIs(t, err, export.ErrUnsupportedFormat)

	_, err = f.uc.Archive(ctx, session.ExportInput{SessionID: s.ID, Format: export.FormatPDF})
	assert.ErrorIs(t, err, session.ErrArchiveDisabled)
}

func TestArchive(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	s := f.completed(t)

	wantObject := "reports/2026/10/19/" + s.ID + "/Audit_Report_example.com.pdf"
	f.storage.On("Put", mock.Anything, mock.MatchedBy(func(obj minio.Object) bool {
		return obj.Key == wantObject && obj.ContentType == export.ContentTypePDF && len(obj.Data) > 0
	})).Return(minio.ObjectInfo{Key: wantObject}, nil)
	f.storage.On("PresignGet", mock.Anything, wantObject, "Audit_Report_example.com.pdf", DefaultArchiveExpiry).
		Return(minio.PresignedURL{URL: "https://minio.local/x", ExpiresAt: fixedNow.Add(DefaultArchiveExpiry)}, nil)

	out, err := f.uc.Archive(ctx, session.ExportInput{SessionID: s.ID, Format: export.FormatPDF})
	require.NoError(t, err)
	assert.Equal(t, "https://minio.local/x", out.URL)
	assert.Equal(t, wantObject, out.ObjectName)
	assert.Equal(t, "Audit_Report_example.com.pdf", out.FileName)
}

func TestArchiveRemovesObjectWhenPresignFails(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	s := f.completed(t)

	presignErr := minio.NewConnectionError(errors.New("dial tcp: refused"))
	f.storage.On("Put", mock.Anything, mock.Anything).Return(minio.ObjectInfo{}, nil)
	f.storage.On("PresignGet", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(minio.PresignedURL{}, presignErr)
	f.storage.On("Remove", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasSuffix(key, "/"+s.ID+"/audit_report_example.com.json")
	})).Return(nil)

	_, err := f.uc.Archive(ctx, session.ExportInput{SessionID: s.ID, Format: export.FormatJSON})
	assert.ErrorIs(t, err, presignErr)
}

func TestShutdownRejectsNewScans(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()
	s, err := f.uc.Create(ctx)
	require.NoError(t, err)

	require.NoError(t, f.uc.Shutdown(ctx))
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	assert.ErrorIs(t, err, session.ErrShuttingDown)
}

func TestShutdownDeadlineCancelsScans(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	f.audit.On("Audit", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { <-args.Get(0).(context.Context).Done() }).
		Return(audit.AuditOutput{}, fmt.Errorf("%w: cancelled", audit.ErrServiceUnavailable))
	f.producer.On("PublishJSON", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	s, err := f.uc.Create(ctx)
	require.NoError(t, err)
	_, err = f.uc.Submit(ctx, session.SubmitInput{SessionID: s.ID, URL: "example.com"})
	require.NoError(t, err)

	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.uc.Shutdown(short), context.DeadlineExceeded)

	f.uc.scans.Wait()
	f.waitState(t, s.ID, model.StateError)
}
