package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"webaudit-srv/internal/audit"
	"webaudit-srv/internal/model"
	"webaudit-srv/internal/session"
	"webaudit-srv/internal/session/repository"
	"webaudit-srv/pkg/log"
)

var (
	errStaleResult = errors.New("session: result belongs to an abandoned scan")
	errScanPanic   = errors.New("session: scan panicked")
)

// Submit - IDLE → SCANNING, then audit in the background
// The URL is normalized first so an invalid one never changes state.
func (uc *implUseCase) Submit(ctx context.Context, input session.SubmitInput) (model.Session, error) {
	targetURL, err := audit.NormalizeURL(input.URL)
	if err != nil {
		return model.Session{}, err
	}

	uc.mu.Lock()
	if uc.closed {
		uc.mu.Unlock()
		return model.Session{}, session.ErrShuttingDown
	}
	uc.scans.Add(1)
	uc.mu.Unlock()

	scanID := uc.newID()
	s, err := uc.repo.Update(ctx, input.SessionID, func(s *model.Session) error {
		switch s.State {
		case model.StateIdle:
		case model.StateScanning:
			return session.ErrScanInProgress
		default:
			return session.ErrNotIdle
		}
		clearResult(s)
		s.State = model.StateScanning
		s.TargetURL = targetURL
		s.ScanID = scanID
		s.UpdatedAt = uc.now().UTC()
		return nil
	})
	if err != nil {
		uc.scans.Done()
		return model.Session{}, mapRepoError(err)
	}

	go uc.runScan(s.ID, scanID, targetURL)
	return s, nil
}

func (uc *implUseCase) runScan(sessionID, scanID, targetURL string) {
	defer uc.scans.Done()

	ctx, cancel := context.WithTimeout(uc.scanCtx, uc.cfg.ScanTimeout)
	defer cancel()
	ctx = log.WithRequestID(ctx, scanID)

	started := uc.now()
	out, err := uc.safeAudit(ctx, targetURL)
	elapsed := uc.now().Sub(started)

	uc.complete(ctx, sessionID, scanID, targetURL, out, err, elapsed)
}

func (uc *implUseCase) safeAudit(ctx context.Context, targetURL string) (out audit.AuditOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "session.usecase.safeAudit: panic: %v", r)
			err = fmt.Errorf("%w: %v", errScanPanic, r)
		}
	}()
	return uc.audit.Audit(ctx, audit.AuditInput{URL: targetURL})
}

// complete applies a scan result only if the session still waits for this scan.
func (uc *implUseCase) complete(ctx context.Context, sessionID, scanID, targetURL string, out audit.AuditOutput, scanErr error, elapsed time.Duration) {
	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), completeTimeout)
	defer cancel()

	_, err := uc.repo.Update(writeCtx, sessionID, func(s *model.Session) error {
		if s.State != model.StateScanning || s.ScanID != scanID {
			return errStaleResult
		}
		if scanErr != nil {
			s.State = model.StateError
			s.ErrorKind = audit.Kind(scanErr)
			s.ErrorMessage = audit.UserMessage(scanErr)
		} else {
			report := out.Report
			s.State = model.StateComplete
			s.Report = &report
			s.History = []model.ChatMessage{uc.chat.Greeting(report)}
		}
		s.UpdatedAt = uc.now().UTC()
		return nil
	})
	switch {
	case errors.Is(err, errStaleResult), errors.Is(err, repository.ErrNotFound):
		uc.l.Infof(ctx, "session.usecase.complete: dropping late result of scan %s for session %s", scanID, sessionID)
		return
	case err != nil:
		uc.l.Errorf(ctx, "session.usecase.complete: repo.Update failed: %v", err)
		return
	}

	if scanErr != nil {
		uc.l.Warnf(ctx, "session.usecase.complete: scan of %s failed (%s): %v", targetURL, audit.Kind(scanErr), scanErr)
	} else {
		uc.l.Infof(ctx, "session.usecase.complete: scan of %s done via %s in %s", targetURL, out.Strategy, elapsed)
	}
	uc.publish(writeCtx, newScanEvent(sessionID, scanID, targetURL, out, scanErr, elapsed, uc.now().UTC()))
}

func newScanEvent(sessionID, scanID, targetURL string, out audit.AuditOutput, scanErr error, elapsed time.Duration, at time.Time) session.ScanEvent {
	ev := session.ScanEvent{
		Type:       session.EventAuditCompleted,
		SessionID:  sessionID,
		ScanID:     scanID,
		URL:        targetURL,
		DurationMs: elapsed.Milliseconds(),
		OccurredAt: at,
	}
	if scanErr != nil {
		ev.Type = session.EventAuditFailed
		ev.ErrorKind = audit.Kind(scanErr)
		return ev
	}
	ev.Strategy = out.Strategy
	ev.Attempts = out.Attempts
	ev.OverallScore = out.Report.OverallScore
	return ev
}

func (uc *implUseCase) publish(ctx context.Context, ev session.ScanEvent) {
	if uc.producer == nil {
		return
	}
	if err := uc.producer.PublishJSON(ctx, ev.SessionID, ev); err != nil {
		uc.l.Warnf(ctx, "session.usecase.publish: %s event not published: %v", ev.Type, err)
	}
}

// Shutdown - Stop accepting scans and wait for running ones
// When ctx ends first, running scans are cancelled and ctx.Err() is returned.
func (uc *implUseCase) Shutdown(ctx context.Context) error {
	uc.mu.Lock()
	uc.closed = true
	uc.mu.Unlock()

	done := make(chan struct{})
	go func() {
		uc.scans.Wait()
		close(done)
	}()

	select {
	case <-done:
		uc.cancel()
		return nil
	case <-ctx.Done():
		uc.cancel()
		return ctx.Err()
	}
}
