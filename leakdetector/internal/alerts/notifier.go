package alerts

import (
	"context"
	"sort"
	"strings"
	"time"

	"profit_leak/leakdetector/internal/logic"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Outcome describes what Notify did with a report.
type Outcome string

const (
	OutcomeSkipped    Outcome = "skipped"
	OutcomeSuppressed Outcome = "suppressed"
	OutcomePublished  Outcome = "published"
	OutcomeFailed     Outcome = "failed"
)

// Sender delivers an encoded alert payload.
type Sender interface {
	Send(payload []byte) error
}

// Deduper records that an alert key was sent. TryMarkAlerted returns false
// when the key was already marked within ttl; ClearAlert drops a marker.
type Deduper interface {
	TryMarkAlerted(ctx context.Context, key string, ttl time.Duration) (bool, error)
	ClearAlert(ctx context.Context, key string) error
}

// Notifier turns analysis reports into published leak alerts.
type Notifier struct {
	sender Sender
	dedupe Deduper
	ttl    time.Duration
	logger *logrus.Logger
	now    func() time.Time
}

// NewNotifier builds a notifier. dedupe may be nil, in which case every
// qualifying report is published.
func NewNotifier(sender Sender, dedupe Deduper, ttl time.Duration, logger *logrus.Logger) *Notifier {
	return &Notifier{
		sender: sender,
		dedupe: dedupe,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// DedupeKey identifies a business's current leak set. Ranking order does not
// matter: kinds are listed in enum order.
func DedupeKey(businessID string, leaks []logic.Leak) string {
	kinds := make([]logic.LeakKind, len(leaks))
	for i, leak := range leaks {
		kinds[i] = leak.Kind
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	names := make([]string, len(kinds))
	for i, kind := range kinds {
		names[i] = kind.String()
	}
	return "alert:" + businessID + ":" + strings.Join(names, "|")
}

// BuildAlert converts a report into an alert with ranks starting at 1.
func BuildAlert(businessID string, report logic.Report, at time.Time) Alert {
	alert := Alert{
		AlertID:    uuid.New().String(),
		BusinessID: businessID,
		Revenue:    report.Metrics.Revenue,
		TrueProfit: report.Metrics.TrueProfit,
		Timestamp:  at.Unix(),
		Leaks:      make([]AlertLeak, 0, len(report.Leaks)),
	}
	for i, leak := range report.Leaks {
		action, _ := logic.RecommendAction(leak.Kind)
		alert.Leaks = append(alert.Leaks, AlertLeak{
			Name:   leak.Kind.String(),
			Amount: leak.Amount,
			Action: action,
			Rank:   int32(i + 1),
		})
	}
	return alert
}

// Notify publishes an alert for the report unless it has no business id, no
// leaks, or the same leak set was already published within the ttl.
func (n *Notifier) Notify(ctx context.Context, businessID string, report logic.Report) Outcome {
	if businessID == "" || len(report.Leaks) == 0 {
		return OutcomeSkipped
	}

	log := n.logger.WithFields(logrus.Fields{
		"component":   "alerts",
		"business_id": businessID,
		"leaks":       len(report.Leaks),
	})

	key := DedupeKey(businessID, report.Leaks)
	marked := false
	if n.dedupe != nil {
		first, err := n.dedupe.TryMarkAlerted(ctx, key, n.ttl)
		if err != nil {
			// Dedupe store down: publish anyway.
			log.WithError(err).Warn("alert dedupe check failed")
		} else if !first {
			log.Debug("alert suppressed, leak set already published")
			return OutcomeSuppressed
		}
		marked = err == nil
	}

	alert := BuildAlert(businessID, report, n.now())
	if err := n.sender.Send(Encode(alert)); err != nil {
		log.WithError(err).Error("alert publish failed")
		// The marker must not outlive an alert that never went out.
		if marked {
			if clearErr := n.dedupe.ClearAlert(ctx, key); clearErr != nil {
				log.WithError(clearErr).Warn("alert marker not cleared")
			}
		}
		return OutcomeFailed
	}
	log.WithField("alert_id", alert.AlertID).Info("alert published")
	return OutcomePublished
}
