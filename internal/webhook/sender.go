package webhook

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/shenikar/market_area_service/internal/config"
	"github.com/shenikar/market_area_service/internal/models"
)

// ErrDeliveryFailed - приемник заявок не принял заявку после всех попыток
var ErrDeliveryFailed = errors.New("lead delivery failed")

// Sender отправляет заявку во внешний приемник формой application/x-www-form-urlencoded
type Sender struct {
	endpoint   string
	token      string
	secret     string
	maxRetries int
	baseDelay  time.Duration
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewSender создает отправителя для настроенного приемника
func NewSender(sub *config.SubmissionConfig, cfg *config.Config, logger *logrus.Logger) *Sender {
	maxRetries := cfg.WebhookMaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &Sender{
		endpoint:   sub.Endpoint,
		token:      sub.AuthToken,
		secret:     cfg.WebhookSecret,
		maxRetries: maxRetries,
		baseDelay:  cfg.WebhookBaseDelay,
		httpClient: &http.Client{
			Timeout: cfg.WebhookTimeout,
		},
		logger: logger,
	}
}

// Send доставляет заявку с экспоненциальной задержкой между попытками
func (s *Sender) Send(ctx context.Context, lead *models.Lead) error {
	log := s.logger.WithFields(logrus.Fields{
		"lead_id":   lead.ID,
		"lead_kind": lead.Kind,
		"source":    lead.Source,
	})
	log.Debug("Delivering lead...")

	body := FormValues(lead, s.token).Encode()
	delay := s.baseDelay

	var lastErr error
	for i := 0; i < s.maxRetries; i++ {
		if i > 0 {
			log.WithError(lastErr).Warnf("Retrying lead delivery in %v. Retries left: %d", delay, s.maxRetries-i)
			if err := sleepCtx(ctx, delay); err != nil {
				return fmt.Errorf("%w: %w", ErrDeliveryFailed, err)
			}
			delay *= 2
		}

		lastErr = s.post(ctx, body)
		if lastErr == nil {
			log.Info("Lead delivered successfully.")
			return nil
		}
	}

	log.WithError(lastErr).Errorf("Failed to deliver lead after %d attempts.", s.maxRetries)
	return fmt.Errorf("%w: %w", ErrDeliveryFailed, lastErr)
}

func (s *Sender) post(ctx context.Context, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Подпись HMAC, если WEBHOOK_SECRET задан
	if s.secret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(body, s.secret))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("lead endpoint returned status %d", resp.StatusCode)
	}
	return nil
}

// FormValues собирает поля формы заявки. Заявка на звонок не содержит полей
// расчета, а расчет - времени обратного звонка.
func FormValues(lead *models.Lead, token string) url.Values {
	v := url.Values{}
	v.Set("fullName", strings.TrimSpace(lead.FullName))
	v.Set("workEmail", strings.TrimSpace(lead.WorkEmail))
	v.Set("company", strings.TrimSpace(lead.Company))
	v.Set("phone", strings.TrimSpace(lead.Phone))
	if lead.Kind == models.LeadKindQuote {
		v.Set("businessName", strings.TrimSpace(lead.BusinessName))
		v.Set("contactName", strings.TrimSpace(lead.ContactName))
		v.Set("contactPhone", strings.TrimSpace(lead.ContactPhone))
	} else {
		v.Set("callbackTime", lead.CallbackTime)
	}
	v.Set("source", lead.Source)

	lat, lng := "", ""
	if lead.Center != nil {
		lat = formatFloat(lead.Center.Lat)
		lng = formatFloat(lead.Center.Lng)
	}
	v.Set("marketCenterLat", lat)
	v.Set("marketCenterLng", lng)
	v.Set("audienceType", lead.AudienceType)

	radius := ""
	if lead.RadiusMiles > 0 {
		radius = formatFloat(lead.RadiusMiles)
	}
	v.Set("radius", radius)
	v.Set("boundaryType", lead.Selection.Type)
	v.Set("boundaryIds", strings.Join(lead.Selection.IDs, ","))
	v.Set("boundaryCount", strconv.Itoa(lead.Selection.Count))
	v.Set("token", token)
	return v
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
