package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/avc/hosting-storefront/internal/domain"
)

// Цвета embed по типу события
const (
	colorNewOrder = 0x3B82F6
	colorApproved = 0x10B981
	colorRejected = 0xEF4444
)

const footerText = "Hostia - Order Management System"

type embedField struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

type embedImage struct {
	URL string `json:"url"`
}

type embedFooter struct {
	Text string `json:"text"`
}

type embed struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Color       int          `json:"color"`
	Fields      []embedField `json:"fields"`
	Image       *embedImage  `json:"image,omitempty"`
	Footer      embedFooter  `json:"footer"`
	Timestamp   string       `json:"timestamp"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// DiscordNotifier отправляет события заказа в Discord webhook
type DiscordNotifier struct {
	webhookURL string
	httpClient *http.Client
}

// NewDiscordNotifier создает новый DiscordNotifier. Пустой URL отключает отправку.
func NewDiscordNotifier(webhookURL string, timeout time.Duration) *DiscordNotifier {
	return &DiscordNotifier{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Enabled сообщает, настроен ли webhook
func (n *DiscordNotifier) Enabled() bool {
	return n.webhookURL != ""
}

// Notify публикует embed с данными заказа
func (n *DiscordNotifier) Notify(ctx context.Context, event domain.OrderEvent) error {
	if !n.Enabled() {
		return nil
	}

	body, err := json.Marshal(webhookPayload{Embeds: []embed{buildEmbed(event)}})
	if err != nil {
		return fmt.Errorf("discord notifier: failed to encode payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("discord notifier: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("discord notifier: failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("discord notifier: rate limited, retry after %q", resp.Header.Get("Retry-After"))
	default:
		return fmt.Errorf("discord notifier: unexpected status code: %d", resp.StatusCode)
	}
}

func buildEmbed(event domain.OrderEvent) embed {
	order := event.Order
	e := embed{
		Fields:    []embedField{},
		Footer:    embedFooter{Text: footerText},
		Timestamp: event.OccurredAt.UTC().Format(time.RFC3339),
	}

	switch event.Kind {
	case domain.EventPaymentUploaded:
		e.Title = "🎉 New Order Received"
		e.Color = colorNewOrder
		e.Fields = append(e.Fields,
			embedField{Name: "👤 Customer", Value: customerCard(event.Customer), Inline: true},
			embedField{Name: "📦 Plan", Value: planNames(order), Inline: true},
			embedField{Name: "💰 Payment Details", Value: fmt.Sprintf("Original: ₹%s\nDiscount: ₹%s\n**Final: ₹%s**",
				order.OriginalPrice.StringFixed(2), order.DiscountAmount.StringFixed(2), order.FinalPrice.StringFixed(2)), Inline: true},
			embedField{Name: "🎫 Promo Code", Value: valueOr(order.PromoCode, "None"), Inline: true},
			embedField{Name: "🆔 Order ID", Value: fmt.Sprintf("#%d", order.ID), Inline: true},
		)
		if order.TransactionID != nil && *order.TransactionID != "" {
			e.Fields = append(e.Fields, embedField{Name: "🔖 Transaction ID", Value: *order.TransactionID})
		}
		if event.ScreenshotURL != "" {
			e.Image = &embedImage{URL: event.ScreenshotURL}
			e.Description = "📸 Payment screenshot attached below"
		}

	case domain.EventVerified, domain.EventRejected:
		status := "Active"
		e.Title = "✅ Order Approved"
		e.Color = colorApproved
		if event.Kind == domain.EventRejected {
			status = "Rejected"
			e.Title = "❌ Order Rejected"
			e.Color = colorRejected
		}

		e.Fields = append(e.Fields,
			embedField{Name: "🆔 Order ID", Value: fmt.Sprintf("#%d", order.ID), Inline: true},
			embedField{Name: "👤 Customer", Value: customerName(event.Customer), Inline: true},
			embedField{Name: "Status", Value: status, Inline: true},
		)
		if event.Kind == domain.EventRejected && event.Reason != "" {
			e.Fields = append(e.Fields, embedField{Name: "📝 Rejection Reason", Value: event.Reason})
		}
		e.Footer.Text = "Action by: " + event.AdminEmail
	}

	return e
}

func customerName(u *domain.User) string {
	if u == nil {
		return "Unknown"
	}
	return u.FullName
}

func customerCard(u *domain.User) string {
	if u == nil {
		return "Unknown"
	}
	return fmt.Sprintf("%s\n%s\nDiscord: %s", u.FullName, u.Email, valueOr(u.DiscordID, "N/A"))
}

func planNames(order domain.Order) string {
	if names := order.PlanNames(); strings.TrimSpace(names) != "" {
		return names
	}
	return "N/A"
}

func valueOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
