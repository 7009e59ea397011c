package discord

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

func (d *discordImpl) webhookURL() string {
	return fmt.Sprintf("%s/%s/%s", d.config.BaseURL, d.webhook.ID, d.webhook.Token)
}

func (d *discordImpl) SendError(ctx context.Context, title, description string, err error) error {
	embed := d.embed(colorError, title, description)
	if err != nil {
		embed.Fields = []EmbedField{{Name: "Error", Value: truncate(err.Error(), maxFieldLen)}}
	}
	return d.send(ctx, embed)
}

func (d *discordImpl) SendInfo(ctx context.Context, title, description string) error {
	return d.send(ctx, d.embed(colorInfo, title, description))
}

func (d *discordImpl) Close() error {
	d.closed.Store(true)
	return nil
}

func (d *discordImpl) embed(color int, title, description string) Embed {
	return Embed{
		Title:       title,
		Description: truncate(description, maxDescriptionLen),
		Color:       color,
		Timestamp:   d.now().UTC().Format(time.RFC3339),
	}
}

func (d *discordImpl) send(ctx context.Context, embed Embed) error {
	if d.closed.Load() {
		return errClosed
	}
	if !d.limiter.Allow() {
		d.l.Warnf(ctx, "pkg.discord.send: dropping alert %q, rate limit reached", embed.Title)
		return ErrThrottled
	}

	payload := WebhookPayload{Username: d.config.Username, Embeds: []Embed{embed}}
	body, status, err := d.client.Post(ctx, d.webhookURL(), payload, nil)
	if err != nil {
		d.l.Errorf(ctx, "pkg.discord.send: webhook request failed: %v", err)
		return err
	}
	// 204 on success, 200 when ?wait=true.
	if status != http.StatusOK && status != http.StatusNoContent {
		d.l.Errorf(ctx, "pkg.discord.send: webhook returned %d: %s", status, string(body))
		return fmt.Errorf("discord: webhook returned status %d", status)
	}
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}
