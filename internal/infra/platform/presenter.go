package platform

import (
	"context"
	"log/slog"
	"sync"

	"twashell/internal/domain/entity"
)

// LogPresenter records presented notifications and logs them. It applies the
// platform's tag-replacement rule: a new notification replaces a visible one
// sharing its tag.
type LogPresenter struct {
	mu        sync.Mutex
	logger    *slog.Logger
	presented []entity.PresentedNotification
}

// NewLogPresenter creates a presenter writing to the given logger.
func NewLogPresenter(logger *slog.Logger) *LogPresenter {
	return &LogPresenter{logger: logger}
}

// Show presents a notification, replacing any visible one with the same tag.
func (p *LogPresenter) Show(_ context.Context, title string, opts *entity.PresentOptions) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	notification := entity.PresentedNotification{Title: title}
	if opts != nil {
		notification.Options = *opts
	}

	if notification.Options.Tag != "" {
		for i, existing := range p.presented {
			if existing.Options.Tag == notification.Options.Tag {
				p.presented[i] = notification
				p.logger.Info("notification replaced",
					slog.String("title", title),
					slog.String("tag", notification.Options.Tag),
				)

				return nil
			}
		}
	}

	p.presented = append(p.presented, notification)
	p.logger.Info("notification presented",
		slog.String("title", title),
		slog.String("tag", notification.Options.Tag),
	)

	return nil
}

// Close dismisses the visible notification carrying the given tag.
func (p *LogPresenter) Close(_ context.Context, tag string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	for i, existing := range p.presented {
		if existing.Options.Tag == tag {
			p.presented = append(p.presented[:i], p.presented[i+1:]...)

			return nil
		}
	}

	return nil
}

// Presented returns a snapshot of the visible notifications.
func (p *LogPresenter) Presented() []entity.PresentedNotification {
	p.mu.Lock()
	defer p.mu.Unlock()

	snapshot := make([]entity.PresentedNotification, len(p.presented))
	copy(snapshot, p.presented)

	return snapshot
}
