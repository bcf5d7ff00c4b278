package recipients

import (
	"context"

	"github.com/louisbranch/recipients/internal/platform/otel"
	"github.com/louisbranch/recipients/internal/recipient"
	module "github.com/louisbranch/recipients/internal/services/picker/module"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/louisbranch/recipients/internal/services/picker/modules/recipients"

// service applies store operations inside a span.
type service struct {
	store  *recipient.Store
	tracer trace.Tracer
}

func newService(deps module.Dependencies) service {
	tracer := deps.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return service{store: deps.Store, tracer: tracer}
}

func (s service) view() recipient.View {
	return recipient.Project(s.store.Snapshot())
}

func (s service) toggle(ctx context.Context, email string) recipient.View {
	return s.run(ctx, recipient.OpToggleSelection, attribute.String("recipient.email", email), func() recipient.Snapshot {
		return s.store.ToggleSelection(email)
	})
}

func (s service) choose(ctx context.Context, email string) recipient.View {
	return s.run(ctx, recipient.OpChooseSuggestion, attribute.String("recipient.email", email), func() recipient.Snapshot {
		return s.store.ChooseSuggestion(email)
	})
}

func (s service) deselect(ctx context.Context, email string) recipient.View {
	return s.run(ctx, recipient.OpDeselect, attribute.String("recipient.email", email), func() recipient.Snapshot {
		return s.store.Deselect(email)
	})
}

func (s service) clear(ctx context.Context) recipient.View {
	return s.run(ctx, recipient.OpClearAll, attribute.Bool("recipient.all", true), s.store.ClearAll)
}

func (s service) selectDomain(ctx context.Context, domain string) recipient.View {
	return s.run(ctx, recipient.OpSelectAllInDomain, attribute.String("recipient.domain", domain), func() recipient.Snapshot {
		return s.store.SelectAllInDomain(domain)
	})
}

func (s service) search(ctx context.Context, text string) recipient.View {
	return s.run(ctx, recipient.OpSetSearchText, attribute.Int("recipient.search_length", len(text)), func() recipient.Snapshot {
		return s.store.SetSearchText(text)
	})
}

func (s service) run(ctx context.Context, op recipient.Operation, attr attribute.KeyValue, apply func() recipient.Snapshot) recipient.View {
	_, span := s.tracer.Start(ctx, "recipients."+string(op), trace.WithAttributes(attr))
	defer span.End()

	next := apply()
	span.SetAttributes(attribute.Int("recipient.selected", next.SelectedCount()))
	return recipient.Project(next)
}
