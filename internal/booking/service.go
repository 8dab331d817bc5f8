package booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"travel/internal/flight"
	"travel/pkg/idgen"
	"travel/pkg/logger"
	"travel/pkg/session"
)

const draftKey = "booking_draft"

var (
	ErrDraftNotFound    = errors.New("no booking draft in session")
	ErrAlreadySubmitted = errors.New("booking draft already submitted")
	ErrNotSubmitted     = errors.New("booking draft not submitted yet")
	ErrInvalidDraft     = errors.New("invalid booking draft")
)

type Service struct {
	store  session.Store
	ids    idgen.Generator
	logger logger.Client
	now    func() time.Time
}

func NewService(store session.Store, ids idgen.Generator, logger logger.Client) *Service {
	return &Service{
		store:  store,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// Start records the offer the user picked, replacing any earlier draft.
func (s *Service) Start(ctx context.Context, sessionID string, req StartRequest) (*Draft, error) {
	draft := &Draft{
		Kind:       req.Kind,
		Passengers: req.Passengers,
		Price:      req.Price,
		Currency:   req.Currency,
		CurrencyID: req.CurrencyID,
		Status:     StatusDraft,
		CreatedAt:  s.now().UTC(),
	}

	switch req.Kind {
	case KindFlight:
		if req.Flight == nil || len(req.Flight.Outbound.Legs) == 0 {
			return nil, fmt.Errorf("%w: flight booking needs an outbound offer", ErrInvalidDraft)
		}
		if ret := req.Flight.Return; ret != nil && flight.KeyOf(*ret) != flight.KeyOf(req.Flight.Outbound) {
			return nil, fmt.Errorf("%w: return offer %s is not sold with outbound %s",
				ErrInvalidDraft, flight.KeyOf(*ret), flight.KeyOf(req.Flight.Outbound))
		}
		draft.Flight = req.Flight
		if draft.Price == 0 {
			draft.Price = req.Flight.Outbound.Price()
			if req.Flight.Return != nil {
				draft.Price += req.Flight.Return.Price()
			}
		}
		if draft.Currency == "" {
			draft.Currency = req.Flight.Outbound.Currency()
		}
	case KindHotel:
		if req.Hotel == nil {
			return nil, fmt.Errorf("%w: hotel booking needs a hotel offer", ErrInvalidDraft)
		}
		draft.Hotel = req.Hotel
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidDraft, req.Kind)
	}

	if draft.Price <= 0 {
		return nil, fmt.Errorf("%w: price must be positive", ErrInvalidDraft)
	}

	if err := s.save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	s.logger.Info("booking draft started",
		logger.Field{Key: "kind", Value: string(draft.Kind)},
		logger.Field{Key: "price", Value: draft.Price},
	)
	return draft, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*Draft, error) {
	raw, err := s.store.Get(ctx, sessionID, draftKey)
	if errors.Is(err, session.ErrNotFound) || errors.Is(err, session.ErrEmptySession) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal([]byte(raw), &draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &draft, nil
}

// Submit attaches the guest and contact form to the draft and issues the
// booking id.
func (s *Service) Submit(ctx context.Context, sessionID string, req SubmitRequest) (*Draft, error) {
	draft, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Status == StatusSubmitted {
		return nil, ErrAlreadySubmitted
	}

	if err := checkGuests(draft, req.Guests); err != nil {
		return nil, err
	}

	id, ref := s.ids.NewID()
	submittedAt := s.now().UTC()

	contact := req.Contact
	draft.Guests = req.Guests
	draft.Contact = &contact
	draft.ID = id
	draft.Reference = ref
	draft.Status = StatusSubmitted
	draft.SubmittedAt = &submittedAt

	if err := s.save(ctx, sessionID, draft); err != nil {
		return nil, err
	}

	s.logger.Info("booking draft submitted",
		logger.Field{Key: "booking_id", Value: id},
		logger.Field{Key: "reference", Value: ref},
	)
	return draft, nil
}

// Clear drops the session's draft. Called when the user starts a new search.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("failed to clear draft: %w", err)
	}
	return nil
}

// Confirmation renders the confirmation document of a submitted draft.
func (s *Service) Confirmation(ctx context.Context, sessionID string) ([]byte, error) {
	draft, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if draft.Status != StatusSubmitted {
		return nil, ErrNotSubmitted
	}
	return RenderConfirmation(draft)
}

func (s *Service) save(ctx context.Context, sessionID string, draft *Draft) error {
	encoded, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	if err := s.store.Set(ctx, sessionID, draftKey, string(encoded)); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}
	return nil
}

func checkGuests(draft *Draft, guests []Guest) error {
	switch draft.Kind {
	case KindFlight:
		if len(guests) != draft.Passengers.Total() {
			return fmt.Errorf("%w: expected %d passengers, got %d", ErrInvalidDraft, draft.Passengers.Total(), len(guests))
		}
		var adults, children, infants uint32
		for _, g := range guests {
			switch g.Type {
			case "adult":
				adults++
			case "child":
				children++
			case "infant":
				infants++
			}
		}
		if adults != draft.Passengers.Adults || children != draft.Passengers.Children || infants != draft.Passengers.Infants {
			return fmt.Errorf("%w: passenger types do not match the search", ErrInvalidDraft)
		}
	case KindHotel:
		// one lead guest per room is enough for hotels
		if len(guests) > draft.Passengers.Total() {
			return fmt.Errorf("%w: more guests than travellers", ErrInvalidDraft)
		}
	}
	return nil
}
