package onboarding

import (
	"errors"
	"fmt"
	"time"

	"anglermatch/internal/logging"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Stage is one named step of the wizard.
type Stage string

const (
	StageWelcome  Stage = "welcome"
	StageProfile  Stage = "profile"
	StageLocation Stage = "location"
	StageDateTime Stage = "datetime"
	StageMatching Stage = "matching"
)

// Stages lists every stage in flow order.
var Stages = []Stage{StageWelcome, StageProfile, StageLocation, StageDateTime, StageMatching}

var (
	// ErrWrongStage is returned for an event the current stage does not accept.
	ErrWrongStage = errors.New("event not accepted in current stage")
	// ErrIncomplete is returned for a submission whose completeness predicate fails.
	ErrIncomplete = errors.New("submission incomplete")
)

// Event is a typed message consumed by Controller.Apply.
type Event interface {
	isEvent()
}

// Started leaves the welcome screen.
type Started struct{}

// ProfileSubmitted carries the finished profile.
type ProfileSubmitted struct{ Profile UserProfile }

// LocationSubmitted carries the chosen location.
type LocationSubmitted struct{ Location LocationSelection }

// AvailabilitySubmitted carries the chosen dates and time slots.
type AvailabilitySubmitted struct{ Availability AvailabilitySelection }

// Liked records a match on the current deck card.
type Liked struct{ AnglerID string }

// Passed records a pass on the current deck card.
type Passed struct{ AnglerID string }

func (Started) isEvent()               {}
func (ProfileSubmitted) isEvent()      {}
func (LocationSubmitted) isEvent()     {}
func (AvailabilitySubmitted) isEvent() {}
func (Liked) isEvent()                 {}
func (Passed) isEvent()                {}

// Session is the aggregate record the controller builds up. Stage data
// pointers are nil until that stage has been submitted.
type Session struct {
	ID           string
	StartedAt    time.Time
	Stage        Stage
	Profile      *UserProfile
	Location     *LocationSelection
	Availability *AvailabilitySelection
	Matches      []string
}

func (s Session) clone() Session {
	out := s
	if s.Profile != nil {
		p := s.Profile.clone()
		out.Profile = &p
	}
	if s.Location != nil {
		l := s.Location.clone()
		out.Location = &l
	}
	if s.Availability != nil {
		a := s.Availability.clone()
		out.Availability = &a
	}
	out.Matches = append([]string(nil), s.Matches...)
	return out
}

// Controller is the wizard state machine. It is not safe for concurrent
// use; the UI drives it from a single event loop.
type Controller struct {
	session Session
	log     *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger overrides the wizard category logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithClock sets the session start time source.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.session.StartedAt = now() }
}

// NewController starts a session at the welcome stage.
func NewController(opts ...Option) *Controller {
	c := &Controller{
		session: Session{
			ID:        uuid.NewString(),
			StartedAt: time.Now(),
			Stage:     StageWelcome,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logging.Get(logging.CategoryWizard)
	}
	c.log = c.log.With(zap.String("session", c.session.ID))
	return c
}

// Stage returns the active stage.
func (c *Controller) Stage() Stage { return c.session.Stage }

// Session returns a deep copy of the aggregate record.
func (c *Controller) Session() Session { return c.session.clone() }

// Matches returns the liked angler ids in the order they were liked.
func (c *Controller) Matches() []string {
	return append([]string(nil), c.session.Matches...)
}

// Apply runs one event through the transition function. The returned
// notification is empty when the event produces no toast. On error the
// session is unchanged.
func (c *Controller) Apply(ev Event) (Notification, error) {
	from := c.session.Stage

	switch e := ev.(type) {
	case Started:
		if err := c.expect(StageWelcome, ev); err != nil {
			return Notification{}, err
		}
		c.advance(StageProfile)
		return Notification{}, nil

	case ProfileSubmitted:
		if err := c.expect(StageProfile, ev); err != nil {
			return Notification{}, err
		}
		if !e.Profile.Complete() {
			return Notification{}, c.incomplete(ev)
		}
		p := e.Profile.clone()
		c.session.Profile = &p
		c.advance(StageLocation)
		return Success("Profile created! Now let's set your location.", ""), nil

	case LocationSubmitted:
		if err := c.expect(StageLocation, ev); err != nil {
			return Notification{}, err
		}
		if !e.Location.Complete() {
			return Notification{}, c.incomplete(ev)
		}
		l := e.Location.clone()
		c.session.Location = &l
		c.advance(StageDateTime)
		return Success("Location set! When are you available to fish?", ""), nil

	case AvailabilitySubmitted:
		if err := c.expect(StageDateTime, ev); err != nil {
			return Notification{}, err
		}
		if !e.Availability.Complete() {
			return Notification{}, c.incomplete(ev)
		}
		a := e.Availability.clone()
		c.session.Availability = &a
		c.advance(StageMatching)
		return Success("Perfect! Let's find your fishing buddies.", ""), nil

	case Liked:
		if err := c.expect(StageMatching, ev); err != nil {
			return Notification{}, err
		}
		if e.AnglerID == "" {
			return Notification{}, c.incomplete(ev)
		}
		c.session.Matches = append(c.session.Matches, e.AnglerID)
		c.log.Info("match recorded", zap.String("angler", e.AnglerID), zap.Int("matches", len(c.session.Matches)))
		return Success("It's a match! 🎣", "You both want to fish together!"), nil

	case Passed:
		if err := c.expect(StageMatching, ev); err != nil {
			return Notification{}, err
		}
		c.log.Info("passed on angler", zap.String("angler", e.AnglerID))
		return Notification{}, nil

	default:
		return Notification{}, fmt.Errorf("unknown event %T in stage %s", ev, from)
	}
}

func (c *Controller) expect(want Stage, ev Event) error {
	if c.session.Stage == want {
		return nil
	}
	c.log.Debug("event rejected",
		zap.String("event", fmt.Sprintf("%T", ev)),
		zap.String("stage", string(c.session.Stage)))
	return fmt.Errorf("%T in stage %s: %w", ev, c.session.Stage, ErrWrongStage)
}

func (c *Controller) incomplete(ev Event) error {
	c.log.Debug("incomplete submission", zap.String("event", fmt.Sprintf("%T", ev)))
	return fmt.Errorf("%T: %w", ev, ErrIncomplete)
}

func (c *Controller) advance(to Stage) {
	c.log.Info("stage transition",
		zap.String("from", string(c.session.Stage)),
		zap.String("to", string(to)))
	c.session.Stage = to
}
