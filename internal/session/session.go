package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bravoman80000/Country-Sim-Bot/internal/command"
	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/engine"
	"github.com/bravoman80000/Country-Sim-Bot/internal/parser"
	"github.com/bravoman80000/Country-Sim-Bot/internal/persistence"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
	"github.com/bravoman80000/Country-Sim-Bot/internal/rules"
)

// Actor is whoever sent a command. IsGM is decided once by the transport.
type Actor struct {
	ID   string
	Name string
	IsGM bool
}

// Options configures a Session. Zero values fall back to sensible defaults.
type Options struct {
	DataDirs        []string
	DefaultCalendar data.Calendar
	Dice            engine.Source
	Clock           func() time.Time
	Logger          *slog.Logger
}

// Session runs commands against the stored world: load, execute, save.
// Commands are serialised so concurrent transports never interleave a
// read-modify-write cycle.
type Session struct {
	mu         sync.Mutex
	store      persistence.Store
	tiers      engine.TierSet
	chronicle  *rules.Chronicle
	dice       engine.Source
	defaultCal data.Calendar
	clock      func() time.Time
	log        *slog.Logger
}

// New loads tier tables and chronicle events from the data directories and
// binds them to store.
func New(store persistence.Store, opts Options) (*Session, error) {
	if opts.Dice == nil {
		opts.Dice = engine.CryptoSource{}
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.DefaultCalendar == (data.Calendar{}) {
		opts.DefaultCalendar = data.Calendar{Year: 1444, Turn: 1}
	}

	loader := data.NewLoader(opts.DataDirs)
	tiers, err := engine.LoadTierSet(loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load tier tables: %w", err)
	}
	reg, err := rules.NewRegistry(opts.Dice)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rules registry: %w", err)
	}
	chronicle, err := rules.LoadChronicle(reg, loader)
	if err != nil {
		return nil, fmt.Errorf("failed to load chronicle: %w", err)
	}

	return &Session{
		store:      store,
		tiers:      tiers,
		chronicle:  chronicle,
		dice:       opts.Dice,
		defaultCal: opts.DefaultCalendar,
		clock:      opts.Clock,
		log:        opts.Logger,
	}, nil
}

// Execute runs one line of input for actor. The returned result always
// carries what to show the user, failures included; the error is the
// underlying cause for callers that log or test it.
func (s *Session) Execute(ctx context.Context, actor Actor, input string) (*command.Result, error) {
	if err := ctx.Err(); err != nil {
		return &command.Result{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	log := s.log.With("actor", actor.Name, "actor_id", actor.ID)
	res, name, err := s.execute(actor, input)
	if err != nil {
		msg := Describe(err)
		if isUnexpected(err) {
			log.Error("command failed", "command", name, "error", err)
		} else {
			log.Info("command rejected", "command", name, "reason", err)
		}
		return &command.Result{Messages: []string{msg}}, err
	}
	log.Info("command executed", "command", name, "changed", int(res.Changed))
	return res, nil
}

func (s *Session) execute(actor Actor, input string) (*command.Result, string, error) {
	inv, err := parser.Parse(input)
	if err != nil {
		return nil, "", err
	}
	def, ok := command.Lookup(inv.Name)
	if !ok {
		return nil, inv.Name, &command.Failure{
			Kind:    engine.ErrNotFound,
			Message: fmt.Sprintf("❌ Unknown command /%s. Try /help.", inv.Name),
		}
	}
	if def.GMOnly && !actor.IsGM {
		return nil, def.Name, fmt.Errorf("/%s: %w", def.Name, engine.ErrUnauthorized)
	}

	env, err := s.load(actor)
	if err != nil {
		return nil, def.Name, err
	}
	res, err := def.Run(env, inv)
	if err != nil {
		return nil, def.Name, err
	}
	if err := s.save(env, res.Changed); err != nil {
		return nil, def.Name, err
	}
	return res, def.Name, nil
}

func (s *Session) load(actor Actor) (*command.Env, error) {
	countries, err := s.store.LoadCountries()
	if err != nil {
		return nil, err
	}
	wars, err := s.store.LoadWars()
	if err != nil {
		return nil, err
	}
	cal, err := s.store.LoadCalendar(s.defaultCal)
	if err != nil {
		return nil, err
	}
	return &command.Env{
		Countries: registry.NewCountries(countries),
		Wars:      registry.NewWars(wars),
		Calendar:  cal,
		Tiers:     s.tiers,
		Dice:      s.dice,
		Chronicle: s.chronicle,
		Today:     s.clock().Format(time.DateOnly),
		IsGM:      actor.IsGM,
	}, nil
}

func (s *Session) save(env *command.Env, changed command.Docs) error {
	if changed.Has(command.DocCountries) {
		if err := s.store.SaveCountries(env.Countries.Document()); err != nil {
			return err
		}
	}
	if changed.Has(command.DocWars) {
		if err := s.store.SaveWars(env.Wars.Log()); err != nil {
			return err
		}
	}
	if changed.Has(command.DocCalendar) {
		if err := s.store.SaveCalendar(env.Calendar); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot is a read-only view of the world for dashboards.
type Snapshot struct {
	Calendar   data.Calendar
	ActiveWars []data.War
	Countries  []string
}

// Snapshot reads the current documents without running a command.
func (s *Session) Snapshot() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	env, err := s.load(Actor{})
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{
		Calendar:   env.Calendar,
		ActiveWars: env.Wars.List(false),
		Countries:  env.Countries.Names(),
	}, nil
}

// isUnexpected reports errors that are not the user's doing.
func isUnexpected(err error) bool {
	var f *command.Failure
	if errors.As(err, &f) || errors.Is(err, parser.ErrSyntax) {
		return false
	}
	for _, known := range []error{
		engine.ErrNotFound, engine.ErrPathNotFound, engine.ErrInvalidAmount, engine.ErrInvalidTurn,
		engine.ErrUnauthorized, engine.ErrInvalidResult, engine.ErrAlreadyExists, engine.ErrInvalidArgument,
	} {
		if errors.Is(err, known) {
			return false
		}
	}
	return true
}
