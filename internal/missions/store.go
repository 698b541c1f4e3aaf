// Package missions owns drone missions and the state machine that governs them.
//
// A Store is the only place a Mission is mutated. Missions live in memory for
// the lifetime of the process and are never removed.
package missions

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	DefaultImageHost = "example.com"

	// createAttempts bounds retries when a generated id is already taken.
	createAttempts = 8
)

// record pairs a mission with the lock that serializes its mutations.
type record struct {
	mu      sync.Mutex
	mission Mission
}

// Store is an in-memory mission collection safe for concurrent use.
// Operations on one mission are mutually exclusive; operations on different
// missions only share the brief index lookup.
type Store struct {
	index     *cache.Cache
	imageHost string
	now       func() time.Time
	newID     func() string
	onChange  TransitionHook
}

// TransitionHook observes every state change. from is zero for a newly
// created mission. It runs while the mission is locked and must not call
// back into the Store.
type TransitionHook func(from Status, m Mission)

type Option func(*Store)

// WithImageHost sets the host used in synthesized image URLs.
func WithImageHost(host string) Option {
	return func(s *Store) {
		if host != "" {
			s.imageHost = host
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDGenerator overrides how mission and image ids are generated.
func WithIDGenerator(gen func() string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithTransitionHook registers fn to observe creations and transitions.
func WithTransitionHook(fn TransitionHook) Option {
	return func(s *Store) {
		s.onChange = fn
	}
}

func NewStore(opts ...Option) *Store {
	s := &Store{
		// no expiration and no janitor: missions persist until shutdown
		index:     cache.New(cache.NoExpiration, 0),
		imageHost: DefaultImageHost,
		now:       time.Now,
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Len returns the number of missions tracked.
func (s *Store) Len() int {
	return s.index.ItemCount()
}

func (s *Store) lookup(op, id string) (*record, error) {
	v, ok := s.index.Get(id)
	if !ok {
		return nil, notFound(op, id)
	}
	return v.(*record), nil
}

// Create inserts a new scheduled mission for fp.
func (s *Store) Create(fp FlightPath) (Mission, error) {
	submittedAt := s.now().UTC()
	for i := 0; i < createAttempts; i++ {
		rec := &record{mission: Mission{
			ID:          s.newID(),
			FlightPath:  fp.clone(),
			Status:      StatusScheduled,
			SubmittedAt: submittedAt,
		}}
		rec.mu.Lock()
		// Add refuses existing keys, which keeps ids unique.
		if err := s.index.Add(rec.mission.ID, rec, cache.NoExpiration); err != nil {
			rec.mu.Unlock()
			continue
		}
		s.notify(0, rec.mission)
		out := rec.mission.clone()
		rec.mu.Unlock()
		return out, nil
	}
	return Mission{}, fmt.Errorf("create mission: no unique id after %d attempts", createAttempts)
}

func (s *Store) Get(id string) (Mission, error) {
	rec, err := s.lookup("get", id)
	if err != nil {
		return Mission{}, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	return rec.mission.clone(), nil
}

// UpdateFlightPath replaces the flight path of a scheduled mission.
func (s *Store) UpdateFlightPath(id string, fp FlightPath) (Mission, error) {
	rec, err := s.lookup("update", id)
	if err != nil {
		return Mission{}, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.mission.Status != StatusScheduled {
		return Mission{}, &StateError{MissionID: id, Op: "update", Status: rec.mission.Status}
	}
	rec.mission.FlightPath = fp.clone()
	return rec.mission.clone(), nil
}

// Complete finishes a scheduled mission and synthesizes one image per
// waypoint. Completing an already completed mission returns the stored images.
func (s *Store) Complete(id string) ([]ImageInfo, error) {
	rec, err := s.lookup("complete", id)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	m := &rec.mission
	if m.Status == StatusCompleted {
		return cloneImages(m.Images), nil
	}
	if !m.Status.CanTransition(StatusCompleted) {
		return nil, &StateError{MissionID: id, Op: "complete", Status: m.Status}
	}

	taken := s.now().UTC()
	images := make([]ImageInfo, 0, len(m.FlightPath.Waypoints))
	for _, wp := range m.FlightPath.Waypoints {
		imageID := s.newID()
		images = append(images, ImageInfo{
			ImageID:     imageID,
			URL:         s.imageURL(id, imageID),
			Timestamp:   taken,
			Coordinates: wp,
		})
	}
	m.Images = images
	m.Status = StatusCompleted
	s.notify(StatusScheduled, *m)
	return cloneImages(images), nil
}

// Cancel moves a scheduled mission to canceled.
func (s *Store) Cancel(id string) (Mission, error) {
	rec, err := s.lookup("cancel", id)
	if err != nil {
		return Mission{}, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if !rec.mission.Status.CanTransition(StatusCanceled) {
		return Mission{}, &StateError{MissionID: id, Op: "cancel", Status: rec.mission.Status}
	}
	from := rec.mission.Status
	rec.mission.Status = StatusCanceled
	s.notify(from, rec.mission)
	return rec.mission.clone(), nil
}

// ListImages returns the images of a completed mission.
func (s *Store) ListImages(id string) ([]ImageInfo, error) {
	rec, err := s.lookup("list images", id)
	if err != nil {
		return nil, err
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()

	if rec.mission.Status != StatusCompleted {
		return nil, &StateError{MissionID: id, Op: "list images", Status: rec.mission.Status}
	}
	return cloneImages(rec.mission.Images), nil
}

func (s *Store) notify(from Status, m Mission) {
	if s.onChange != nil {
		s.onChange(from, m.clone())
	}
}

func (s *Store) imageURL(missionID, imageID string) string {
	return fmt.Sprintf("https://%s/drone_images/%s/%s.jpg", s.imageHost, missionID, imageID)
}
