package missions

import (
	"fmt"
	"time"
)

// Status is the lifecycle state of a mission.
type Status uint8

const (
	StatusScheduled Status = iota + 1
	StatusCompleted
	StatusCanceled
)

func (s Status) String() string {
	switch s {
	case StatusScheduled:
		return "scheduled"
	case StatusCompleted:
		return "completed"
	case StatusCanceled:
		return "canceled"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

// Terminal reports whether no further transition is possible from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCanceled
}

// CanTransition reports whether a mission in state s may move to next.
// Only scheduled missions transition; completed and canceled are terminal.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusScheduled:
		return next == StatusCompleted || next == StatusCanceled
	default:
		return false
	}
}

func (s Status) MarshalText() ([]byte, error) {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return []byte(s.String()), nil
	}
	return nil, fmt.Errorf("missions: invalid status %d", uint8(s))
}

func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// ParseStatus converts the wire form of a status back into a Status.
func ParseStatus(v string) (Status, error) {
	switch v {
	case "scheduled":
		return StatusScheduled, nil
	case "completed":
		return StatusCompleted, nil
	case "canceled":
		return StatusCanceled, nil
	}
	return 0, fmt.Errorf("missions: unknown status %q", v)
}

// Waypoint is a single geographic point of a flight path.
type Waypoint struct {
	Lat float64
	Lon float64
}

// FlightPath is replaced wholesale on update, never edited in place.
type FlightPath struct {
	Waypoints []Waypoint
	Altitude  float64
	Speed     float64
}

func (fp FlightPath) clone() FlightPath {
	out := fp
	if fp.Waypoints != nil {
		out.Waypoints = make([]Waypoint, len(fp.Waypoints))
		copy(out.Waypoints, fp.Waypoints)
	}
	return out
}

// ImageInfo is the simulated capture taken at one waypoint.
type ImageInfo struct {
	ImageID     string
	URL         string
	Timestamp   time.Time
	Coordinates Waypoint
}

// Mission is the aggregate root tracked by the Store.
type Mission struct {
	ID          string
	FlightPath  FlightPath
	Status      Status
	SubmittedAt time.Time
	Images      []ImageInfo
}

func (m Mission) clone() Mission {
	out := m
	out.FlightPath = m.FlightPath.clone()
	out.Images = cloneImages(m.Images)
	return out
}

func cloneImages(in []ImageInfo) []ImageInfo {
	if in == nil {
		return nil
	}
	out := make([]ImageInfo, len(in))
	copy(out, in)
	return out
}
