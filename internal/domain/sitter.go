package domain

import (
	"errors"
	"time"
)

type ServiceKind string

const (
	ServiceWalking  ServiceKind = "walking"
	ServiceSitting  ServiceKind = "sitting"
	ServiceBoarding ServiceKind = "boarding"
	ServiceGrooming ServiceKind = "grooming"
)

// AllServiceKinds lists every bookable service, in display order.
var AllServiceKinds = []ServiceKind{
	ServiceWalking,
	ServiceSitting,
	ServiceBoarding,
	ServiceGrooming,
}

var ErrUnknownServiceKind = errors.New("unknown service kind")

func ParseServiceKind(s string) (ServiceKind, error) {
	switch ServiceKind(s) {
	case ServiceWalking, ServiceSitting, ServiceBoarding, ServiceGrooming:
		return ServiceKind(s), nil
	}
	return "", ErrUnknownServiceKind
}

// RateMap maps a service kind to its price per hour.
type RateMap map[ServiceKind]float64

type Sitter struct {
	ID        int64         `json:"id"`
	Name      string        `json:"name" validate:"required"`
	Rating    float64       `json:"rating"`
	Reviews   int           `json:"reviews"`
	Location  string        `json:"location"`
	Bio       string        `json:"bio,omitempty"`
	Avatar    string        `json:"avatar,omitempty"`
	Services  []ServiceKind `json:"services"`
	Rates     RateMap       `json:"rates"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Offers reports whether the sitter has the service in their offered set.
// A rate entry alone is not enough: only listed services are bookable.
func (s *Sitter) Offers(kind ServiceKind) bool {
	for _, k := range s.Services {
		if k == kind {
			return true
		}
	}
	return false
}

// MinRate returns the lowest per-hour rate across all of the sitter's rates.
func (s *Sitter) MinRate() float64 {
	first := true
	var min float64
	for _, r := range s.Rates {
		if first || r < min {
			min = r
			first = false
		}
	}
	return min
}

// MaxRate returns the highest per-hour rate across all of the sitter's rates.
func (s *Sitter) MaxRate() float64 {
	var max float64
	for _, r := range s.Rates {
		if r > max {
			max = r
		}
	}
	return max
}
