package model

import (
	"errors"
	"strings"
	"time"
)

// Role identifies which slice of the system an account may operate on.
// The set is closed; anything else is rejected at registration.
type Role string

const (
	RoleStudent    Role = "student"
	RoleCanteen    Role = "canteen"
	RoleStationery Role = "stationery"
	RoleHostel     Role = "hostel"
	RoleAdmin      Role = "admin"
)

var ErrUnknownRole = errors.New("unknown role")

func ParseRole(raw string) (Role, error) {
	switch Role(strings.TrimSpace(strings.ToLower(raw))) {
	case RoleStudent:
		return RoleStudent, nil
	case RoleCanteen:
		return RoleCanteen, nil
	case RoleStationery:
		return RoleStationery, nil
	case RoleHostel:
		return RoleHostel, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// AccountStatus is the lifecycle flag gating login and session liveness.
type AccountStatus string

const (
	StatusActive   AccountStatus = "active"
	StatusInactive AccountStatus = "inactive"
	StatusDeleted  AccountStatus = "deleted"
)

var ErrUnknownStatus = errors.New("unknown status")

func ParseStatus(raw string) (AccountStatus, error) {
	switch AccountStatus(strings.TrimSpace(strings.ToLower(raw))) {
	case StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	case StatusDeleted:
		return StatusDeleted, nil
	default:
		return "", ErrUnknownStatus
	}
}

// Live reports whether a subject with this status may hold a session.
func (s AccountStatus) Live() bool {
	return s == StatusActive
}

// Transition returns the status an account lands on when an admin requests
// the given target. Deletion wins from any state. A deleted account can only
// come back as active, never straight to inactive.
func (s AccountStatus) Transition(requested AccountStatus) AccountStatus {
	if requested == StatusDeleted {
		return StatusDeleted
	}
	if s == StatusDeleted {
		return StatusActive
	}
	return requested
}

type Account struct {
	ID            string
	FullName      string
	Email         string
	PasswordHash  string
	Role          Role
	Status        AccountStatus
	ContactNumber string
	Gender        string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Administrator rows live in their own table and carry no status column;
// liveness for an admin subject is row existence.
type Administrator struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

type CanteenItem struct {
	ID        string
	ItemName  string
	Price     float64
	Quantity  int
	Status    string
	CreatedAt time.Time
}

type StationeryItem struct {
	ID         string
	ItemName   string
	Price      float64
	StockLevel int
	Category   string
	CreatedAt  time.Time
}

type HostelItem struct {
	ID                 string
	ItemName           string
	Type               string
	AvailabilityStatus string
	CreatedAt          time.Time
}
