package core

import "github.com/google/uuid"

type DisclosureState int

const (
	Closed DisclosureState = iota
	EmailOpen
	DetailsOpen
)

func (s DisclosureState) String() string {
	switch s {
	case EmailOpen:
		return "email_open"
	case DetailsOpen:
		return "details_open"
	default:
		return "closed"
	}
}

// Disclosure tracks which offer, if any, has a popup open. Only one offer
// can be disclosed at a time and the zero value is closed.
type Disclosure struct {
	Offer uuid.UUID
	State DisclosureState
}

// ToggleEmail opens the email popup for id, or closes it if it is already open.
func (d Disclosure) ToggleEmail(id uuid.UUID) Disclosure {
	return d.toggle(id, EmailOpen)
}

// ToggleDetails opens the details popup for id, or closes it if it is already open.
func (d Disclosure) ToggleDetails(id uuid.UUID) Disclosure {
	return d.toggle(id, DetailsOpen)
}

func (d Disclosure) Close() Disclosure {
	return Disclosure{}
}

// StateOf reports the popup state for id. Offers other than the selected
// one are always Closed.
func (d Disclosure) StateOf(id uuid.UUID) DisclosureState {
	if d.State == Closed || d.Offer != id {
		return Closed
	}
	return d.State
}

func (d Disclosure) toggle(id uuid.UUID, target DisclosureState) Disclosure {
	if d.Offer == id && d.State == target {
		return Disclosure{}
	}
	return Disclosure{Offer: id, State: target}
}
