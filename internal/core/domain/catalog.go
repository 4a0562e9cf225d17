package domain

import "time"

// ServiceIcon is the closed set of renderable icon tags for catalog entries.
// The frontend maps each tag to a component; unknown tags coerce to the
// fallback so a stale database value never breaks rendering.
type ServiceIcon string

const (
	IconShield     ServiceIcon = "Shield"
	IconCode       ServiceIcon = "Code"
	IconSmartphone ServiceIcon = "Smartphone"
	IconCloud      ServiceIcon = "Cloud"
	IconLock       ServiceIcon = "Lock"
	IconZap        ServiceIcon = "Zap"
)

var knownIcons = map[ServiceIcon]struct{}{
	IconShield:     {},
	IconCode:       {},
	IconSmartphone: {},
	IconCloud:      {},
	IconLock:       {},
	IconZap:        {},
}

// ParseIcon maps a raw tag to a known icon, falling back to IconShield.
func ParseIcon(raw string) ServiceIcon {
	if _, ok := knownIcons[ServiceIcon(raw)]; ok {
		return ServiceIcon(raw)
	}
	return IconShield
}

// Service is a catalog entry on the marketing site.
type Service struct {
	ID          string      `json:"_id"`
	Icon        ServiceIcon `json:"icon"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Leader is one entry in the about page leadership list.
type Leader struct {
	Name string `json:"name" bson:"name"`
	Role string `json:"role" bson:"role"`
}

// About is the singleton about-page content document.
type About struct {
	ID          string    `json:"_id,omitempty"`
	Description string    `json:"description"`
	Mission     string    `json:"mission"`
	Vision      string    `json:"vision"`
	Values      string    `json:"values"`
	Leadership  []Leader  `json:"leadership"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
