package replay

import "worldforge/internal/app/ports"

type Request struct {
	CampaignID string
	Limit      int
	TickFrom   int64
	TickTo     int64
}

type Response struct {
	Events     []ports.DomainEvent `json:"events"`
	LatestTick int64               `json:"latest_tick"`
	Escalation int                 `json:"escalation"`
}
