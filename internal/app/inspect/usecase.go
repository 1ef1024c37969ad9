package inspect

import (
	"context"
	"errors"
	"strings"

	"worldforge/internal/app/ports"
)

var ErrInvalidRequest = errors.New("invalid inspect request")

type Request struct {
	CampaignID string
}

type Response struct {
	Record ports.CampaignRecord
}

type UseCase struct {
	Campaigns ports.CampaignRepository
}

func (u UseCase) Execute(ctx context.Context, req Request) (Response, error) {
	req.CampaignID = strings.TrimSpace(req.CampaignID)
	if req.CampaignID == "" {
		return Response{}, ErrInvalidRequest
	}
	record, err := u.Campaigns.GetByID(ctx, req.CampaignID)
	if err != nil {
		return Response{}, err
	}
	return Response{Record: record}, nil
}
