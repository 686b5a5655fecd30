package usecase

import (
	"context"

	domainErrors "github.com/polkiloo/presto/internal/domain/errors"
	"github.com/polkiloo/presto/internal/domain/model"
)

// PartnerSource lists delivery partners bidding on a request.
type PartnerSource interface {
	Candidates(ctx context.Context) ([]model.Partner, error)
}

// FindPartner looks up a partner by id in a candidate snapshot.
func FindPartner(candidates []model.Partner, id string) (model.Partner, error) {
	for _, p := range candidates {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Partner{}, domainErrors.ErrUnknownPartner
}
