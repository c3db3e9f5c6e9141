package catalogService

import (
	catalogRepository "AutoPartsBot/internal/api/catalog/repository"
	"AutoPartsBot/internal/entity"
	"AutoPartsBot/pkg/nlp"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type ICatalogService interface {
	ListParts(ctx context.Context, vehicleMake, category string) ([]entity.Part, error)
	GetPart(ctx context.Context, sku string) (entity.Part, error)
	Search(ctx context.Context, query string) (nlp.MatchResult, error)
	ListMakes(ctx context.Context) ([]string, error)
}

type catalogService struct {
	log         *logrus.Logger
	catalogRepo catalogRepository.Repository
	matcher     *nlp.Matcher
	synonyms    map[string]string
}

func New(
	log *logrus.Logger,
	catalogRepo catalogRepository.Repository,
	matcher *nlp.Matcher,
	synonyms map[string]string,
) ICatalogService {
	return &catalogService{
		log:         log,
		catalogRepo: catalogRepo,
		matcher:     matcher,
		synonyms:    synonyms,
	}
}
