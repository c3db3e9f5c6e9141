package catalogService

import (
	"AutoPartsBot/internal/api/catalog"
	"AutoPartsBot/internal/entity"
	"AutoPartsBot/pkg/log"
	"AutoPartsBot/pkg/nlp"
	"golang.org/x/net/context"
)

func (s *catalogService) ListParts(ctx context.Context, vehicleMake, category string) ([]entity.Part, error) {
	if vehicleMake != "" {
		vehicleMake = nlp.NormalizeMake(vehicleMake, nil)
	}
	if category != "" {
		category = nlp.NormalizeCategory(category, s.synonyms, nil)
	}

	parts := s.catalogRepo.Lookup(vehicleMake, "", category)
	s.log.WithFields(log.Fields{
		"make":     vehicleMake,
		"category": category,
		"results":  len(parts),
	}).Debug("Catalog list")

	return parts, nil
}

func (s *catalogService) GetPart(ctx context.Context, sku string) (entity.Part, error) {
	part, ok := s.catalogRepo.BySKU(sku)
	if !ok {
		return entity.Part{}, catalog.ErrPartNotFound
	}
	return part, nil
}

// Search runs the fuzzy matcher over the full catalog. An empty result is a
// valid answer, not an error.
func (s *catalogService) Search(ctx context.Context, query string) (nlp.MatchResult, error) {
	tokens := nlp.ExtractTokens(query)
	if len(tokens) == 0 {
		return nlp.MatchResult{}, catalog.ErrEmptyQuery
	}

	result := s.matcher.Match(tokens, s.catalogRepo.All())

	s.log.WithFields(log.Fields{
		"query":   query,
		"tokens":  tokens,
		"results": len(result.Scored),
	}).Debug("Catalog search")

	return result, nil
}

func (s *catalogService) ListMakes(ctx context.Context) ([]string, error) {
	return s.catalogRepo.AvailableMakes(), nil
}
