package trips

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/RahimHoxha/travel-agency/config"
)

// ItineraryGenerator produces the itinerary JSON for a trip request.
type ItineraryGenerator interface {
	Generate(ctx context.Context, req TripRequest) (json.RawMessage, error)
}

// ImageSearcher looks up photo URLs for a free-text query. Entries are
// nil when a result carries no usable URL.
type ImageSearcher interface {
	SearchPhotoURLs(ctx context.Context, query string, limit int) ([]*string, error)
}

// PlanResult is what gets persisted for a successful request.
type PlanResult struct {
	TripDetails string
	ImageURLs   []*string
}

// Planner runs the full generation flow for one request: credential gate,
// completion call, image lookup. Everything is sequential; each step is
// awaited before the next.
type Planner struct {
	cfg       config.Config
	generator ItineraryGenerator
	images    ImageSearcher
}

func NewPlanner(cfg config.Config, generator ItineraryGenerator, images ImageSearcher) *Planner {
	return &Planner{
		cfg:       cfg,
		generator: generator,
		images:    images,
	}
}

const maxTripImages = 3

// Plan generates and assembles a trip. A missing credential fails before
// any outbound call is made.
func (p *Planner) Plan(ctx context.Context, req TripRequest) (*PlanResult, error) {
	if !p.cfg.HasAPIKeys() {
		return nil, &ConfigurationError{}
	}

	itinerary, err := p.generator.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("%s %s %s", req.Country, req.Interests, req.TravelStyle)
	imageURLs, err := p.images.SearchPhotoURLs(ctx, query, maxTripImages)
	if err != nil {
		return nil, err
	}

	return &PlanResult{
		TripDetails: string(itinerary),
		ImageURLs:   imageURLs,
	}, nil
}
