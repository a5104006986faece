package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
	"roamconnect/internal/models/request_models"
	"roamconnect/internal/models/response_models"
	"roamconnect/internal/repositories"
	"roamconnect/pkg/utils"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (map[string]interface{}, error)
	GetItineraryById(ctx context.Context, id string) (*response_models.ItineraryRecord, error)
	ListItineraries(ctx context.Context) ([]response_models.ItinerarySummary, error)
	DeleteItinerary(ctx context.Context, id string) error
	GetItineraryView(ctx context.Context, id string, sel DaySelection) (*response_models.ItineraryView, error)
	GetSimilarItineraries(ctx context.Context, id string) ([]response_models.SimilarItinerary, error)
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	embeddingRepo repositories.IItineraryEmbeddingRepository
	planner       utils.PlannerClientInterface
	embedder      utils.EmbeddingClientInterface
	normalizer    NormalizerServiceInterface
	viewService   ItineraryViewServiceInterface
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	embeddingRepo repositories.IItineraryEmbeddingRepository,
	planner utils.PlannerClientInterface,
	embedder utils.EmbeddingClientInterface,
	normalizer NormalizerServiceInterface,
	viewService ItineraryViewServiceInterface,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		embeddingRepo: embeddingRepo,
		planner:       planner,
		embedder:      embedder,
		normalizer:    normalizer,
		viewService:   viewService,
	}
}

func (s *ItineraryService) CreateItinerary(ctx context.Context, req request_models.CreateItineraryRequest) (map[string]interface{}, error) {
	days := utils.CoerceInt(req.Days)
	if days < 1 || days > 30 {
		return nil, utils.ErrInvalidInput
	}
	budget := utils.CoerceAmount(req.Budget)
	preferences := coercePreferences(req.Preferences)

	planJSON, err := s.planner.GenerateItineraryJSON(ctx, utils.PlanRequest{
		Source:      req.Source,
		Destination: req.Destination,
		Days:        days,
		Budget:      budget,
		Preferences: preferences,
	})
	if err != nil {
		if errors.Is(err, utils.ErrPlanNotJSON) {
			return nil, err
		}
		log.Printf("Planner error: %v", err)
		return nil, utils.ErrPlannerFailure
	}

	var plan map[string]interface{}
	if err := json.Unmarshal([]byte(planJSON), &plan); err != nil {
		return nil, utils.ErrPlanNotJSON
	}

	if got := planDayCount(plan); got != days {
		log.Printf("Expected %d days but planner returned %d", days, got)
		return nil, utils.ErrIncompletePlan
	}

	itinerary := &db_models.Itinerary{
		Source:      req.Source,
		Destination: req.Destination,
		Days:        days,
		Budget:      budget,
		Preferences: preferences,
		PlanData:    datatypes.JSON(planJSON),
	}
	if err := s.itineraryRepo.Insert(ctx, itinerary); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// Embedding is best-effort: similarity search degrades, creation does not.
	s.storeEmbedding(ctx, itinerary)

	// Merged envelope: basic fields and plan detail together at the root,
	// the shape the front-end expects for a freshly created itinerary.
	data := map[string]interface{}{
		"id":          itinerary.ID.String(),
		"source":      itinerary.Source,
		"destination": itinerary.Destination,
		"days":        itinerary.Days,
		"budget":      itinerary.Budget,
		"preferences": preferences,
	}
	for k, v := range plan {
		data[k] = v
	}
	return data, nil
}

func (s *ItineraryService) GetItineraryById(ctx context.Context, id string) (*response_models.ItineraryRecord, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	var plan map[string]interface{}
	if len(itinerary.PlanData) > 0 {
		if err := json.Unmarshal(itinerary.PlanData, &plan); err != nil {
			log.Printf("Stored plan for %s is not valid JSON: %v", id, err)
		}
	}
	if plan == nil {
		plan = map[string]interface{}{}
	}

	return &response_models.ItineraryRecord{
		ID:          itinerary.ID.String(),
		Budget:      itinerary.Budget,
		Source:      itinerary.Source,
		Destination: itinerary.Destination,
		Days:        itinerary.Days,
		Preferences: itinerary.Preferences,
		Itinerary:   plan,
		CreatedAt:   utils.FormatRFC3339IST(utils.FromUnixSecondsIST(itinerary.CreatedAt)),
	}, nil
}

func (s *ItineraryService) ListItineraries(ctx context.Context) ([]response_models.ItinerarySummary, error) {
	itineraries, err := s.itineraryRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ItinerarySummary, 0, len(itineraries))
	for _, it := range itineraries {
		out = append(out, response_models.ItinerarySummary{
			ID:          it.ID.String(),
			Budget:      it.Budget,
			Source:      it.Source,
			Destination: it.Destination,
			Days:        it.Days,
			Preferences: it.Preferences,
			CreatedAt:   utils.FormatRFC3339IST(utils.FromUnixSecondsIST(it.CreatedAt)),
		})
	}
	return out, nil
}

func (s *ItineraryService) DeleteItinerary(ctx context.Context, id string) error {
	err := s.itineraryRepo.DeleteById(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrItineraryNotFound
		}
		return utils.ErrDatabaseError
	}

	if err := s.embeddingRepo.DeleteByItineraryId(id); err != nil {
		log.Printf("Error deleting embedding for %s: %v", id, err)
	}
	return nil
}

func (s *ItineraryService) GetItineraryView(ctx context.Context, id string, sel DaySelection) (*response_models.ItineraryView, error) {
	record, err := s.GetItineraryById(ctx, id)
	if err != nil {
		return nil, err
	}

	raw := map[string]interface{}{
		"source":      record.Source,
		"destination": record.Destination,
		"days":        record.Days,
		"budget":      record.Budget,
		"preferences": stringsToAny(record.Preferences),
		"itinerary":   record.Itinerary,
	}

	detail := s.normalizer.Normalize(raw)
	return s.viewService.BuildView(detail, sel), nil
}

func (s *ItineraryService) GetSimilarItineraries(ctx context.Context, id string) ([]response_models.SimilarItinerary, error) {
	itinerary, err := s.itineraryRepo.FindById(ctx, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}

	vector, err := s.embedder.GetEmbedding(ctx, embeddingText(itinerary))
	if err != nil {
		log.Printf("Embedding error for %s: %v", id, err)
		return []response_models.SimilarItinerary{}, nil
	}

	rows, err := s.embeddingRepo.GetSimilarByVector(vector, id)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.SimilarItinerary, 0, len(rows))
	for _, row := range rows {
		out = append(out, response_models.SimilarItinerary{
			ID:          row.ItineraryID,
			Source:      row.Source,
			Destination: row.Destination,
			Similarity:  row.Similarity,
		})
	}
	return out, nil
}

func (s *ItineraryService) storeEmbedding(ctx context.Context, itinerary *db_models.Itinerary) {
	vector, err := s.embedder.GetEmbedding(ctx, embeddingText(itinerary))
	if err != nil {
		log.Printf("Embedding error for %s: %v", itinerary.ID, err)
		return
	}
	err = s.embeddingRepo.CreateItineraryEmbedding(db_models.ItineraryEmbedding{
		ItineraryID: itinerary.ID.String(),
		Source:      itinerary.Source,
		Destination: itinerary.Destination,
		Embedding:   vector,
	})
	if err != nil {
		log.Printf("Error storing embedding for %s: %v", itinerary.ID, err)
	}
}

func embeddingText(itinerary *db_models.Itinerary) string {
	return fmt.Sprintf("%s %s %s", itinerary.Source, itinerary.Destination,
		strings.Join(itinerary.Preferences, " "))
}

func planDayCount(plan map[string]interface{}) int {
	if days, ok := plan["daily_itinerary"].([]interface{}); ok {
		return len(days)
	}
	return 0
}

func coercePreferences(v interface{}) []string {
	switch t := v.(type) {
	case []interface{}:
		out := make([]string, 0, len(t))
		for _, p := range t {
			if s, ok := p.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	case string:
		parts := strings.Split(t, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out
	}
	return []string{}
}

func stringsToAny(ss []string) []interface{} {
	out := make([]interface{}, 0, len(ss))
	for _, s := range ss {
		out = append(out, s)
	}
	return out
}
