package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"roamconnect/internal/models/db_models"
	"roamconnect/internal/models/request_models"
	"roamconnect/internal/models/response_models"
	"roamconnect/internal/repositories"
	"roamconnect/pkg/utils"
)

type fakeItineraryRepo struct {
	stored    map[string]*db_models.Itinerary
	insertErr error
	deleteErr error
}

func newFakeItineraryRepo() *fakeItineraryRepo {
	return &fakeItineraryRepo{stored: map[string]*db_models.Itinerary{}}
}

func (f *fakeItineraryRepo) Insert(ctx context.Context, itinerary *db_models.Itinerary) error {
	if f.insertErr != nil {
		return f.insertErr
	}
	if itinerary.ID == uuid.Nil {
		itinerary.ID = uuid.New()
	}
	f.stored[itinerary.ID.String()] = itinerary
	return nil
}

func (f *fakeItineraryRepo) FindById(ctx context.Context, id string) (*db_models.Itinerary, error) {
	return f.stored[id], nil
}

func (f *fakeItineraryRepo) ListAll(ctx context.Context) ([]db_models.Itinerary, error) {
	out := make([]db_models.Itinerary, 0, len(f.stored))
	for _, it := range f.stored {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItineraryRepo) DeleteById(ctx context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if _, ok := f.stored[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(f.stored, id)
	return nil
}

type fakeEmbeddingRepo struct {
	created []db_models.ItineraryEmbedding
	deleted []string
	rows    []repositories.SimilarItineraryRow
}

func (f *fakeEmbeddingRepo) CreateItineraryEmbedding(embedding db_models.ItineraryEmbedding) error {
	f.created = append(f.created, embedding)
	return nil
}

func (f *fakeEmbeddingRepo) GetSimilarByVector(vector pgvector.Vector, excludeID string) ([]repositories.SimilarItineraryRow, error) {
	return f.rows, nil
}

func (f *fakeEmbeddingRepo) DeleteByItineraryId(itineraryID string) error {
	f.deleted = append(f.deleted, itineraryID)
	return nil
}

type fakePlanner struct {
	response string
	err      error
}

func (f *fakePlanner) GenerateItineraryJSON(ctx context.Context, req utils.PlanRequest) (string, error) {
	return f.response, f.err
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	if f.err != nil {
		return pgvector.Vector{}, f.err
	}
	return pgvector.NewVector([]float32{0.1, 0.2}), nil
}

func newTestService(repo *fakeItineraryRepo, embRepo *fakeEmbeddingRepo, planner *fakePlanner, embedder *fakeEmbedder) ItineraryServiceInterface {
	return NewItineraryService(repo, embRepo, planner, embedder, NewNormalizerService(), NewItineraryViewService())
}

const twoDayPlan = `{
	"summary": "Quick trip",
	"daily_itinerary": [
		{"day": 1, "activities": [{"activity": "Fort visit", "time_slot": "9 AM", "cost": 500}]},
		{"day": 2, "activities": []}
	],
	"emergency_info": {"police": "100"}
}`

func TestCreateItinerary(t *testing.T) {
	repo := newFakeItineraryRepo()
	embRepo := &fakeEmbeddingRepo{}
	svc := newTestService(repo, embRepo, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	data, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source:      "Delhi",
		Destination: "Jaipur",
		Days:        "2",
		Budget:      "₹15,000",
		Preferences: "food, history",
	})
	require.NoError(t, err)

	// Merged envelope: basic fields and plan keys side by side at the root.
	assert.NotEmpty(t, data["id"])
	assert.Equal(t, "Delhi", data["source"])
	assert.Equal(t, 2, data["days"])
	assert.Equal(t, 15000.0, data["budget"])
	assert.Equal(t, []string{"food", "history"}, data["preferences"])
	assert.Equal(t, "Quick trip", data["summary"])
	assert.NotNil(t, data["daily_itinerary"])

	require.Len(t, repo.stored, 1)
	require.Len(t, embRepo.created, 1)
	assert.Equal(t, "Delhi", embRepo.created[0].Source)
}

func TestCreateItineraryInvalidDays(t *testing.T) {
	svc := newTestService(newFakeItineraryRepo(), &fakeEmbeddingRepo{}, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	for _, days := range []interface{}{0, "0", 31, "not a number", nil} {
		_, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
			Source:      "Delhi",
			Destination: "Jaipur",
			Days:        days,
			Budget:      1000,
		})
		assert.ErrorIs(t, err, utils.ErrInvalidInput, "days: %v", days)
	}
}

func TestCreateItineraryDayCountMismatch(t *testing.T) {
	svc := newTestService(newFakeItineraryRepo(), &fakeEmbeddingRepo{}, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	_, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source:      "Delhi",
		Destination: "Jaipur",
		Days:        3, // plan only has 2 days
		Budget:      1000,
	})
	assert.ErrorIs(t, err, utils.ErrIncompletePlan)
}

func TestCreateItineraryPlannerErrors(t *testing.T) {
	repo := newFakeItineraryRepo()

	svc := newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{err: errors.New("upstream down")}, &fakeEmbedder{})
	_, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	assert.ErrorIs(t, err, utils.ErrPlannerFailure)

	svc = newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{err: utils.ErrPlanNotJSON}, &fakeEmbedder{})
	_, err = svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	assert.ErrorIs(t, err, utils.ErrPlanNotJSON)

	svc = newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{response: "not json"}, &fakeEmbedder{})
	_, err = svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	assert.ErrorIs(t, err, utils.ErrPlanNotJSON)
}

func TestCreateItinerarySurvivesEmbeddingFailure(t *testing.T) {
	repo := newFakeItineraryRepo()
	embRepo := &fakeEmbeddingRepo{}
	svc := newTestService(repo, embRepo, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{err: errors.New("quota exceeded")})

	_, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	require.NoError(t, err)
	assert.Len(t, repo.stored, 1)
	assert.Empty(t, embRepo.created)
}

func TestGetItineraryByIdFlatEnvelope(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	data, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000, Preferences: []interface{}{"food"},
	})
	require.NoError(t, err)

	record, err := svc.GetItineraryById(context.Background(), data["id"].(string))
	require.NoError(t, err)

	assert.Equal(t, "Delhi", record.Source)
	assert.Equal(t, []string{"food"}, record.Preferences)
	// The plan sits nested, not merged into the root.
	assert.Equal(t, "Quick trip", record.Itinerary["summary"])
}

func TestGetItineraryByIdNotFound(t *testing.T) {
	svc := newTestService(newFakeItineraryRepo(), &fakeEmbeddingRepo{}, &fakePlanner{}, &fakeEmbedder{})

	_, err := svc.GetItineraryById(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrItineraryNotFound)
}

func TestDeleteItinerary(t *testing.T) {
	repo := newFakeItineraryRepo()
	embRepo := &fakeEmbeddingRepo{}
	svc := newTestService(repo, embRepo, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	data, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	require.NoError(t, err)
	id := data["id"].(string)

	require.NoError(t, svc.DeleteItinerary(context.Background(), id))
	assert.Empty(t, repo.stored)
	assert.Equal(t, []string{id}, embRepo.deleted)

	assert.ErrorIs(t, svc.DeleteItinerary(context.Background(), id), utils.ErrItineraryNotFound)
}

func TestGetItineraryView(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	data, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	require.NoError(t, err)

	view, err := svc.GetItineraryView(context.Background(), data["id"].(string), NewDaySelection())
	require.NoError(t, err)

	kinds := sectionKinds(view)
	assert.Contains(t, kinds, response_models.SectionHeader)
	assert.Contains(t, kinds, response_models.SectionSummary)
	assert.Contains(t, kinds, response_models.SectionDailyItinerary)
	assert.Contains(t, kinds, response_models.SectionEmergencyInfo)
	assert.NotContains(t, kinds, response_models.SectionRestaurants)
}

func TestGetSimilarItineraries(t *testing.T) {
	repo := newFakeItineraryRepo()
	embRepo := &fakeEmbeddingRepo{rows: []repositories.SimilarItineraryRow{
		{
			ItineraryEmbedding: db_models.ItineraryEmbedding{ItineraryID: "other-id", Source: "Delhi", Destination: "Agra"},
			Similarity:         0.91,
		},
	}}
	svc := newTestService(repo, embRepo, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	data, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	require.NoError(t, err)

	similar, err := svc.GetSimilarItineraries(context.Background(), data["id"].(string))
	require.NoError(t, err)
	require.Len(t, similar, 1)
	assert.Equal(t, "other-id", similar[0].ID)
	assert.Equal(t, 0.91, similar[0].Similarity)
}

func TestGetSimilarItinerariesEmbeddingFailure(t *testing.T) {
	repo := newFakeItineraryRepo()
	svc := newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{response: twoDayPlan}, &fakeEmbedder{})

	data, err := svc.CreateItinerary(context.Background(), request_models.CreateItineraryRequest{
		Source: "Delhi", Destination: "Jaipur", Days: 2, Budget: 1000,
	})
	require.NoError(t, err)

	// Swap in a failing embedder for the lookup; similarity degrades to empty.
	failing := newTestService(repo, &fakeEmbeddingRepo{}, &fakePlanner{}, &fakeEmbedder{err: errors.New("quota exceeded")})
	similar, err := failing.GetSimilarItineraries(context.Background(), data["id"].(string))
	require.NoError(t, err)
	assert.NotNil(t, similar)
	assert.Empty(t, similar)
}

func TestCoercePreferences(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want []string
	}{
		{"comma string", "food, history ", []string{"food", "history"}},
		{"slice", []interface{}{"food", " history", ""}, []string{"food", "history"}},
		{"nil", nil, []string{}},
		{"number", 7.0, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, coercePreferences(tt.in))
		})
	}
}
