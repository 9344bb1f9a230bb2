package trains

import (
	"context"
	"testing"

	"github.com/Domenick1991/railbooking/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTrainRepository struct {
	mock.Mock
}

func (m *MockTrainRepository) Create(ctx context.Context, train *domain.Train) error {
	args := m.Called(ctx, train)
	return args.Error(0)
}

func (m *MockTrainRepository) GetByID(ctx context.Context, id int64) (*domain.Train, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Train), args.Error(1)
}

func (m *MockTrainRepository) List(ctx context.Context) ([]domain.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Train), args.Error(1)
}

type MockTrainCache struct {
	mock.Mock
}

func (m *MockTrainCache) GetTrains(ctx context.Context) ([]domain.Train, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Train), args.Error(1)
}

func (m *MockTrainCache) SetTrains(ctx context.Context, trains []domain.Train) error {
	args := m.Called(ctx, trains)
	return args.Error(0)
}

func (m *MockTrainCache) InvalidateTrains(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func testTrain(booked ...domain.Ticket) *domain.Train {
	return &domain.Train{
		ID:            3,
		Route:         []domain.Station{"A", "B", "C", "D"},
		NoOfSeats:     10,
		DepartureTime: domain.TimeOfDay{Hour: 10, Minute: 30},
		BookedTickets: booked,
	}
}

func pax(idsAndAges ...int) []domain.Passenger {
	out := make([]domain.Passenger, 0, len(idsAndAges))
	for i, age := range idsAndAges {
		out = append(out, domain.Passenger{ID: int64(i + 1), Age: age})
	}
	return out
}

func TestTrainService_AddTrain(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	mockCache := &MockTrainCache{}
	service := NewTrainService(mockRepo, mockCache)

	ctx := context.Background()
	mockRepo.On("Create", ctx, mock.AnythingOfType("*domain.Train")).Return(nil).Once()
	mockCache.On("InvalidateTrains", ctx).Return(nil).Once()

	train, err := service.AddTrain(ctx, AddTrainInput{
		Stations:      []string{"A", "B", "C"},
		DepartureTime: "09:45",
		NoOfSeats:     20,
	})

	assert.NoError(t, err)
	assert.Equal(t, []domain.Station{"A", "B", "C"}, train.Route)
	assert.Equal(t, domain.TimeOfDay{Hour: 9, Minute: 45}, train.DepartureTime)
	assert.Equal(t, 20, train.NoOfSeats)

	mockRepo.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestTrainService_AddTrain_Validation(t *testing.T) {
	service := NewTrainService(&MockTrainRepository{}, nil)
	ctx := context.Background()

	testCases := []struct {
		name  string
		input AddTrainInput
	}{
		{name: "single station", input: AddTrainInput{Stations: []string{"A"}, DepartureTime: "09:00", NoOfSeats: 5}},
		{name: "zero seats", input: AddTrainInput{Stations: []string{"A", "B"}, DepartureTime: "09:00"}},
		{name: "bad time", input: AddTrainInput{Stations: []string{"A", "B"}, DepartureTime: "25:99", NoOfSeats: 5}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			train, err := service.AddTrain(ctx, tc.input)
			assert.Error(t, err)
			assert.Nil(t, train)
		})
	}
}

func TestTrainService_List_CacheHit(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	mockCache := &MockTrainCache{}
	service := NewTrainService(mockRepo, mockCache)

	ctx := context.Background()
	cached := []domain.Train{*testTrain()}
	mockCache.On("GetTrains", ctx).Return(cached, nil).Once()

	trains, err := service.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, cached, trains)
	mockRepo.AssertNotCalled(t, "List")
}

func TestTrainService_List_CacheMiss(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	mockCache := &MockTrainCache{}
	service := NewTrainService(mockRepo, mockCache)

	ctx := context.Background()
	fromDB := []domain.Train{*testTrain()}
	mockCache.On("GetTrains", ctx).Return(nil, nil).Once()
	mockRepo.On("List", ctx).Return(fromDB, nil).Once()
	mockCache.On("SetTrains", ctx, fromDB).Return(nil).Once()

	trains, err := service.List(ctx)
	assert.NoError(t, err)
	assert.Equal(t, fromDB, trains)
	mockCache.AssertExpectations(t)
}

func TestTrainService_AvailableSeats_SameStationIsZero(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)

	available, err := service.AvailableSeats(context.Background(), 3, "B", "B")
	assert.NoError(t, err)
	assert.Equal(t, int64(0), available)
	mockRepo.AssertNotCalled(t, "GetByID")
}

func TestTrainService_AvailableSeats(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)

	ctx := context.Background()
	train := testTrain(domain.Ticket{
		FromStation: "A",
		ToStation:   "C",
		Passengers:  pax(30, 45),
	})
	mockRepo.On("GetByID", ctx, int64(3)).Return(train, nil)

	available, err := service.AvailableSeats(ctx, 3, "A", "B")
	assert.NoError(t, err)
	assert.Equal(t, int64(8), available)

	// the booked A->C ticket never intersects the B..D scan
	available, err = service.AvailableSeats(ctx, 3, "B", "D")
	assert.NoError(t, err)
	assert.Equal(t, int64(30), available)

	_, err = service.AvailableSeats(ctx, 3, "X", "B")
	assert.ErrorIs(t, err, domain.ErrInvalidRoute)
}

func TestTrainService_AvailableSeats_TrainNotFound(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrTrainNotFound).Once()

	_, err := service.AvailableSeats(ctx, 99, "A", "B")
	assert.ErrorIs(t, err, domain.ErrTrainNotFound)
}

func TestTrainService_BoardingCount(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)

	ctx := context.Background()
	train := testTrain(
		domain.Ticket{FromStation: "A", ToStation: "C", Passengers: pax(30)},
		domain.Ticket{FromStation: "B", ToStation: "D", Passengers: pax(45)},
	)
	mockRepo.On("GetByID", ctx, int64(3)).Return(train, nil)

	// only the B->D ticket starts at B, the A->C one passes through
	count, err := service.BoardingCount(ctx, 3, "B")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = service.BoardingCount(ctx, 3, "A")
	assert.NoError(t, err)
	assert.Equal(t, 1, count)

	count, err = service.BoardingCount(ctx, 3, "D")
	assert.NoError(t, err)
	assert.Equal(t, 0, count)

	_, err = service.BoardingCount(ctx, 3, "X")
	assert.ErrorIs(t, err, domain.ErrStationNotOnRoute)
}

func TestTrainService_OldestTraveler(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)
	ctx := context.Background()

	mockRepo.On("GetByID", ctx, int64(1)).Return(testTrain(), nil).Once()
	age, err := service.OldestTraveler(ctx, 1)
	assert.NoError(t, err)
	assert.Equal(t, 0, age)

	train := testTrain(
		domain.Ticket{FromStation: "A", ToStation: "C", Passengers: pax(30, 45)},
		domain.Ticket{FromStation: "B", ToStation: "D", Passengers: pax(22)},
	)
	mockRepo.On("GetByID", ctx, int64(2)).Return(train, nil).Once()
	age, err = service.OldestTraveler(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, 45, age)

	mockRepo.On("GetByID", ctx, int64(99)).Return(nil, domain.ErrTrainNotFound).Once()
	_, err = service.OldestTraveler(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrTrainNotFound)
}

func TestTrainService_TrainsInWindow(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)

	ctx := context.Background()
	// departs 10:30, so Y (route index 1) is reached at 11:30
	mockRepo.On("List", ctx).Return([]domain.Train{
		{ID: 3, Route: []domain.Station{"X", "Y", "Z"}, DepartureTime: domain.TimeOfDay{Hour: 10, Minute: 30}},
	}, nil)

	// inclusive lower bound
	ids, err := service.TrainsInWindow(ctx, "Y", domain.TimeOfDay{Hour: 11, Minute: 30}, domain.TimeOfDay{Hour: 12})
	assert.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)

	// inclusive upper bound
	ids, err = service.TrainsInWindow(ctx, "Y", domain.TimeOfDay{Hour: 10}, domain.TimeOfDay{Hour: 11, Minute: 30})
	assert.NoError(t, err)
	assert.Equal(t, []int64{3}, ids)

	// one minute past the arrival
	ids, err = service.TrainsInWindow(ctx, "Y", domain.TimeOfDay{Hour: 11, Minute: 31}, domain.TimeOfDay{Hour: 12})
	assert.NoError(t, err)
	assert.Empty(t, ids)
}

func TestTrainService_TrainsInWindow_RevisitNotDeduplicated(t *testing.T) {
	mockRepo := &MockTrainRepository{}
	service := NewTrainService(mockRepo, nil)

	ctx := context.Background()
	mockRepo.On("List", ctx).Return([]domain.Train{
		{ID: 5, Route: []domain.Station{"Y", "X", "Y"}, DepartureTime: domain.TimeOfDay{Hour: 10, Minute: 30}},
	}, nil)

	// Y is hit at 10:30 and again at 12:30
	ids, err := service.TrainsInWindow(ctx, "Y", domain.TimeOfDay{Hour: 10}, domain.TimeOfDay{Hour: 13})
	assert.NoError(t, err)
	assert.Equal(t, []int64{5, 5}, ids)
}
