package recordservice_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/juju/clock/testclock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"controlemat/internal/domain"
	apperror "controlemat/internal/errors"
	"controlemat/internal/pkg/logger"
	"controlemat/internal/repository/memrepo"
	"controlemat/internal/service/recordservice"
	"controlemat/internal/service/sequence"
)

var brt = time.FixedZone("BRT", -3*60*60)

// MockBackend é uma implementação mock da porta de armazenamento.
type MockBackend struct {
	mock.Mock
}

func (m *MockBackend) Query(ctx context.Context, kind domain.Kind, r domain.DateRange) ([]domain.Row, error) {
	args := m.Called(ctx, kind, r)
	return args.Get(0).([]domain.Row), args.Error(1)
}

func (m *MockBackend) Get(ctx context.Context, kind domain.Kind, id string) (domain.Row, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(domain.Row), args.Error(1)
}

func (m *MockBackend) Insert(ctx context.Context, kind domain.Kind, row domain.Row) (domain.Row, error) {
	args := m.Called(ctx, kind, row)
	return args.Get(0).(domain.Row), args.Error(1)
}

func (m *MockBackend) InsertMany(ctx context.Context, kind domain.Kind, rows []domain.Row) ([]domain.Row, error) {
	args := m.Called(ctx, kind, rows)
	return args.Get(0).([]domain.Row), args.Error(1)
}

func (m *MockBackend) Update(ctx context.Context, kind domain.Kind, id string, patch map[string]string) (domain.Row, error) {
	args := m.Called(ctx, kind, id, patch)
	return args.Get(0).(domain.Row), args.Error(1)
}

func (m *MockBackend) Delete(ctx context.Context, kind domain.Kind, id string) (domain.Row, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(domain.Row), args.Error(1)
}

func (m *MockBackend) GetSingleton(ctx context.Context, key string) ([]byte, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).([]byte), args.Bool(1), args.Error(2)
}

func (m *MockBackend) PutSingleton(ctx context.Context, key string, value []byte) ([]byte, error) {
	args := m.Called(ctx, key, value)
	return args.Get(0).([]byte), args.Error(1)
}

// MockAllocator é uma implementação mock do Allocator.
type MockAllocator struct {
	mock.Mock
}

func (m *MockAllocator) Allocate(ctx context.Context, kind domain.Kind, ref time.Time) (sequence.DisplayID, error) {
	args := m.Called(ctx, kind, ref)
	return args.Get(0).(sequence.DisplayID), args.Error(1)
}

func (m *MockAllocator) Retire(ctx context.Context, kind domain.Kind, ref time.Time, displayID string) error {
	args := m.Called(ctx, kind, ref, displayID)
	return args.Error(0)
}

// newService monta a fachada sobre o backend em memória e o alocador real.
func newService(now time.Time) (*recordservice.Service, *memrepo.Repository, *testclock.Clock) {
	store := memrepo.NewRepository()
	clk := testclock.NewClock(now)
	log := logger.NewNopLogger()
	svc := recordservice.NewService(store, sequence.NewAllocator(store, log), clk, brt, log)
	return svc, store, clk
}

func releaseInput(material, data string) domain.ReleaseInput {
	return domain.ReleaseInput{
		Material:       material,
		Operador:       "08 - LUIZ",
		Rua:            "SP - 01",
		LocalDeEntrega: "RAMPA",
		Data:           data,
	}
}

func fiberInput(material, qtd string) domain.FiberStockInput {
	return domain.FiberStockInput{Material: material, Lote: "L1", Qtd: qtd, Prateleira: "P1", Rua: "SP - 02", Sala: "A"}
}

// --- Liberações ---

func TestCreateRelease_SequentialIDsWithoutGaps(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 12, 0, 0, 0, brt))
	ctx := context.Background()

	var got []string
	for i := 0; i < 5; i++ {
		r, err := svc.CreateRelease(ctx, releaseInput("CABO", fmt.Sprintf("2026-10-%02d", 10+i)))
		require.NoError(t, err)
		got = append(got, r.DisplayID)
	}

	assert.Equal(t, []string{"10.1", "10.2", "10.3", "10.4", "10.5"}, got)
}

func TestCreateRelease_ScopedByReleaseDate(t *testing.T) {
	// O relógio está em novembro; a liberação datada de outubro entra na série de outubro.
	svc, _, _ := newService(time.Date(2026, time.November, 5, 9, 0, 0, 0, brt))
	ctx := context.Background()

	nov1, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-11-05"))
	require.NoError(t, err)
	oct, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-10-20"))
	require.NoError(t, err)
	nov2, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-11-04"))
	require.NoError(t, err)

	assert.Equal(t, "11.1", nov1.DisplayID)
	assert.Equal(t, "10.1", oct.DisplayID)
	assert.Equal(t, "11.2", nov2.DisplayID)
}

func TestCreateRelease_PersistsSnakeCaseColumnsAndDefaults(t *testing.T) {
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, brt)
	svc, store, _ := newService(now)
	ctx := context.Background()

	created, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-10-18"))
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusPendente, created.Status)
	assert.Equal(t, "RAMPA", created.LocalDeEntrega)
	assert.True(t, now.Equal(created.CreatedAt))

	rows, err := store.Query(ctx, domain.KindRelease, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "RAMPA", rows[0].Fields["local_de_entrega"])
	assert.Equal(t, created.ID, rows[0].ID)
}

func TestCreateRelease_Fail_Validation(t *testing.T) {
	svc, store, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	cases := map[string]domain.ReleaseInput{
		"sem material":  releaseInput("  ", "2026-10-18"),
		"data inválida": releaseInput("CABO", "18/10/2026"),
		"status":        {Material: "CABO", Data: "2026-10-18", Status: "ENTREGUE"},
	}
	for name, in := range cases {
		_, err := svc.CreateRelease(ctx, in)
		assert.IsType(t, &apperror.ValidationError{}, err, name)
	}

	rows, err := store.Query(ctx, domain.KindRelease, domain.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestCreateRelease_Fail_AllocationAbortsCreate(t *testing.T) {
	backend := new(MockBackend)
	log := logger.NewNopLogger()
	svc := recordservice.NewService(backend, sequence.NewAllocator(backend, log), testclock.NewClock(time.Now()), brt, log)

	backend.On("Query", mock.Anything, domain.KindRelease, mock.Anything).
		Return([]domain.Row{}, apperror.NewQueryError("consultar releases", errors.New("network down")))

	_, err := svc.CreateRelease(context.Background(), releaseInput("CABO", "2026-10-18"))

	assert.IsType(t, &apperror.QueryError{}, err)
	backend.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateRelease_Fail_WriteErrorPropagates(t *testing.T) {
	backend := new(MockBackend)
	alloc := new(MockAllocator)
	svc := recordservice.NewService(backend, alloc, testclock.NewClock(time.Now()), brt, logger.NewNopLogger())

	alloc.On("Allocate", mock.Anything, domain.KindRelease, mock.Anything).Return(sequence.DisplayID{Month: 10, Sequence: 3}, nil)
	backend.On("Insert", mock.Anything, domain.KindRelease, mock.MatchedBy(func(row domain.Row) bool {
		return row.DisplayID == "10.3"
	})).Return(domain.Row{}, apperror.NewWriteError("inserir em releases", errors.New("disk full")))

	_, err := svc.CreateRelease(context.Background(), releaseInput("CABO", "2026-10-18"))

	assert.IsType(t, &apperror.WriteError{}, err)
	backend.AssertExpectations(t)
	alloc.AssertExpectations(t)
}

func TestUpdateRelease_NeverChangesIdentifiers(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	created, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-10-18"))
	require.NoError(t, err)

	changed := created
	changed.DisplayID = "1.99"
	changed.Status = domain.StatusFinalizado
	changed.LocalDeEntrega = "KANBAN"
	changed.SM = "SM-123"

	updated, err := svc.UpdateRelease(ctx, changed)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "10.1", updated.DisplayID)
	assert.Equal(t, domain.StatusFinalizado, updated.Status)
	assert.Equal(t, "KANBAN", updated.LocalDeEntrega)
	assert.Equal(t, "SM-123", updated.SM)
}

func TestUpdateRelease_Fail_NotFound(t *testing.T) {
	svc, _, _ := newService(time.Now())

	_, err := svc.UpdateRelease(context.Background(), domain.Release{ID: "missing", Material: "CABO", Data: "2026-10-18"})

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestUpdateRelease_MovedToAnotherMonthRetiresOldID(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	_, err := svc.CreateRelease(ctx, releaseInput("CABO A", "2026-10-01"))
	require.NoError(t, err)
	b, err := svc.CreateRelease(ctx, releaseInput("CABO B", "2026-10-02"))
	require.NoError(t, err)
	require.Equal(t, "10.2", b.DisplayID)

	b.Data = "2026-11-02"
	moved, err := svc.UpdateRelease(ctx, b)
	require.NoError(t, err)
	assert.Equal(t, "10.2", moved.DisplayID)
	assert.Equal(t, "2026-11-02", moved.Data)

	october, err := svc.CreateRelease(ctx, releaseInput("CABO C", "2026-10-03"))
	require.NoError(t, err)
	assert.Equal(t, "10.3", october.DisplayID)

	november, err := svc.CreateRelease(ctx, releaseInput("CABO D", "2026-11-05"))
	require.NoError(t, err)
	assert.Equal(t, "11.1", november.DisplayID)
}

func TestUpdateRelease_SameMonthDoesNotRetire(t *testing.T) {
	backend := new(MockBackend)
	alloc := new(MockAllocator)
	svc := recordservice.NewService(backend, alloc, testclock.NewClock(time.Now()), brt, logger.NewNopLogger())
	id := uuid.NewString()
	stored := domain.Row{ID: id, DisplayID: "10.2", Fields: map[string]string{"material": "CABO", "data": "2026-10-02"}}

	backend.On("Get", mock.Anything, domain.KindRelease, id).Return(stored, nil)
	backend.On("Update", mock.Anything, domain.KindRelease, id, mock.Anything).Return(stored, nil)

	_, err := svc.UpdateRelease(context.Background(), domain.Release{ID: id, Material: "CABO", Data: "2026-10-30"})

	require.NoError(t, err)
	alloc.AssertNotCalled(t, "Retire", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	backend.AssertExpectations(t)
}

func TestUpdateRelease_Fail_RetireErrorWritesNothing(t *testing.T) {
	backend := new(MockBackend)
	alloc := new(MockAllocator)
	svc := recordservice.NewService(backend, alloc, testclock.NewClock(time.Now()), brt, logger.NewNopLogger())
	id := uuid.NewString()
	stored := domain.Row{ID: id, DisplayID: "10.2", Fields: map[string]string{"material": "CABO", "data": "2026-10-02"}}

	backend.On("Get", mock.Anything, domain.KindRelease, id).Return(stored, nil)
	alloc.On("Retire", mock.Anything, domain.KindRelease, mock.Anything, "10.2").
		Return(apperror.NewQueryError("ler piso", errors.New("offline")))

	_, err := svc.UpdateRelease(context.Background(), domain.Release{ID: id, Material: "CABO", Data: "2026-11-02"})

	assert.IsType(t, &apperror.QueryError{}, err)
	backend.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	alloc.AssertExpectations(t)
}

func TestUpdateRelease_Fail_UnknownUUID(t *testing.T) {
	svc, _, _ := newService(time.Now())

	_, err := svc.UpdateRelease(context.Background(), domain.Release{ID: uuid.NewString(), Material: "CABO", Data: "2026-10-18"})

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestMalformedIDsAreNotFoundWithoutTouchingStorage(t *testing.T) {
	backend := new(MockBackend)
	svc := recordservice.NewService(backend, new(MockAllocator), testclock.NewClock(time.Now()), brt, logger.NewNopLogger())
	ctx := context.Background()

	_, err := svc.UpdateRelease(ctx, domain.Release{ID: "abc", Material: "CABO", Data: "2026-10-18"})
	assert.IsType(t, &apperror.NotFoundError{}, err)

	assert.IsType(t, &apperror.NotFoundError{}, svc.DeleteRelease(ctx, "abc"))

	_, err = svc.UpdateFiberStockItem(ctx, domain.FiberStockItem{ID: "abc", Material: "FIBRA"})
	assert.IsType(t, &apperror.NotFoundError{}, err)

	assert.IsType(t, &apperror.NotFoundError{}, svc.DeleteFiberStockItem(ctx, "abc"))

	backend.AssertExpectations(t)
	assert.Empty(t, backend.Calls)
}

func TestUpdateRelease_Fail_MissingID(t *testing.T) {
	svc, _, _ := newService(time.Now())

	_, err := svc.UpdateRelease(context.Background(), domain.Release{Material: "CABO", Data: "2026-10-18"})

	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestDeleteRelease_DoesNotReuseDisplayID(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	var last domain.Release
	for i := 0; i < 3; i++ {
		r, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-10-18"))
		require.NoError(t, err)
		last = r
	}
	require.Equal(t, "10.3", last.DisplayID)

	require.NoError(t, svc.DeleteRelease(ctx, last.ID))

	next, err := svc.CreateRelease(ctx, releaseInput("CABO", "2026-10-19"))
	require.NoError(t, err)
	assert.Equal(t, "10.4", next.DisplayID)
}

func TestDeleteRelease_Fail_NotFound(t *testing.T) {
	svc, _, _ := newService(time.Now())

	err := svc.DeleteRelease(context.Background(), "missing")

	assert.IsType(t, &apperror.NotFoundError{}, err)
}

func TestListReleases_NewestFirst(t *testing.T) {
	svc, _, clk := newService(time.Date(2026, time.October, 18, 8, 0, 0, 0, brt))
	ctx := context.Background()

	first, err := svc.CreateRelease(ctx, releaseInput("PRIMEIRO", "2026-10-18"))
	require.NoError(t, err)
	clk.Advance(time.Minute)
	second, err := svc.CreateRelease(ctx, releaseInput("SEGUNDO", "2026-10-01"))
	require.NoError(t, err)

	list, err := svc.ListReleases(ctx)
	require.NoError(t, err)

	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListReleases_EmptyIsNotNil(t *testing.T) {
	svc, _, _ := newService(time.Now())

	list, err := svc.ListReleases(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestSearchReleases_CaseInsensitiveOverDisplayedFields(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	_, err := svc.CreateRelease(ctx, releaseInput("Cabo Drop", "2026-10-18"))
	require.NoError(t, err)
	in := releaseInput("CONECTOR", "2026-10-18")
	in.LocalDeEntrega = "KANBAN"
	_, err = svc.CreateRelease(ctx, in)
	require.NoError(t, err)

	found, err := svc.SearchReleases(ctx, "cabo")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Cabo Drop", found[0].Material)

	found, err = svc.SearchReleases(ctx, "kanban")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "CONECTOR", found[0].Material)

	found, err = svc.SearchReleases(ctx, "10.2")
	require.NoError(t, err)
	assert.Len(t, found, 1)

	all, err := svc.SearchReleases(ctx, "  ")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// --- Estoque de fibras ---

func TestCreateFiberStockItem_ScopedByCreationInConfiguredZone(t *testing.T) {
	// 02:30 UTC de 1º de novembro ainda é 31 de outubro no fuso configurado.
	svc, _, clk := newService(time.Date(2026, time.November, 1, 2, 30, 0, 0, time.UTC))
	ctx := context.Background()

	oct, err := svc.CreateFiberStockItem(ctx, fiberInput("FIBRA 12F", "10"))
	require.NoError(t, err)
	clk.Advance(2 * time.Hour)
	nov, err := svc.CreateFiberStockItem(ctx, fiberInput("FIBRA 24F", "5"))
	require.NoError(t, err)

	assert.Equal(t, "10.1", oct.DisplayID)
	assert.Equal(t, "11.1", nov.DisplayID)
	assert.Equal(t, domain.FiberEmEstoque, oct.Status)
}

func TestCreateFiberStockItem_NormalizesQtd(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	item, err := svc.CreateFiberStockItem(ctx, fiberInput("FIBRA", "10,5"))
	require.NoError(t, err)
	assert.Equal(t, "10.5", item.Qtd)

	item, err = svc.CreateFiberStockItem(ctx, fiberInput("FIBRA", ""))
	require.NoError(t, err)
	assert.Equal(t, "", item.Qtd)

	_, err = svc.CreateFiberStockItem(ctx, fiberInput("FIBRA", "dez"))
	assert.IsType(t, &apperror.ValidationError{}, err)
}

func TestImportFiberStockItems_ContiguousBlockAfterCurrentMax(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := svc.CreateFiberStockItem(ctx, fiberInput("EXISTENTE", "1"))
		require.NoError(t, err)
	}

	inputs := []domain.FiberStockInput{
		fiberInput("A", "1"), fiberInput("B", "2"), fiberInput("C", "3"), fiberInput("D", "4"), fiberInput("E", "5"),
	}
	items, err := svc.ImportFiberStockItems(ctx, inputs)
	require.NoError(t, err)

	require.Len(t, items, 5)
	for i, want := range []string{"10.4", "10.5", "10.6", "10.7", "10.8"} {
		assert.Equal(t, want, items[i].DisplayID)
		assert.Equal(t, inputs[i].Material, items[i].Material)
	}
}

func TestImportFiberStockItems_SkipsHeaderRow(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))

	items, err := svc.ImportFiberStockItems(context.Background(), []domain.FiberStockInput{
		{Material: "MATERIAL", Lote: "LOTE", Qtd: "QTD"},
		fiberInput("FIBRA", "2"),
	})

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "10.1", items[0].DisplayID)
}

func TestImportFiberStockItems_EmptyInputAllocatesNothing(t *testing.T) {
	backend := new(MockBackend)
	alloc := new(MockAllocator)
	svc := recordservice.NewService(backend, alloc, testclock.NewClock(time.Now()), brt, logger.NewNopLogger())

	items, err := svc.ImportFiberStockItems(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
	alloc.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportFiberStockItems_Fail_InvalidRowWritesNothing(t *testing.T) {
	backend := new(MockBackend)
	alloc := new(MockAllocator)
	svc := recordservice.NewService(backend, alloc, testclock.NewClock(time.Now()), brt, logger.NewNopLogger())

	_, err := svc.ImportFiberStockItems(context.Background(), []domain.FiberStockInput{
		fiberInput("A", "1"),
		fiberInput("B", "muitos"),
	})

	require.IsType(t, &apperror.ValidationError{}, err)
	assert.Contains(t, err.Error(), "linha 2")
	alloc.AssertNotCalled(t, "Allocate", mock.Anything, mock.Anything, mock.Anything)
	backend.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestImportFiberStockItems_Fail_AllocationAbortsImport(t *testing.T) {
	backend := new(MockBackend)
	alloc := new(MockAllocator)
	svc := recordservice.NewService(backend, alloc, testclock.NewClock(time.Now()), brt, logger.NewNopLogger())

	alloc.On("Allocate", mock.Anything, domain.KindFiberStock, mock.Anything).
		Return(sequence.DisplayID{}, apperror.NewQueryError("consultar fiber_stock", errors.New("timeout")))

	_, err := svc.ImportFiberStockItems(context.Background(), []domain.FiberStockInput{fiberInput("A", "1")})

	assert.IsType(t, &apperror.QueryError{}, err)
	backend.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateFiberStockItem_NeverChangesIdentifiers(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	created, err := svc.CreateFiberStockItem(ctx, fiberInput("FIBRA", "3"))
	require.NoError(t, err)

	changed := created
	changed.DisplayID = "12.40"
	changed.Status = domain.FiberPago
	changed.Qtd = "2,25"

	updated, err := svc.UpdateFiberStockItem(ctx, changed)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "10.1", updated.DisplayID)
	assert.Equal(t, domain.FiberPago, updated.Status)
	assert.Equal(t, "2.25", updated.Qtd)
}

func TestDeleteFiberStockItem_DoesNotReuseDisplayID(t *testing.T) {
	svc, _, _ := newService(time.Date(2026, time.October, 18, 0, 0, 0, 0, brt))
	ctx := context.Background()

	first, err := svc.CreateFiberStockItem(ctx, fiberInput("FIBRA", "1"))
	require.NoError(t, err)
	require.NoError(t, svc.DeleteFiberStockItem(ctx, first.ID))

	next, err := svc.CreateFiberStockItem(ctx, fiberInput("FIBRA", "1"))
	require.NoError(t, err)
	assert.Equal(t, "10.2", next.DisplayID)

	err = svc.DeleteFiberStockItem(ctx, first.ID)
	assert.IsType(t, &apperror.NotFoundError{}, err)
}

// --- Listas administrativas ---

func TestGetAdminLists_PersistsDefaultsOnFirstCall(t *testing.T) {
	svc, store, _ := newService(time.Now())
	ctx := context.Background()

	first, err := svc.GetAdminLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultAdminLists(), first)

	_, found, err := store.GetSingleton(ctx, domain.AdminListsKey)
	require.NoError(t, err)
	assert.True(t, found)

	second, err := svc.GetAdminLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestGetAdminLists_ReturnsStoredValueWithoutDefaults(t *testing.T) {
	backend := new(MockBackend)
	svc := recordservice.NewService(backend, new(MockAllocator), nil, nil, logger.NewNopLogger())

	backend.On("GetSingleton", mock.Anything, domain.AdminListsKey).
		Return([]byte(`{"operadores":["ANA"],"ruas":["SP - 09"]}`), true, nil)

	lists, err := svc.GetAdminLists(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"ANA"}, lists.Operadores)
	assert.Equal(t, []string{"SP - 09"}, lists.Ruas)
	assert.Equal(t, []string{}, lists.LocaisDeEntrega)
	backend.AssertNotCalled(t, "PutSingleton", mock.Anything, mock.Anything, mock.Anything)
}

func TestSaveAdminLists_ReplacesWholeRecord(t *testing.T) {
	svc, _, _ := newService(time.Now())
	ctx := context.Background()

	_, err := svc.GetAdminLists(ctx)
	require.NoError(t, err)

	saved, err := svc.SaveAdminLists(ctx, domain.AdminLists{Ruas: []string{" SP - 03 ", "SP - 01", "SP - 03", ""}})
	require.NoError(t, err)
	assert.Equal(t, []string{"SP - 01", "SP - 03"}, saved.Ruas)

	got, err := svc.GetAdminLists(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{}, got.Operadores)
	assert.Equal(t, []string{}, got.LocaisDeEntrega)
	assert.Equal(t, []string{"SP - 01", "SP - 03"}, got.Ruas)
}

func TestGetAdminLists_Fail_CorruptValue(t *testing.T) {
	backend := new(MockBackend)
	svc := recordservice.NewService(backend, new(MockAllocator), nil, nil, logger.NewNopLogger())

	backend.On("GetSingleton", mock.Anything, domain.AdminListsKey).Return([]byte(`{`), true, nil)

	_, err := svc.GetAdminLists(context.Background())

	assert.IsType(t, &apperror.InternalError{}, err)
}
