package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autotienda-api/internal/domain"
	"github.com/jhoicas/autotienda-api/internal/domain/entity"
	"github.com/jhoicas/autotienda-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios
// ──────────────────────────────────────────────────────────────────────────────

func TestProductRepo_IDsNoSeReutilizan(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())

	a := &entity.Product{Name: "A", Price: decimal.NewFromInt(1)}
	b := &entity.Product{Name: "B", Price: decimal.NewFromInt(1)}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	removed, err := repo.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	c := &entity.Product{Name: "C", Price: decimal.NewFromInt(1)}
	require.NoError(t, repo.Create(ctx, c))
	assert.Equal(t, int64(3), c.ID)
}

func TestProductRepo_CopiaDefensiva(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())
	p := &entity.Product{Name: "Sedan", Images: []string{"a.jpg"}, Specs: map[string]string{"motor": "1.6"}}
	require.NoError(t, repo.Create(ctx, p))

	p.Images[0] = "mutada.jpg"
	p.Specs["motor"] = "V8"

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.jpg", got.Images[0])
	assert.Equal(t, "1.6", got.Specs["motor"])
}

func TestProductRepo_FiltroCategoriaSinAcentos(t *testing.T) {
	ctx := context.Background()
	repo := NewProductRepository(NewStore())
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "X", Category: "Camión"}))
	require.NoError(t, repo.Create(ctx, &entity.Product{Name: "Y", Category: "suv"}))

	list, err := repo.List(ctx, repository.ProductFilter{Category: "camion"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "X", list[0].Name)
}

func TestProductRepo_UpdateInexistente(t *testing.T) {
	repo := NewProductRepository(NewStore())
	err := repo.Update(context.Background(), &entity.Product{ID: 99})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserRepo_UnicidadUsernameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(NewStore())
	require.NoError(t, repo.Create(ctx, &entity.User{Username: "ana", Email: "ana@x.com"}))

	assert.ErrorIs(t, repo.Create(ctx, &entity.User{Username: "ANA", Email: "otra@x.com"}), domain.ErrUsernameTaken)
	assert.ErrorIs(t, repo.Create(ctx, &entity.User{Username: "otra", Email: "Ana@X.com"}), domain.ErrEmailAlreadyExists)

	u, err := repo.GetByUsername(ctx, "Ana")
	require.NoError(t, err)
	require.NotNil(t, u)
	assert.Equal(t, int64(1), u.ID)

	missing, err := repo.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFAQRepo_OrdenEstable(t *testing.T) {
	ctx := context.Background()
	repo := NewFAQRepository(NewStore())
	for _, f := range []entity.FAQ{
		{Question: "q1", Order: 2},
		{Question: "q2", Order: 1},
		{Question: "q3", Order: 2},
		{Question: "q4", Order: 1},
	} {
		f := f
		require.NoError(t, repo.Create(ctx, &f))
	}

	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	got := make([]string, 0, len(list))
	for _, f := range list {
		got = append(got, f.Question)
	}
	assert.Equal(t, []string{"q2", "q4", "q1", "q3"}, got)
}

func TestSupportRepo_Filtros(t *testing.T) {
	ctx := context.Background()
	repo := NewSupportRepository(NewStore())
	require.NoError(t, repo.Create(ctx, &entity.SupportTicket{UserID: 1, Status: entity.TicketStatusAbierto, Category: "ventas"}))
	require.NoError(t, repo.Create(ctx, &entity.SupportTicket{UserID: 2, Status: entity.TicketStatusCerrado, Category: "ventas"}))
	require.NoError(t, repo.Create(ctx, &entity.SupportTicket{UserID: 1, Status: entity.TicketStatusCerrado, Category: "taller"}))

	list, err := repo.List(ctx, repository.SupportFilter{UserID: 1})
	require.NoError(t, err)
	assert.Len(t, list, 2)

	list, err = repo.List(ctx, repository.SupportFilter{Status: entity.TicketStatusCerrado, Category: "VENTAS"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, int64(2), list[0].UserID)
}

// ──────────────────────────────────────────────────────────────────────────────
// TxRunner
// ──────────────────────────────────────────────────────────────────────────────

func TestTxRunner_RollbackRestauraEstado(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repos := store.Repositories()
	p := &entity.Product{Name: "Pickup", Stock: 3}
	require.NoError(t, repos.Products.Create(ctx, p))

	boom := errors.New("boom")
	err := NewTxRunner(store).RunOrder(ctx, func(pr repository.ProductRepository, or repository.OrderRepository) error {
		require.NoError(t, pr.UpdateStock(ctx, p.ID, 0))
		require.NoError(t, or.Create(ctx, &entity.Order{UserID: 1}))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	got, err := repos.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Stock)
	n, err := repos.Orders.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)

	// La secuencia también vuelve atrás: el próximo pedido real recibe el ID 1.
	o := &entity.Order{UserID: 1}
	require.NoError(t, repos.Orders.Create(ctx, o))
	assert.Equal(t, int64(1), o.ID)
}

func TestTxRunner_CommitAplicaCambios(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	repos := store.Repositories()
	p := &entity.Product{Name: "Sedan", Stock: 5}
	require.NoError(t, repos.Products.Create(ctx, p))

	err := NewTxRunner(store).RunOrder(ctx, func(pr repository.ProductRepository, or repository.OrderRepository) error {
		if err := pr.UpdateStock(ctx, p.ID, 4); err != nil {
			return err
		}
		return or.Create(ctx, &entity.Order{UserID: 7})
	})
	require.NoError(t, err)

	got, err := repos.Products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Stock)
	list, err := repos.Orders.List(ctx, repository.OrderFilter{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
