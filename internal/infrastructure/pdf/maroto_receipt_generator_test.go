package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/autotienda-api/internal/domain/entity"
)

func TestFormatMoney(t *testing.T) {
	cases := map[string]string{
		"0":        "0",
		"950":      "950",
		"25000":    "25.000",
		"1000000":  "1.000.000",
		"-1000000": "-1.000.000",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatMoney(in), in)
	}
}

func TestGenerateReceiptPDF(t *testing.T) {
	order := &entity.Order{
		ID:     12,
		UserID: 2,
		Items: []entity.OrderItem{
			{ProductID: 1, Quantity: 2, Price: decimal.NewFromInt(98500000), Name: "Toyota Corolla 2024"},
		},
		Total:     decimal.NewFromInt(197000000),
		Status:    entity.OrderStatusPendiente,
		CreatedAt: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	}
	gen := NewMarotoReceiptGenerator("")

	withCustomer, err := gen.GenerateReceiptPDF(context.Background(), order,
		&entity.User{Name: "Carlos Pérez", Username: "cliente", Email: "cliente@autotienda.com"})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(withCustomer, []byte("%PDF")))

	// La cuenta pudo borrarse después de comprar.
	orphan, err := gen.GenerateReceiptPDF(context.Background(), order, nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(orphan, []byte("%PDF")))
}
