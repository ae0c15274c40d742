package supplier

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"aromapos/internal/core/id"
	"aromapos/internal/core/types"
)

func TestTransaction_Validate(t *testing.T) {
	ctx := context.Background()
	supplierID := id.New()

	valid := Transaction{
		SupplierID: supplierID,
		Kind:       KindDebit,
		Amount:     types.MustMoney("500"),
	}
	assert.NoError(t, valid.Validate(ctx))

	t.Run("missing supplier", func(t *testing.T) {
		tr := valid
		tr.SupplierID = id.Nil()
		assert.Error(t, tr.Validate(ctx))
	})

	t.Run("zero amount", func(t *testing.T) {
		tr := valid
		tr.Amount = types.MustMoney("0")
		assert.Error(t, tr.Validate(ctx))
	})

	t.Run("unknown kind", func(t *testing.T) {
		tr := valid
		tr.Kind = TransactionKind("refund")
		assert.Error(t, tr.Validate(ctx))
	})
}

func TestTransaction_SignedAmount(t *testing.T) {
	credit := Transaction{Kind: KindCredit, Amount: types.MustMoney("300")}
	debit := Transaction{Kind: KindDebit, Amount: types.MustMoney("120")}

	assert.True(t, types.MustMoney("300").Equal(credit.SignedAmount()))
	assert.True(t, types.MustMoney("-120").Equal(debit.SignedAmount()))
}

func TestSupplier_Validate(t *testing.T) {
	ctx := context.Background()

	s := NewSupplier("S001", "Attar House")
	assert.NoError(t, s.Validate(ctx))

	s.Email = "not-an-email"
	assert.Error(t, s.Validate(ctx))

	s.Email = "orders@attarhouse.example"
	assert.NoError(t, s.Validate(ctx))
}
