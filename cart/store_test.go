package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 2))
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 3))

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
	assert.True(t, s.Total().Equal(price("50.00")), "got %s", s.Total())
}

func TestAddItem_RejectsInvalidQuantity(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 1))

	for _, qty := range []int{0, -1, -10} {
		err := s.AddItem("p2", "Lentils", price("4.00"), qty)
		require.ErrorIs(t, err, ErrInvalidQuantity)
		assert.True(t, IsInvalidOperation(err))
	}

	// Rejected calls leave the cart untouched.
	require.Equal(t, 1, s.Len())
	assert.True(t, s.Total().Equal(price("10.00")))
}

func TestUpdateQuantity(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 2))

	require.NoError(t, s.UpdateQuantity("p1", 7))
	assert.Equal(t, 7, s.Items()[0].Quantity)

	err := s.UpdateQuantity("p1", 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)
	assert.Equal(t, 7, s.Items()[0].Quantity)

	err = s.UpdateQuantity("missing", 3)
	require.ErrorIs(t, err, ErrUnknownProduct)
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 1))

	s.RemoveItem("missing")
	require.Equal(t, 1, s.Len())

	s.RemoveItem("p1")
	require.Equal(t, 0, s.Len())
	s.RemoveItem("p1") // idempotent
	require.Equal(t, 0, s.Len())
}

func TestClear(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 2))
	require.NoError(t, s.AddItem("p2", "Lentils", price("5.50"), 1))

	s.Clear()
	assert.Equal(t, 0, s.Len())
	assert.True(t, s.Total().IsZero())
}

func TestItems_ReturnsSnapshot(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 2))

	snap := s.Items()
	require.NoError(t, s.UpdateQuantity("p1", 9))
	assert.Equal(t, 2, snap[0].Quantity)
}

func TestTotal_RecomputedFromItemState(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.AddItem("p1", "Rice 5kg", price("10.00"), 2))
	require.NoError(t, s.AddItem("p2", "Lentils", price("5.50"), 1))
	require.True(t, s.Total().Equal(price("25.50")))

	require.NoError(t, s.UpdateQuantity("p2", 3))
	require.True(t, s.Total().Equal(price("36.50")))

	s.RemoveItem("p1")
	require.True(t, s.Total().Equal(price("16.50")))
}

func TestLoad_PreservesOrder(t *testing.T) {
	s := Load([]Item{
		{ProductID: "b", ProductName: "Beans", UnitPrice: price("3.25"), Quantity: 4},
		{ProductID: "a", ProductName: "Atta", UnitPrice: price("8.00"), Quantity: 1},
	})
	items := s.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "b", items[0].ProductID)
	assert.Equal(t, "a", items[1].ProductID)
	assert.True(t, s.Total().Equal(price("21.00")))
}
