package kernel_test

import (
	"testing"

	"commerce/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("add_and_sub", func(t *testing.T) {
		a := kernel.NewMoneyFromInt(1200)
		b := kernel.NewMoneyFromInt(60)

		assert.True(t, a.Add(b).IsEqual(kernel.NewMoneyFromInt(1260)))
		assert.True(t, a.Sub(b).IsEqual(kernel.NewMoneyFromInt(1140)))
	})

	t.Run("mul_int", func(t *testing.T) {
		price := kernel.NewMoneyFromInt(600)

		assert.True(t, price.MulInt(2).IsEqual(kernel.NewMoneyFromInt(1200)))
	})

	t.Run("sub_can_go_negative", func(t *testing.T) {
		result := kernel.NewMoneyFromInt(10).Sub(kernel.NewMoneyFromInt(20))

		assert.True(t, result.IsNegative())
	})
}

func TestMoney_MulRounded(t *testing.T) {
	rate := decimal.RequireFromString("0.05")

	cases := []struct {
		name     string
		amount   int64
		expected int64
	}{
		{name: "exact", amount: 1200, expected: 60},
		{name: "rounds_half_up", amount: 1210, expected: 61},  // 60.5 -> 61
		{name: "rounds_down_below_half", amount: 1209, expected: 60}, // 60.45 -> 60
		{name: "zero", amount: 0, expected: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := kernel.NewMoneyFromInt(tc.amount).MulRounded(rate)

			assert.True(t, got.IsEqual(kernel.NewMoneyFromInt(tc.expected)),
				"got %s, expected %d", got, tc.expected)
		})
	}
}

func TestMoney_Determinism(t *testing.T) {
	t.Run("same_input_same_output", func(t *testing.T) {
		rate := decimal.RequireFromString("0.05")
		subtotal := kernel.NewMoneyFromInt(600).MulInt(2)

		first := subtotal.MulRounded(rate)
		second := subtotal.MulRounded(rate)

		assert.True(t, first.IsEqual(second))
		assert.Equal(t, first.String(), second.String())
	})
}

func TestMoneyFromString(t *testing.T) {
	t.Run("parses_stored_amount", func(t *testing.T) {
		m, err := kernel.MoneyFromString("1260")

		require.NoError(t, err)
		assert.True(t, m.IsEqual(kernel.NewMoneyFromInt(1260)))
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		_, err := kernel.MoneyFromString("abc")

		require.Error(t, err)
	})
}

func TestMoney_Comparisons(t *testing.T) {
	threshold := kernel.NewMoneyFromInt(1000)

	assert.True(t, kernel.NewMoneyFromInt(1200).GreaterOrEqual(threshold))
	assert.True(t, kernel.NewMoneyFromInt(1000).GreaterOrEqual(threshold))
	assert.False(t, kernel.NewMoneyFromInt(999).GreaterOrEqual(threshold))
	assert.True(t, kernel.ZeroMoney().IsZero())
}
