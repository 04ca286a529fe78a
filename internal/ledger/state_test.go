package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/mps7/internal/mps7"
)

func entry(kind mps7.Kind, user uint64, amount string) mps7.LogEntry {
	e := mps7.LogEntry{Kind: kind, UserID: user}
	if amount != "" {
		e.Amount = dec(amount)
		e.HasAmount = true
	}
	return e
}

func TestFold(t *testing.T) {
	s := Fold([]mps7.LogEntry{
		entry(mps7.KindCredit, 1, "10.00"),
		entry(mps7.KindDebit, 1, "2.50"),
		entry(mps7.KindStartAutopay, 2, ""),
		entry(mps7.KindDebit, 2, "1.25"),
	})

	assert.Equal(t, "3.75", s.Totals.Debit.String())
	assert.Equal(t, "10.00", s.Totals.Credit.String())
	assert.Equal(t, AutopayCounts{Start: 1}, s.Autopay)

	u, ok := s.User(2)
	require.True(t, ok)
	assert.Equal(t, "-1.25", u.Balance().String())
}

func TestFold_Empty(t *testing.T) {
	s := Fold(nil)
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.Users())
}

func TestApply_UsersAreCopies(t *testing.T) {
	s := NewState()
	s.Apply(entry(mps7.KindCredit, 1, "1.00"))

	users := s.Users()
	users[0].CreditSum = dec("99.00")

	u, _ := s.User(1)
	assert.Equal(t, "1.00", u.CreditSum.String())
}

func TestApply_AccumulatesPerUser(t *testing.T) {
	s := NewState()
	for i := 0; i < 3; i++ {
		s.Apply(entry(mps7.KindDebit, 5, "0.10"))
		s.Apply(entry(mps7.KindCredit, 5, "0.20"))
	}
	u, ok := s.User(5)
	require.True(t, ok)
	assert.Equal(t, "0.30", u.DebitSum.String())
	assert.Equal(t, "0.60", u.CreditSum.String())
	assert.Equal(t, "0.30", u.Balance().String())
	assert.Equal(t, 1, s.Len())
}

func TestApply_UnknownKindPanics(t *testing.T) {
	s := NewState()
	assert.Panics(t, func() { s.Apply(mps7.LogEntry{Kind: mps7.Kind(9)}) })
}
