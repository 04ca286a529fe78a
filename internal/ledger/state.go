package ledger

import (
	"fmt"

	"github.com/cleared-dev/mps7/internal/currency"
	"github.com/cleared-dev/mps7/internal/mps7"
)

// User holds the running sums for one user id.
type User struct {
	ID        uint64
	CreditSum currency.Currency
	DebitSum  currency.Currency
}

// Balance is credits minus debits.
func (u *User) Balance() currency.Currency {
	return u.CreditSum.Sub(u.DebitSum)
}

// AutopayCounts counts autopay lifecycle records.
type AutopayCounts struct {
	Start uint64
	End   uint64
}

// AmountTotals sums amounts over all users.
type AmountTotals struct {
	Debit  currency.Currency
	Credit currency.Currency
}

// State is the aggregate of one parse. Users are kept in order of first
// appearance.
type State struct {
	Autopay AutopayCounts
	Totals  AmountTotals

	users []*User
	byID  map[uint64]*User
}

// NewState returns an empty State.
func NewState() *State {
	return &State{byID: make(map[uint64]*User)}
}

// Apply folds one entry into the state. Entries must be applied in file
// order.
func (s *State) Apply(e mps7.LogEntry) {
	u := s.upsert(e.UserID)

	switch e.Kind {
	case mps7.KindStartAutopay:
		s.Autopay.Start++
	case mps7.KindEndAutopay:
		s.Autopay.End++
	case mps7.KindDebit:
		s.Totals.Debit = s.Totals.Debit.Add(e.Amount)
		u.DebitSum = u.DebitSum.Add(e.Amount)
	case mps7.KindCredit:
		s.Totals.Credit = s.Totals.Credit.Add(e.Amount)
		u.CreditSum = u.CreditSum.Add(e.Amount)
	default:
		// DecodeKind never produces anything else.
		panic(fmt.Sprintf("ledger: unexpected record kind %d", e.Kind))
	}
}

func (s *State) upsert(id uint64) *User {
	if u, ok := s.byID[id]; ok {
		return u
	}
	u := &User{ID: id}
	s.byID[id] = u
	s.users = append(s.users, u)
	return u
}

// User returns the user with the given id.
func (s *State) User(id uint64) (User, bool) {
	u, ok := s.byID[id]
	if !ok {
		return User{}, false
	}
	return *u, true
}

// Balance returns the balance for id, or zero and false if the id never
// appeared.
func (s *State) Balance(id uint64) (currency.Currency, bool) {
	u, ok := s.byID[id]
	if !ok {
		return currency.Zero, false
	}
	return u.Balance(), true
}

// Users returns a copy of every user in order of first appearance.
func (s *State) Users() []User {
	out := make([]User, len(s.users))
	for i, u := range s.users {
		out[i] = *u
	}
	return out
}

// Len returns the number of distinct users.
func (s *State) Len() int {
	return len(s.users)
}

// Fold applies entries in order to a fresh State.
func Fold(entries []mps7.LogEntry) *State {
	s := NewState()
	for _, e := range entries {
		s.Apply(e)
	}
	return s
}
