package economy

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fastprodman/gameledger/internal/repos/accounts"
	"github.com/fastprodman/gameledger/internal/repos/balances"
	"github.com/fastprodman/gameledger/internal/repos/currencies"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	dollar = currencies.Currency{
		ID: 1, NameSingular: "Dollar", NamePlural: "Dollars",
		Symbol: "$", NumFractionDigits: 2, IsDefault: true,
	}
	gold = currencies.Currency{
		ID: 2, NameSingular: "Gold", NamePlural: "Gold",
		Symbol: "G", NumFractionDigits: 0,
	}
)

type balanceKey struct {
	account  uuid.UUID
	currency int
}

// memLedger implements all three store interfaces over maps. err, when set,
// is returned by every call.
type memLedger struct {
	mu          sync.Mutex
	err         error
	transferErr error
	accts       map[uuid.UUID]accounts.Account
	bals        map[balanceKey]decimal.Decimal
	curs        []currencies.Currency
	defaults    map[int]decimal.Decimal
	transfers   int
}

func newMemLedger() *memLedger {
	return &memLedger{
		accts:    map[uuid.UUID]accounts.Account{},
		bals:     map[balanceKey]decimal.Decimal{},
		curs:     []currencies.Currency{dollar, gold},
		defaults: map[int]decimal.Decimal{dollar.ID: decimal.Zero, gold.ID: decimal.RequireFromString("100")},
	}
}

func (m *memLedger) economy() *Economy {
	return New(nil, accountsView{m}, balancesView{m}, currenciesView{m})
}

func (m *memLedger) put(id uuid.UUID, currencyID int, amount string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accts[id]; !ok {
		m.accts[id] = accounts.Account{ID: id, Created: time.Now()}
	}
	m.bals[balanceKey{id, currencyID}] = decimal.RequireFromString(amount)
}

func (m *memLedger) balance(id uuid.UUID, currencyID int) (decimal.Decimal, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.bals[balanceKey{id, currencyID}]
	return v, ok
}

type accountsView struct{ m *memLedger }

func (v accountsView) Create(_ context.Context, id uuid.UUID) error {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return m.err
	}
	if _, ok := m.accts[id]; !ok {
		m.accts[id] = accounts.Account{ID: id, Created: time.Now()}
	}
	for cur, amount := range m.defaults {
		k := balanceKey{id, cur}
		if _, ok := m.bals[k]; !ok {
			m.bals[k] = amount
		}
	}
	return nil
}

func (v accountsView) Get(_ context.Context, id uuid.UUID) (accounts.Account, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return accounts.Account{}, m.err
	}
	a, ok := m.accts[id]
	if !ok {
		return accounts.Account{}, accounts.ErrAccountNotFound
	}
	return a, nil
}

func (v accountsView) List(_ context.Context) ([]accounts.Account, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	out := make([]accounts.Account, 0, len(m.accts))
	for _, a := range m.accts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (v accountsView) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return false, m.err
	}
	if _, ok := m.accts[id]; !ok {
		return false, nil
	}
	delete(m.accts, id)
	for k := range m.bals {
		if k.account == id {
			delete(m.bals, k)
		}
	}
	return true, nil
}

type balancesView struct{ m *memLedger }

func (v balancesView) Get(_ context.Context, id uuid.UUID, currencyID int) (decimal.Decimal, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return decimal.Zero, m.err
	}
	b, ok := m.bals[balanceKey{id, currencyID}]
	if !ok {
		return decimal.Zero, balances.ErrBalanceNotFound
	}
	return b, nil
}

func (v balancesView) Top(_ context.Context, currencyID int, limit int) ([]balances.Balance, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return nil, m.err
	}
	out := []balances.Balance{}
	for k, b := range m.bals {
		if k.currency == currencyID {
			out = append(out, balances.Balance{AccountID: k.account, CurrencyID: currencyID, Amount: b})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if c := out[i].Amount.Cmp(out[j].Amount); c != 0 {
			return c > 0
		}
		return out[i].AccountID.String() < out[j].AccountID.String()
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (v balancesView) Update(_ context.Context, id uuid.UUID, currencyID int, amount decimal.Decimal) (int64, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return 0, m.err
	}
	k := balanceKey{id, currencyID}
	if _, ok := m.bals[k]; !ok {
		return 0, nil
	}
	m.bals[k] = amount
	return 1, nil
}

func (v balancesView) Deposit(_ context.Context, id uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return decimal.Zero, m.err
	}
	k := balanceKey{id, currencyID}
	b, ok := m.bals[k]
	if !ok {
		return decimal.Zero, balances.ErrBalanceNotFound
	}
	m.bals[k] = b.Add(amount)
	return m.bals[k], nil
}

func (v balancesView) Withdraw(_ context.Context, id uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.withdrawLocked(id, currencyID, amount)
}

func (m *memLedger) withdrawLocked(id uuid.UUID, currencyID int, amount decimal.Decimal) (decimal.Decimal, error) {
	if m.err != nil {
		return decimal.Zero, m.err
	}
	k := balanceKey{id, currencyID}
	b, ok := m.bals[k]
	if !ok {
		return decimal.Zero, balances.ErrBalanceNotFound
	}
	if b.LessThan(amount) {
		return decimal.Zero, balances.ErrInsufficientFunds
	}
	m.bals[k] = b.Sub(amount)
	return m.bals[k], nil
}

func (v balancesView) Transfer(_ context.Context, fromID, toID uuid.UUID, currencyID int, amount decimal.Decimal) error {
	m := v.m
	m.mu.Lock()
	defer m.mu.Unlock()

	m.transfers++
	if m.transferErr != nil {
		return m.transferErr
	}
	to := balanceKey{toID, currencyID}
	toBal, ok := m.bals[to]
	if !ok {
		return balances.ErrBalanceNotFound
	}
	if _, err := m.withdrawLocked(fromID, currencyID, amount); err != nil {
		return err
	}
	m.bals[to] = toBal.Add(amount)
	return nil
}

type currenciesView struct{ m *memLedger }

func (v currenciesView) GetDefault(_ context.Context) (currencies.Currency, error) {
	if v.m.err != nil {
		return currencies.Currency{}, v.m.err
	}
	for _, c := range v.m.curs {
		if c.IsDefault {
			return c, nil
		}
	}
	return currencies.Currency{}, currencies.ErrCurrencyNotFound
}

func (v currenciesView) Get(_ context.Context, id int) (currencies.Currency, error) {
	if v.m.err != nil {
		return currencies.Currency{}, v.m.err
	}
	for _, c := range v.m.curs {
		if c.ID == id {
			return c, nil
		}
	}
	return currencies.Currency{}, currencies.ErrCurrencyNotFound
}

func (v currenciesView) GetByName(_ context.Context, name string) (currencies.Currency, error) {
	if v.m.err != nil {
		return currencies.Currency{}, v.m.err
	}
	for _, c := range v.m.curs {
		if c.NameSingular == name {
			return c, nil
		}
	}
	return currencies.Currency{}, currencies.ErrCurrencyNotFound
}

func (v currenciesView) List(_ context.Context) ([]currencies.Currency, error) {
	if v.m.err != nil {
		return nil, v.m.err
	}
	return append([]currencies.Currency(nil), v.m.curs...), nil
}
