package usecase

import (
	"context"
	"crypto/ed25519"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"crowdfund/internal/adapter/memory"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
)

const (
	testSpace   = 9000
	testFunding = 1_000_000_000
)

var testParams = Params{SeedTag: "CAMPAIGN_DEMO", ProgramID: "test-program", AccountSpace: testSpace}

func newKey(t *testing.T, seed byte) domain.PublicKey {
	t.Helper()
	s := make([]byte, ed25519.SeedSize)
	for i := range s {
		s[i] = seed
	}
	var k domain.PublicKey
	copy(k[:], ed25519.NewKeyFromSeed(s).Public().(ed25519.PublicKey))
	return k
}

type fixture struct {
	ledger *memory.Ledger
	svc    *CampaignUseCase
	alice  domain.PublicKey
	bob    domain.PublicKey
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		ledger: memory.NewLedger(domain.DefaultRent),
		alice:  newKey(t, 1),
		bob:    newKey(t, 2),
	}
	require.NoError(t, f.ledger.Fund(f.alice.Address(), testFunding))
	require.NoError(t, f.ledger.Fund(f.bob.Address(), testFunding))
	f.svc = NewCampaignUseCase(f.ledger, testParams, nil, nil)
	return f
}

func (f *fixture) balance(t *testing.T, addr domain.Address) uint64 {
	t.Helper()
	b, err := f.svc.GetBalance(context.Background(), addr)
	require.NoError(t, err)
	return b
}

func (f *fixture) campaign(t *testing.T, addr domain.Address) *port.CampaignInfo {
	t.Helper()
	info, err := f.svc.GetCampaign(context.Background(), addr)
	require.NoError(t, err)
	return info
}

func TestCreate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	receipt, err := f.svc.Create(ctx, f.alice, "Save the Cats", "desc")
	require.NoError(t, err)

	addr := f.svc.CampaignAddress(f.alice)
	floor := domain.DefaultRent.MinimumBalance(testSpace)
	assert.Equal(t, addr, receipt.Campaign.Address)
	assert.Equal(t, f.alice, receipt.Campaign.Admin)
	assert.Equal(t, uint64(0), receipt.Campaign.AmountDonated)
	assert.Equal(t, floor, receipt.Balance)
	assert.Equal(t, uint64(testFunding)-floor, receipt.SignerBalance)

	info := f.campaign(t, addr)
	assert.Equal(t, "Save the Cats", info.Campaign.Name)
	assert.Equal(t, "desc", info.Campaign.Description)
	assert.Equal(t, floor, info.ReserveFloor)
}

func TestCreateDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.alice, "first", "one")
	require.NoError(t, err)
	before := f.balance(t, f.alice.Address())

	_, err = f.svc.Create(ctx, f.alice, "second", "two")
	require.ErrorIs(t, err, domain.ErrDuplicateAccount)

	info := f.campaign(t, f.svc.CampaignAddress(f.alice))
	assert.Equal(t, "first", info.Campaign.Name)
	assert.Equal(t, before, f.balance(t, f.alice.Address()))
}

func TestCreateUnfundedCaller(t *testing.T) {
	f := newFixture(t)
	pauper := newKey(t, 9)

	_, err := f.svc.Create(context.Background(), pauper, "name", "desc")
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)

	_, err = f.svc.GetCampaign(context.Background(), f.svc.CampaignAddress(pauper))
	require.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestCreateRecordTooLarge(t *testing.T) {
	f := newFixture(t)
	big := make([]byte, testSpace)

	_, err := f.svc.Create(context.Background(), f.alice, string(big), "")
	require.ErrorIs(t, err, domain.ErrRecordTooLarge)
	assert.Equal(t, uint64(testFunding), f.balance(t, f.alice.Address()))
}

func TestDonate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	before := f.campaign(t, addr).Balance

	receipt, err := f.svc.Donate(ctx, f.bob, addr, 1000)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), receipt.Campaign.AmountDonated)
	assert.Equal(t, before+1000, receipt.Balance)
	assert.Equal(t, uint64(testFunding-1000), receipt.SignerBalance)

	info := f.campaign(t, addr)
	assert.Equal(t, before+1000, info.Balance)
	assert.Equal(t, uint64(1000), info.Campaign.AmountDonated)
}

func TestDonateZeroIsNoop(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	before := f.campaign(t, addr)

	_, err = f.svc.Donate(ctx, f.bob, addr, 0)
	require.NoError(t, err)
	assert.Equal(t, *before, *f.campaign(t, addr))
	assert.Equal(t, uint64(testFunding), f.balance(t, f.bob.Address()))
}

func TestDonateInsufficientFunds(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	before := f.campaign(t, addr)

	_, err = f.svc.Donate(ctx, f.bob, addr, testFunding+1)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, *before, *f.campaign(t, addr))
	assert.Equal(t, uint64(testFunding), f.balance(t, f.bob.Address()))
}

func TestDonateUnknownCampaign(t *testing.T) {
	f := newFixture(t)

	_, err := f.svc.Donate(context.Background(), f.bob, f.svc.CampaignAddress(f.bob), 10)
	require.ErrorIs(t, err, domain.ErrAccountNotFound)

	// a plain wallet is not a campaign
	_, err = f.svc.Donate(context.Background(), f.bob, f.alice.Address(), 10)
	require.ErrorIs(t, err, domain.ErrNotCampaign)
	assert.Equal(t, uint64(testFunding), f.balance(t, f.bob.Address()))
}

func TestDonateCounterOverflowRollsBack(t *testing.T) {
	ctx := context.Background()
	admin := newKey(t, 1)
	donor := newKey(t, 2)
	addr := domain.DeriveAddress(testParams.SeedTag, admin, testParams.ProgramID)

	c := domain.NewCampaign(admin, "c", "d")
	c.AmountDonated = ^uint64(0)
	data, err := domain.EncodeCampaign(c, testSpace)
	require.NoError(t, err)

	ledger := mocks.NewMockLedger(t)
	tx := mocks.NewMockLedgerTx(t)
	ledger.EXPECT().
		Atomically(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(port.LedgerTx) error) error { return fn(tx) })

	tx.EXPECT().GetAccount(mock.Anything, addr).
		Return(&domain.Account{Address: addr, Lamports: 5000, Space: testSpace, Data: data}, nil)
	tx.EXPECT().GetAccount(mock.Anything, donor.Address()).
		Return(&domain.Account{Address: donor.Address(), Lamports: 100}, nil)
	tx.EXPECT().Debit(mock.Anything, donor.Address(), uint64(1)).Return(nil)
	tx.EXPECT().Credit(mock.Anything, addr, uint64(1)).Return(nil)

	svc := NewCampaignUseCase(ledger, testParams, nil, nil)
	_, err = svc.Donate(ctx, donor, addr, 1)
	require.ErrorIs(t, err, domain.ErrArithmeticOverflow)
	// the record is never rewritten, so the ledger rolls the transfer back
	tx.AssertNotCalled(t, "WriteData", mock.Anything, mock.Anything, mock.Anything)
}

func TestDonateTransferFailurePropagates(t *testing.T) {
	ctx := context.Background()
	admin := newKey(t, 1)
	donor := newKey(t, 2)
	addr := domain.DeriveAddress(testParams.SeedTag, admin, testParams.ProgramID)
	data, err := domain.EncodeCampaign(domain.NewCampaign(admin, "c", "d"), testSpace)
	require.NoError(t, err)

	ledger := mocks.NewMockLedger(t)
	tx := mocks.NewMockLedgerTx(t)
	ledger.EXPECT().
		Atomically(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, fn func(port.LedgerTx) error) error { return fn(tx) })
	tx.EXPECT().GetAccount(mock.Anything, addr).
		Return(&domain.Account{Address: addr, Lamports: 5000, Space: testSpace, Data: data}, nil)
	tx.EXPECT().GetAccount(mock.Anything, donor.Address()).
		Return(&domain.Account{Address: donor.Address(), Lamports: 100}, nil)
	tx.EXPECT().Debit(mock.Anything, donor.Address(), uint64(50)).Return(nil)
	tx.EXPECT().Credit(mock.Anything, addr, uint64(50)).Return(domain.ErrTransferFailure)

	svc := NewCampaignUseCase(ledger, testParams, nil, nil)
	_, err = svc.Donate(ctx, donor, addr, 50)
	require.ErrorIs(t, err, domain.ErrTransferFailure)
	tx.AssertNotCalled(t, "WriteData", mock.Anything, mock.Anything, mock.Anything)
}

func TestWithdraw(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	_, err = f.svc.Donate(ctx, f.bob, addr, 1000)
	require.NoError(t, err)

	campaignBefore := f.campaign(t, addr).Balance
	aliceBefore := f.balance(t, f.alice.Address())

	receipt, err := f.svc.Withdraw(ctx, f.alice, addr, 500)
	require.NoError(t, err)
	assert.Equal(t, campaignBefore-500, receipt.Balance)
	assert.Equal(t, aliceBefore+500, receipt.SignerBalance)

	info := f.campaign(t, addr)
	assert.Equal(t, campaignBefore-500, info.Balance)
	assert.Equal(t, aliceBefore+500, f.balance(t, f.alice.Address()))
	// withdrawals never reduce the lifetime total
	assert.Equal(t, uint64(1000), info.Campaign.AmountDonated)
}

func TestWithdrawUnauthorized(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	_, err = f.svc.Donate(ctx, f.bob, addr, 1000)
	require.NoError(t, err)
	before := f.campaign(t, addr)
	bobBefore := f.balance(t, f.bob.Address())

	_, err = f.svc.Withdraw(ctx, f.bob, addr, 500)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	assert.Equal(t, *before, *f.campaign(t, addr))
	assert.Equal(t, bobBefore, f.balance(t, f.bob.Address()))
}

func TestWithdrawReserveFloor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	_, err = f.svc.Donate(ctx, f.bob, addr, 1000)
	require.NoError(t, err)
	before := f.campaign(t, addr)

	_, err = f.svc.Withdraw(ctx, f.alice, addr, 1001)
	require.ErrorIs(t, err, domain.ErrInsufficientFunds)
	assert.Equal(t, *before, *f.campaign(t, addr))

	// exactly the amount above the floor is withdrawable
	_, err = f.svc.Withdraw(ctx, f.alice, addr, 1000)
	require.NoError(t, err)
	info := f.campaign(t, addr)
	assert.Equal(t, info.ReserveFloor, info.Balance)
}

func TestEndToEnd(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, f.alice, "Save the Cats", "desc")
	require.NoError(t, err)
	require.Equal(t, f.alice, created.Campaign.Admin)
	require.Zero(t, created.Campaign.AmountDonated)
	addr := created.Campaign.Address

	donated, err := f.svc.Donate(ctx, f.bob, addr, 1000)
	require.NoError(t, err)
	require.Equal(t, created.Balance+1000, donated.Balance)
	require.Equal(t, uint64(1000), donated.Campaign.AmountDonated)

	aliceBefore := f.balance(t, f.alice.Address())
	withdrawn, err := f.svc.Withdraw(ctx, f.alice, addr, 500)
	require.NoError(t, err)
	require.Equal(t, donated.Balance-500, withdrawn.Balance)
	require.Equal(t, aliceBefore+500, withdrawn.SignerBalance)
	require.Equal(t, uint64(1000), withdrawn.Campaign.AmountDonated)

	_, err = f.svc.Withdraw(ctx, f.bob, addr, 500)
	require.ErrorIs(t, err, domain.ErrUnauthorized)
	require.Equal(t, withdrawn.Balance, f.campaign(t, addr).Balance)

	list, err := f.svc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, addr, list[0].Campaign.Address)
}

func TestListCampaignsOrdered(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "a", "")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.bob, "b", "")
	require.NoError(t, err)

	list, err := f.svc.ListCampaigns(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	a, b := list[0].Campaign.Address, list[1].Campaign.Address
	assert.Negative(t, compareAddr(a, b))
}

func compareAddr(a, b domain.Address) int {
	for i := range a {
		if a[i] != b[i] {
			return int(a[i]) - int(b[i])
		}
	}
	return 0
}

// TestConcurrentDonations ensures concurrent donations are serialised by the
// ledger without losing updates to either the balance or the counter.
func TestConcurrentDonations(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.svc.Create(ctx, f.alice, "c", "d")
	require.NoError(t, err)
	addr := f.svc.CampaignAddress(f.alice)
	before := f.campaign(t, addr).Balance

	var wg sync.WaitGroup
	count := 20
	errs := make(chan error, count)
	for i := 0; i < count; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.Donate(ctx, f.bob, addr, 10)
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	info := f.campaign(t, addr)
	assert.Equal(t, before+uint64(count*10), info.Balance)
	assert.Equal(t, uint64(count*10), info.Campaign.AmountDonated)
	assert.Equal(t, uint64(testFunding-count*10), f.balance(t, f.bob.Address()))
}

func TestLedgerErrorsPropagate(t *testing.T) {
	boom := errors.New("boom")
	ledger := mocks.NewMockLedger(t)
	ledger.EXPECT().Atomically(mock.Anything, mock.Anything).Return(boom)

	svc := NewCampaignUseCase(ledger, testParams, nil, nil)
	_, err := svc.ListCampaigns(context.Background())
	require.ErrorIs(t, err, boom)
}
