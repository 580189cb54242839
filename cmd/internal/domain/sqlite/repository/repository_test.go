package repository

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"simplecrm/cmd/internal/domain/entity"
)

func TestClientCheckConstraints(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *entity.Client)
	}{
		{name: "missing prefix", mutate: func(c *entity.Client) { c.IDClient = "customer9" }},
		{name: "bare prefix", mutate: func(c *entity.Client) { c.IDClient = "client" }},
		{name: "wrong type prefix", mutate: func(c *entity.Client) { c.IDClient = "executor9" }},
		{name: "inn too short", mutate: func(c *entity.Client) { c.InnClient = "123456789" }},
		{name: "inn too long", mutate: func(c *entity.Client) { c.InnClient = "1234567890123" }},
		{name: "inn with letters", mutate: func(c *entity.Client) { c.InnClient = "12345678AB" }},
		{name: "ogrn too short", mutate: func(c *entity.Client) { c.OgrnClient = "123456789012" }},
		{name: "ogrn too long", mutate: func(c *entity.Client) { c.OgrnClient = "1234567890123456" }},
		{name: "kpp wrong length", mutate: func(c *entity.Client) { c.KppClient = strPtr("12345678") }},
		{name: "kpp with sign", mutate: func(c *entity.Client) { c.KppClient = strPtr("-12345678") }},
		{name: "bik wrong length", mutate: func(c *entity.Client) { c.BikBankClient = "1234567890" }},
		{name: "account wrong length", mutate: func(c *entity.Client) { c.AccBankClient = "1234" }},
		{name: "correspondent with space", mutate: func(c *entity.Client) { c.CorBankClient = "1234567890 234567890" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupDB(t)
			repo := NewClientRepository(db)
			require.NoError(t, NewClientTypeRepository(db).Create(context.Background(), newClientType(1)))

			client := newClient("client9", 1)
			tt.mutate(client)

			err := repo.Create(context.Background(), client)
			assert.ErrorIs(t, err, ErrCheck)
		})
	}
}

func TestClientDigitFieldsKeepLeadingZeros(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	require.NoError(t, NewClientTypeRepository(db).Create(ctx, newClientType(1)))

	client := newClient("client2", 1)
	client.KppClient = strPtr("000111222")
	repo := NewClientRepository(db)
	require.NoError(t, repo.Create(ctx, client))

	got, err := repo.FindByID(ctx, "client2")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "0012345678", got.InnClient)
	assert.Equal(t, "0123456789012", got.OgrnClient)
	assert.Equal(t, "000111222", *got.KppClient)
	assert.Equal(t, "00000000000000000001", got.CorBankClient)
}

func TestClientTypeRange(t *testing.T) {
	db := setupDB(t)
	repo := NewClientTypeRepository(db)
	ctx := context.Background()

	assert.ErrorIs(t, repo.Create(ctx, newClientType(0)), ErrCheck)
	assert.ErrorIs(t, repo.Create(ctx, newClientType(10)), ErrCheck)
	assert.NoError(t, repo.Create(ctx, newClientType(9)))
}

func TestClientTypeLabelsUnique(t *testing.T) {
	db := setupDB(t)
	repo := NewClientTypeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.ClientType{IDTypeClient: 1, IDTypeShort: strPtr("ООО")}))
	// Absent labels never collide.
	require.NoError(t, repo.Create(ctx, &entity.ClientType{IDTypeClient: 2}))
	require.NoError(t, repo.Create(ctx, &entity.ClientType{IDTypeClient: 3}))

	err := repo.Create(ctx, &entity.ClientType{IDTypeClient: 4, IDTypeShort: strPtr("ООО")})
	assert.ErrorIs(t, err, ErrDuplicate)

	err = repo.Create(ctx, newClientType(1))
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestAttachmentDateOrder(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	backwards := newAttachment("attachment2", "deal1", "service1")
	backwards.DateStartAttachment = entity.NewDate(2024, time.May, 2)
	backwards.DateEndAttachment = entity.NewDate(2024, time.May, 1)
	assert.ErrorIs(t, f.attachments.Create(ctx, backwards), ErrCheck)

	sameDay := newAttachment("attachment3", "deal1", "service1")
	sameDay.DateStartAttachment = entity.NewDate(2024, time.May, 1)
	sameDay.DateEndAttachment = entity.NewDate(2024, time.May, 1)
	assert.NoError(t, f.attachments.Create(ctx, sameDay))
}

func TestAttachmentPriceRoundTrip(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	got, err := f.attachments.FindByID(ctx, "attachment1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.True(t, got.PriceAttachment.Valid)
	assert.Equal(t, "1500.50", got.PriceAttachment.Decimal.StringFixed(2))

	free := newAttachment("attachment2", "deal1", "service1")
	free.PriceAttachment = decimal.NullDecimal{}
	require.NoError(t, f.attachments.Create(ctx, free))

	negative := newAttachment("attachment3", "deal1", "service1")
	negative.PriceAttachment = decimal.NewNullDecimal(decimal.NewFromInt(-1))
	assert.ErrorIs(t, f.attachments.Create(ctx, negative), ErrCheck)
}

func TestDanglingForeignKeyRejected(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	assert.ErrorIs(t, f.clients.Create(ctx, newClient("client2", 7)), ErrForeignKey)
	assert.ErrorIs(t, f.deals.Create(ctx, newDeal("deal2", "client1", "executor404")), ErrForeignKey)
	assert.ErrorIs(t, f.attachments.Create(ctx, newAttachment("attachment2", "deal404", "service1")), ErrForeignKey)
}

func TestClientTypeRestrictDelete(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	err := f.clientTypes.Delete(ctx, 1)
	var depErr *DependentsError
	require.ErrorAs(t, err, &depErr)
	assert.ElementsMatch(t, []string{"clients", "executors"}, depErr.Dependents)
	assert.Equal(t, int64(1), countRows(t, db, "client_types", "id_type_client", "1"))

	require.NoError(t, f.clientTypes.Create(ctx, newClientType(2)))
	assert.NoError(t, f.clientTypes.Delete(ctx, 2))
	assert.ErrorIs(t, f.clientTypes.Delete(ctx, 2), ErrNotFound)
}

func TestRestrictDeletes(t *testing.T) {
	tests := []struct {
		name string
		del  func(f *fixture) error
		want []string
	}{
		{name: "client with deal", del: func(f *fixture) error { return f.clients.Delete(context.Background(), "client1") }, want: []string{"deals"}},
		{name: "executor with deal", del: func(f *fixture) error { return f.executors.Delete(context.Background(), "executor1") }, want: []string{"deals"}},
		{name: "service with attachment", del: func(f *fixture) error { return f.services.Delete(context.Background(), "service1") }, want: []string{"attachments"}},
		{name: "template used by service", del: func(f *fixture) error { return f.contracts.Delete(context.Background(), "sample_contract1") }, want: []string{"services"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, setupDB(t))

			var depErr *DependentsError
			require.ErrorAs(t, tt.del(f), &depErr)
			assert.Equal(t, tt.want, depErr.Dependents)
		})
	}
}

func TestEngineEnforcesRestrict(t *testing.T) {
	db := setupDB(t)
	newFixture(t, db)

	// Bypass the repository pre-check: the schema itself must refuse.
	err := db.Exec("DELETE FROM client_types WHERE id_type_client = ?", 1).Error
	assert.ErrorIs(t, Classify(err), ErrForeignKey)
}

func TestSampleContractCascadeDelete(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	contracts := NewSampleContractRepository(db)
	attaches := NewSampleAttachRepository(db)

	require.NoError(t, contracts.Create(ctx, &entity.SampleContract{
		IDSampleContract:   "sample_contract7",
		NameSampleContract: "Договор Б",
		PathSampleContract: "/docs/b.doc",
	}))
	for _, id := range []string{"sample_attach1", "sample_attach2"} {
		require.NoError(t, attaches.Create(ctx, &entity.SampleAttach{
			IDSampleAttach:   id,
			IDSampleContract: "sample_contract7",
			NameSampleAttach: "Приложение",
			PathSampleAttach: "/docs/" + id + ".doc",
		}))
	}

	require.NoError(t, contracts.Delete(ctx, "sample_contract7"))
	assert.Zero(t, countRows(t, db, "sample_contracts", "id_sample_contract", "sample_contract7"))
	assert.Zero(t, countRows(t, db, "sample_attaches", "id_sample_contract", "sample_contract7"))
}

func TestSampleContractDeleteIsAtomic(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	require.NoError(t, f.attaches.Create(ctx, &entity.SampleAttach{
		IDSampleAttach:   "sample_attach1",
		IDSampleContract: "sample_contract1",
		NameSampleAttach: "Приложение 1",
		PathSampleAttach: "/docs/a1.doc",
	}))

	// service1 blocks the template, so its attaches must survive too.
	require.Error(t, f.contracts.Delete(ctx, "sample_contract1"))
	assert.Equal(t, int64(1), countRows(t, db, "sample_attaches", "id_sample_contract", "sample_contract1"))
	assert.Equal(t, int64(1), countRows(t, db, "sample_contracts", "id_sample_contract", "sample_contract1"))
}

func TestDealCascadeDelete(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	require.NoError(t, f.attachments.Create(ctx, newAttachment("attachment2", "deal1", "service1")))

	require.NoError(t, f.deals.Delete(ctx, "deal1"))
	assert.Zero(t, countRows(t, db, "deals", "id_deal", "deal1"))
	assert.Zero(t, countRows(t, db, "attachments", "id_deal", "deal1"))

	// The service is free again once its attachments are gone.
	assert.NoError(t, f.services.Delete(ctx, "service1"))
}

func TestCreateWithDealRollsBack(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	client := newClient("client2", 1)
	deal := newDeal("deal2", "client2", "executor404")

	assert.ErrorIs(t, f.clients.CreateWithDeal(ctx, client, deal), ErrForeignKey)
	assert.Zero(t, countRows(t, db, "clients", "id_client", "client2"))

	deal.IDExecutor = "executor1"
	require.NoError(t, f.clients.CreateWithDeal(ctx, client, deal))
	assert.Equal(t, int64(1), countRows(t, db, "deals", "id_client", "client2"))
}

func TestFindAllOrdering(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	second := newExecutor("executor2", 1)
	second.NameExecutor = "Алексей Смирнов"
	require.NoError(t, f.executors.Create(ctx, second))

	asc, err := f.executors.FindAll(ctx, Ordering{Column: "name_executor"})
	require.NoError(t, err)
	require.Len(t, asc, 2)
	assert.Equal(t, "executor2", asc[0].IDExecutor)

	desc, err := f.executors.FindAll(ctx, Ordering{Column: "name_executor", Desc: true})
	require.NoError(t, err)
	assert.Equal(t, "executor1", desc[0].IDExecutor)
}

func TestUpdateStatus(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	status := entity.AttachmentStatus{Signed: true, Active: true}
	require.NoError(t, f.attachments.UpdateStatus(ctx, "attachment1", status))

	got, err := f.attachments.FindByID(ctx, "attachment1")
	require.NoError(t, err)
	assert.Equal(t, status, got.Status())

	assert.ErrorIs(t, f.attachments.UpdateStatus(ctx, "attachment404", status), ErrNotFound)
}

func TestFindByParent(t *testing.T) {
	db := setupDB(t)
	f := newFixture(t, db)
	ctx := context.Background()

	rows, err := f.attachments.FindByDeal(ctx, "deal1", Ordering{Column: "date_start_attachment"})
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	rows, err = f.attachments.FindByDeal(ctx, "deal404", Ordering{})
	require.NoError(t, err)
	assert.Empty(t, rows)

	missing, err := f.deals.FindByID(ctx, "deal404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}
