package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"simplecrm/cmd/internal/domain/entity"
	"simplecrm/cmd/internal/domain/sqlite"
)

// setupDB opens a migrated database in a per-test directory.
func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(context.Background(), filepath.Join(t.TempDir(), "crm.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlite.Close(db) })
	return db
}

func strPtr(s string) *string {
	return &s
}

func newClientType(id int) *entity.ClientType {
	return &entity.ClientType{IDTypeClient: id}
}

func newClient(id string, typeID int) *entity.Client {
	return &entity.Client{
		IDClient:          id,
		TypeClient:        typeID,
		NameClient:        "ООО Ромашка",
		InnClient:         "0012345678",
		OgrnClient:        "0123456789012",
		AdressClient:      "Москва",
		BankClient:        "Банк",
		CorBankClient:     "00000000000000000001",
		AccBankClient:     "40702810000000000001",
		BikBankClient:     "044525225",
		ContactNameClient: "Анна",
		MailClient:        "anna@example.com",
		TelClient:         "+79990000000",
		MessClient:        "Telegram",
	}
}

func newExecutor(id string, typeID int) *entity.Executor {
	return &entity.Executor{
		IDExecutor:          id,
		TypeExecutor:        typeID,
		NameExecutor:        "Иван Петров",
		InnExecutor:         "1234567890",
		OgrnExecutor:        "1234567890123",
		AdressExecutor:      "Адрес",
		BankExecutor:        "Банк",
		CorBankExecutor:     "12345678901234567890",
		AccBankExecutor:     "12345678901234567890",
		BikBankExecutor:     "123456789",
		ContactNameExecutor: "Иван Петров",
		MailExecutor:        "ivan@example.com",
		TelExecutor:         "1234567890",
		MessExecutor:        "Telegram",
	}
}

func newDeal(id, clientID, executorID string) *entity.Deal {
	return &entity.Deal{
		IDDeal:      id,
		IDClient:    clientID,
		IDExecutor:  executorID,
		NumberDeal:  "000123",
		DateDeal:    entity.NewDate(2024, time.March, 15),
		PathDocDeal: "deals/" + id + ".docx",
	}
}

func newAttachment(id, dealID, serviceID string) *entity.Attachment {
	return &entity.Attachment{
		IDAttachment:        id,
		IDDeal:              dealID,
		IDService:           serviceID,
		DateStartAttachment: entity.NewDate(2024, time.January, 1),
		DateEndAttachment:   entity.NewDate(2024, time.December, 31),
		PlaceAttachment:     "Москва, Тверская 1",
		PriceAttachment:     decimal.NewNullDecimal(decimal.RequireFromString("1500.50")),
	}
}

// fixture is a fully linked graph: type 1 → client1/executor1 → deal1 →
// attachment1 under service1 of sample_contract1.
type fixture struct {
	clientTypes *DefaultClientTypeRepository
	clients     *DefaultClientRepository
	executors   *DefaultExecutorRepository
	contracts   *DefaultSampleContractRepository
	attaches    *DefaultSampleAttachRepository
	services    *DefaultServiceRepository
	deals       *DefaultDealRepository
	attachments *DefaultAttachmentRepository
}

func newFixture(t *testing.T, db *gorm.DB) *fixture {
	t.Helper()
	f := &fixture{
		clientTypes: NewClientTypeRepository(db),
		clients:     NewClientRepository(db),
		executors:   NewExecutorRepository(db),
		contracts:   NewSampleContractRepository(db),
		attaches:    NewSampleAttachRepository(db),
		services:    NewServiceRepository(db),
		deals:       NewDealRepository(db),
		attachments: NewAttachmentRepository(db),
	}

	ctx := context.Background()
	require.NoError(t, f.clientTypes.Create(ctx, newClientType(1)))
	require.NoError(t, f.clients.Create(ctx, newClient("client1", 1)))
	require.NoError(t, f.executors.Create(ctx, newExecutor("executor1", 1)))
	require.NoError(t, f.contracts.Create(ctx, &entity.SampleContract{
		IDSampleContract:   "sample_contract1",
		NameSampleContract: "Договор А",
		PathSampleContract: "/docs/contract_a.doc",
	}))
	require.NoError(t, f.services.Create(ctx, &entity.Service{
		IDService:        "service1",
		NameService:      "Размещение",
		IDSampleContract: "sample_contract1",
	}))
	require.NoError(t, f.deals.Create(ctx, newDeal("deal1", "client1", "executor1")))
	require.NoError(t, f.attachments.Create(ctx, newAttachment("attachment1", "deal1", "service1")))
	return f
}

func countRows(t *testing.T, db *gorm.DB, table, column, value string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Table(table).Where(column+" = ?", value).Count(&n).Error)
	return n
}
