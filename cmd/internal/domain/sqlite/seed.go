package sqlite

import (
	"context"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"

	"simplecrm/cmd/internal/domain/entity"
)

// Seed fills empty lookup tables with the default client type, executor and
// contract template. Tables that already hold rows are left alone, so
// running it twice changes nothing.
func Seed(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		short := "ООО"
		long := "Общество с ограниченной ответственностью"
		seeds := []any{
			&entity.ClientType{
				IDTypeClient: 1,
				IDTypeShort:  &short,
				IDTypeLong:   &long,
			},
			&entity.Executor{
				IDExecutor:          entity.PrefixExecutor + "1",
				TypeExecutor:        1,
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
			},
			&entity.SampleContract{
				IDSampleContract:   entity.PrefixSampleContract + "1",
				NameSampleContract: "Договор А",
				PathSampleContract: "/docs/contract_a.doc",
			},
		}

		for _, row := range seeds {
			var count int64
			if err := tx.Model(row).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				continue
			}

			if err := tx.Create(row).Error; err != nil {
				return err
			}
			log.Infof("seeded %T", row)
		}
		return nil
	})
}
