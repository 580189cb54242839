package entity

// Registration and banking numbers are digit strings, never numbers: INN,
// OGRN, KPP and BIK routinely start with zeros.
const (
	InnMinLength  = 10
	InnMaxLength  = 12
	OgrnMinLength = 13
	OgrnMaxLength = 15
	KppLength     = 9
	BikLength     = 9
	AccountLength = 20
)

// Client is the customer side of a deal.
type Client struct {
	IDClient          string  `gorm:"column:id_client;primaryKey;check:id_client GLOB 'client?*'"`
	TypeClient        int     `gorm:"column:type_client;not null;index"`
	NameClient        string  `gorm:"column:name_client;not null;index"`
	InnClient         string  `gorm:"column:inn_client;not null;check:length(inn_client) BETWEEN 10 AND 12 AND inn_client NOT GLOB '*[^0-9]*'"`
	OgrnClient        string  `gorm:"column:ogrn_client;not null;check:length(ogrn_client) BETWEEN 13 AND 15 AND ogrn_client NOT GLOB '*[^0-9]*'"`
	KppClient         *string `gorm:"column:kpp_client;check:kpp_client IS NULL OR (length(kpp_client) = 9 AND kpp_client NOT GLOB '*[^0-9]*')"`
	AdressClient      string  `gorm:"column:adress_client;not null"`
	BankClient        string  `gorm:"column:bank_client;not null"`
	CorBankClient     string  `gorm:"column:cor_bank_client;not null;check:length(cor_bank_client) = 20 AND cor_bank_client NOT GLOB '*[^0-9]*'"`
	AccBankClient     string  `gorm:"column:acc_bank_client;not null;check:length(acc_bank_client) = 20 AND acc_bank_client NOT GLOB '*[^0-9]*'"`
	BikBankClient     string  `gorm:"column:bik_bank_client;not null;check:length(bik_bank_client) = 9 AND bik_bank_client NOT GLOB '*[^0-9]*'"`
	ContactNameClient string  `gorm:"column:contact_name_client;not null"`
	MailClient        string  `gorm:"column:mail_client;not null"`
	TelClient         string  `gorm:"column:tel_client;not null"`
	MessClient        string  `gorm:"column:mess_client;not null"`

	// Relations (constraint declaration only)
	Deals []Deal `gorm:"foreignKey:IDClient;references:IDClient;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Client) TableName() string {
	return "clients"
}

// Executor is the contractor side of a deal. Its shape mirrors Client.
type Executor struct {
	IDExecutor          string  `gorm:"column:id_executor;primaryKey;check:id_executor GLOB 'executor?*'"`
	TypeExecutor        int     `gorm:"column:type_executor;not null;index"`
	NameExecutor        string  `gorm:"column:name_executor;not null;index"`
	InnExecutor         string  `gorm:"column:inn_executor;not null;check:length(inn_executor) BETWEEN 10 AND 12 AND inn_executor NOT GLOB '*[^0-9]*'"`
	OgrnExecutor        string  `gorm:"column:ogrn_executor;not null;check:length(ogrn_executor) BETWEEN 13 AND 15 AND ogrn_executor NOT GLOB '*[^0-9]*'"`
	KppExecutor         *string `gorm:"column:kpp_executor;check:kpp_executor IS NULL OR (length(kpp_executor) = 9 AND kpp_executor NOT GLOB '*[^0-9]*')"`
	AdressExecutor      string  `gorm:"column:adress_executor;not null"`
	BankExecutor        string  `gorm:"column:bank_executor;not null"`
	CorBankExecutor     string  `gorm:"column:cor_bank_executor;not null;check:length(cor_bank_executor) = 20 AND cor_bank_executor NOT GLOB '*[^0-9]*'"`
	AccBankExecutor     string  `gorm:"column:acc_bank_executor;not null;check:length(acc_bank_executor) = 20 AND acc_bank_executor NOT GLOB '*[^0-9]*'"`
	BikBankExecutor     string  `gorm:"column:bik_bank_executor;not null;check:length(bik_bank_executor) = 9 AND bik_bank_executor NOT GLOB '*[^0-9]*'"`
	ContactNameExecutor string  `gorm:"column:contact_name_executor;not null"`
	MailExecutor        string  `gorm:"column:mail_executor;not null"`
	TelExecutor         string  `gorm:"column:tel_executor;not null"`
	MessExecutor        string  `gorm:"column:mess_executor;not null"`

	// Relations (constraint declaration only)
	Deals []Deal `gorm:"foreignKey:IDExecutor;references:IDExecutor;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Executor) TableName() string {
	return "executors"
}
