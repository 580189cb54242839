package contract

// ClientRequest is the "New Client" form. When Deal is set, the first deal
// of the client is created together with it.
type ClientRequest struct {
	TypeClient        int     `json:"type_client" validate:"required,min=1,max=9"`
	NameClient        string  `json:"name_client" validate:"required,max=255"`
	InnClient         string  `json:"inn_client" validate:"required,digits,min=10,max=12"`
	OgrnClient        string  `json:"ogrn_client" validate:"required,digits,min=13,max=15"`
	KppClient         *string `json:"kpp_client" validate:"omitempty,digits,len=9"`
	AdressClient      string  `json:"adress_client" validate:"required,max=500"`
	BankClient        string  `json:"bank_client" validate:"required,max=255"`
	CorBankClient     string  `json:"cor_bank_client" validate:"required,digits,len=20"`
	AccBankClient     string  `json:"acc_bank_client" validate:"required,digits,len=20"`
	BikBankClient     string  `json:"bik_bank_client" validate:"required,digits,len=9"`
	ContactNameClient string  `json:"contact_name_client" validate:"required,max=255"`
	MailClient        string  `json:"mail_client" validate:"required,max=255"`
	TelClient         string  `json:"tel_client" validate:"required,max=64"`
	MessClient        string  `json:"mess_client" validate:"required,max=255"`

	Deal *ClientDealRequest `json:"deal"`
}

type ClientDealRequest struct {
	ExecutorID     string `json:"executor_id" validate:"required,startswith=executor,min=9"`
	ContractDate   string `json:"contract_date" validate:"required,crmdate"`
	ContractNumber string `json:"contract_number" validate:"required,digits,max=32"`
}

type ClientResponse struct {
	IDClient          string  `json:"id_client"`
	TypeClient        int     `json:"type_client"`
	NameClient        string  `json:"name_client"`
	InnClient         string  `json:"inn_client"`
	OgrnClient        string  `json:"ogrn_client"`
	KppClient         *string `json:"kpp_client"`
	AdressClient      string  `json:"adress_client"`
	BankClient        string  `json:"bank_client"`
	CorBankClient     string  `json:"cor_bank_client"`
	AccBankClient     string  `json:"acc_bank_client"`
	BikBankClient     string  `json:"bik_bank_client"`
	ContactNameClient string  `json:"contact_name_client"`
	MailClient        string  `json:"mail_client"`
	TelClient         string  `json:"tel_client"`
	MessClient        string  `json:"mess_client"`

	Deal *DealResponse `json:"deal,omitempty"`
}

type ExecutorRequest struct {
	TypeExecutor        int     `json:"type_executor" validate:"required,min=1,max=9"`
	NameExecutor        string  `json:"name_executor" validate:"required,max=255"`
	InnExecutor         string  `json:"inn_executor" validate:"required,digits,min=10,max=12"`
	OgrnExecutor        string  `json:"ogrn_executor" validate:"required,digits,min=13,max=15"`
	KppExecutor         *string `json:"kpp_executor" validate:"omitempty,digits,len=9"`
	AdressExecutor      string  `json:"adress_executor" validate:"required,max=500"`
	BankExecutor        string  `json:"bank_executor" validate:"required,max=255"`
	CorBankExecutor     string  `json:"cor_bank_executor" validate:"required,digits,len=20"`
	AccBankExecutor     string  `json:"acc_bank_executor" validate:"required,digits,len=20"`
	BikBankExecutor     string  `json:"bik_bank_executor" validate:"required,digits,len=9"`
	ContactNameExecutor string  `json:"contact_name_executor" validate:"required,max=255"`
	MailExecutor        string  `json:"mail_executor" validate:"required,max=255"`
	TelExecutor         string  `json:"tel_executor" validate:"required,max=64"`
	MessExecutor        string  `json:"mess_executor" validate:"required,max=255"`
}

type ExecutorResponse struct {
	IDExecutor          string  `json:"id_executor"`
	TypeExecutor        int     `json:"type_executor"`
	NameExecutor        string  `json:"name_executor"`
	InnExecutor         string  `json:"inn_executor"`
	OgrnExecutor        string  `json:"ogrn_executor"`
	KppExecutor         *string `json:"kpp_executor"`
	AdressExecutor      string  `json:"adress_executor"`
	BankExecutor        string  `json:"bank_executor"`
	CorBankExecutor     string  `json:"cor_bank_executor"`
	AccBankExecutor     string  `json:"acc_bank_executor"`
	BikBankExecutor     string  `json:"bik_bank_executor"`
	ContactNameExecutor string  `json:"contact_name_executor"`
	MailExecutor        string  `json:"mail_executor"`
	TelExecutor         string  `json:"tel_executor"`
	MessExecutor        string  `json:"mess_executor"`
}
