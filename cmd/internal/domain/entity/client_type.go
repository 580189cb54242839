package entity

const (
	MinClientTypeID = 1
	MaxClientTypeID = 9
)

// ClientType is the classification lookup shared by clients and executors.
type ClientType struct {
	IDTypeClient int     `gorm:"column:id_type_client;primaryKey;autoIncrement:false;check:id_type_client BETWEEN 1 AND 9"`
	IDTypeShort  *string `gorm:"column:id_type_short;uniqueIndex"`
	IDTypeLong   *string `gorm:"column:id_type_long;uniqueIndex"`

	// Relations (constraint declaration only)
	Clients   []Client   `gorm:"foreignKey:TypeClient;references:IDTypeClient;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	Executors []Executor `gorm:"foreignKey:TypeExecutor;references:IDTypeClient;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (ClientType) TableName() string {
	return "client_types"
}
