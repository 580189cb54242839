package entity

// SampleContract is a contract template. It owns its SampleAttach rows.
type SampleContract struct {
	IDSampleContract   string `gorm:"column:id_sample_contract;primaryKey;check:id_sample_contract GLOB 'sample_contract?*'"`
	NameSampleContract string `gorm:"column:name_sample_contract;not null;index"`
	PathSampleContract string `gorm:"column:path_sample_contract;not null"`

	// Relations (constraint declaration only)
	SampleAttaches []SampleAttach `gorm:"foreignKey:IDSampleContract;references:IDSampleContract;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Services       []Service      `gorm:"foreignKey:IDSampleContract;references:IDSampleContract;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (SampleContract) TableName() string {
	return "sample_contracts"
}

// SampleAttach is an attachment template, deleted together with its contract.
type SampleAttach struct {
	IDSampleAttach   string `gorm:"column:id_sample_attach;primaryKey;check:id_sample_attach GLOB 'sample_attach?*'"`
	IDSampleContract string `gorm:"column:id_sample_contract;not null;index"`
	NameSampleAttach string `gorm:"column:name_sample_attach;not null"`
	PathSampleAttach string `gorm:"column:path_sample_attach;not null"`
}

func (SampleAttach) TableName() string {
	return "sample_attaches"
}

// Service is a billable service rendered under a contract template. A
// template in use by a service cannot be removed.
type Service struct {
	IDService        string `gorm:"column:id_service;primaryKey;check:id_service GLOB 'service?*'"`
	NameService      string `gorm:"column:name_service;not null;index"`
	IDSampleContract string `gorm:"column:id_sample_contract;not null;index"`

	// Relations (constraint declaration only)
	Attachments []Attachment `gorm:"foreignKey:IDService;references:IDService;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
}

func (Service) TableName() string {
	return "services"
}
