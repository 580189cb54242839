package contract

type SampleContractRequest struct {
	NameSampleContract string `json:"name_sample_contract" validate:"required,max=255"`
	PathSampleContract string `json:"path_sample_contract" validate:"required,max=1024"`
}

type SampleContractResponse struct {
	IDSampleContract   string `json:"id_sample_contract"`
	NameSampleContract string `json:"name_sample_contract"`
	PathSampleContract string `json:"path_sample_contract"`
}

type SampleAttachRequest struct {
	IDSampleContract string `json:"id_sample_contract" validate:"required,startswith=sample_contract,min=16"`
	NameSampleAttach string `json:"name_sample_attach" validate:"required,max=255"`
	PathSampleAttach string `json:"path_sample_attach" validate:"required,max=1024"`
}

type SampleAttachResponse struct {
	IDSampleAttach   string `json:"id_sample_attach"`
	IDSampleContract string `json:"id_sample_contract"`
	NameSampleAttach string `json:"name_sample_attach"`
	PathSampleAttach string `json:"path_sample_attach"`
}

type ServiceRequest struct {
	NameService      string `json:"name_service" validate:"required,max=255"`
	IDSampleContract string `json:"id_sample_contract" validate:"required,startswith=sample_contract,min=16"`
}

type ServiceResponse struct {
	IDService        string `json:"id_service"`
	NameService      string `json:"name_service"`
	IDSampleContract string `json:"id_sample_contract"`
}
