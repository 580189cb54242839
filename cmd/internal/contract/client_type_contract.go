package contract

type ClientTypeRequest struct {
	IDTypeClient int     `json:"id_type_client" validate:"required,min=1,max=9"`
	IDTypeShort  *string `json:"id_type_short" validate:"omitempty,max=32"`
	IDTypeLong   *string `json:"id_type_long" validate:"omitempty,max=255"`
}

type ClientTypeResponse struct {
	IDTypeClient int     `json:"id_type_client"`
	IDTypeShort  *string `json:"id_type_short"`
	IDTypeLong   *string `json:"id_type_long"`
}
