package contract

import (
	"github.com/shopspring/decimal"

	"simplecrm/cmd/internal/domain/entity"
)

type DealRequest struct {
	IDClient          string  `json:"id_client" validate:"required,startswith=client,min=7"`
	IDExecutor        string  `json:"id_executor" validate:"required,startswith=executor,min=9"`
	NumberDeal        string  `json:"number_deal" validate:"required,digits,max=32"`
	DateDeal          string  `json:"date_deal" validate:"required,crmdate"`
	StatusDeal        bool    `json:"status_deal"`
	PathDocDeal       string  `json:"path_doc_deal" validate:"max=1024"`
	PathPdfDeal       string  `json:"path_pdf_deal" validate:"max=1024"`
	PathSignedPdfDeal *string `json:"path_signed_pdf_deal" validate:"omitempty,max=1024"`
	StatusOrigDeal    bool    `json:"status_orig_deal"`
}

type DealResponse struct {
	IDDeal            string      `json:"id_deal"`
	IDClient          string      `json:"id_client"`
	IDExecutor        string      `json:"id_executor"`
	NumberDeal        string      `json:"number_deal"`
	DateDeal          entity.Date `json:"date_deal"`
	StatusDeal        bool        `json:"status_deal"`
	PathDocDeal       string      `json:"path_doc_deal"`
	PathPdfDeal       string      `json:"path_pdf_deal"`
	PathSignedPdfDeal *string     `json:"path_signed_pdf_deal"`
	StatusOrigDeal    bool        `json:"status_orig_deal"`
}

// AttachmentRequest takes the price as a JSON number or string; it is kept
// as a decimal and never goes through float64.
type AttachmentRequest struct {
	IDDeal                  string           `json:"id_deal" validate:"required,startswith=deal,min=5"`
	IDService               string           `json:"id_service" validate:"required,startswith=service,min=8"`
	DateStartAttachment     string           `json:"date_start_attachment" validate:"required,crmdate"`
	DateEndAttachment       string           `json:"date_end_attachment" validate:"required,crmdate"`
	PlaceAttachment         string           `json:"place_attachment" validate:"required,max=500"`
	PriceAttachment         *decimal.Decimal `json:"price_attachment"`
	PathDocAttachment       string           `json:"path_doc_attachment" validate:"max=1024"`
	PathPdfAttachment       string           `json:"path_pdf_attachment" validate:"max=1024"`
	PathSignedPdfAttachment *string          `json:"path_signed_pdf_attachment" validate:"omitempty,max=1024"`
}

type AttachmentResponse struct {
	IDAttachment            string      `json:"id_attachment"`
	IDDeal                  string      `json:"id_deal"`
	IDService               string      `json:"id_service"`
	DateStartAttachment     entity.Date `json:"date_start_attachment"`
	DateEndAttachment       entity.Date `json:"date_end_attachment"`
	PlaceAttachment         string      `json:"place_attachment"`
	PriceAttachment         *string     `json:"price_attachment"`
	PathDocAttachment       string      `json:"path_doc_attachment"`
	PathPdfAttachment       string      `json:"path_pdf_attachment"`
	PathSignedPdfAttachment *string     `json:"path_signed_pdf_attachment"`
	SignedAttachment        bool        `json:"signed_attachment"`
	ActiveAttachment        bool        `json:"active_attachment"`
}
