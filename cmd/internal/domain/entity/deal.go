package entity

import "github.com/shopspring/decimal"

// Deal binds a client to an executor under a numbered contract.
// StatusDeal and StatusOrigDeal are set by the caller; nothing derives them.
type Deal struct {
	IDDeal            string  `gorm:"column:id_deal;primaryKey;check:id_deal GLOB 'deal?*'"`
	IDClient          string  `gorm:"column:id_client;not null;index"`
	IDExecutor        string  `gorm:"column:id_executor;not null;index"`
	NumberDeal        string  `gorm:"column:number_deal;not null;check:length(number_deal) > 0 AND number_deal NOT GLOB '*[^0-9]*'"`
	DateDeal          Date    `gorm:"column:date_deal;not null"`
	StatusDeal        bool    `gorm:"column:status_deal;not null;default:false"`
	PathDocDeal       string  `gorm:"column:path_doc_deal;not null"`
	PathPdfDeal       string  `gorm:"column:path_pdf_deal;not null"`
	PathSignedPdfDeal *string `gorm:"column:path_signed_pdf_deal"`
	StatusOrigDeal    bool    `gorm:"column:status_orig_deal;not null;default:false"`

	// Relations (constraint declaration only)
	Attachments []Attachment `gorm:"foreignKey:IDDeal;references:IDDeal;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Deal) TableName() string {
	return "deals"
}

// Attachment is a dated service line of a deal. SignedAttachment and
// ActiveAttachment hold the last computed status, see policy.StatusPolicy.
type Attachment struct {
	IDAttachment            string              `gorm:"column:id_attachment;primaryKey;check:id_attachment GLOB 'attachment?*'"`
	IDDeal                  string              `gorm:"column:id_deal;not null;index"`
	IDService               string              `gorm:"column:id_service;not null;index"`
	DateStartAttachment     Date                `gorm:"column:date_start_attachment;not null"`
	DateEndAttachment       Date                `gorm:"column:date_end_attachment;not null;check:date_end_attachment >= date_start_attachment"`
	PlaceAttachment         string              `gorm:"column:place_attachment;not null"`
	PriceAttachment         decimal.NullDecimal `gorm:"column:price_attachment;type:decimal(12,2);check:price_attachment IS NULL OR price_attachment >= 0"`
	PathDocAttachment       string              `gorm:"column:path_doc_attachment;not null"`
	PathPdfAttachment       string              `gorm:"column:path_pdf_attachment;not null"`
	PathSignedPdfAttachment *string             `gorm:"column:path_signed_pdf_attachment"`
	SignedAttachment        bool                `gorm:"column:signed_attachment;not null;default:false"`
	ActiveAttachment        bool                `gorm:"column:active_attachment;not null;default:false"`
}

func (Attachment) TableName() string {
	return "attachments"
}

// AttachmentStatus is the pair of derived flags of an attachment.
type AttachmentStatus struct {
	Signed bool
	Active bool
}

func (a *Attachment) Status() AttachmentStatus {
	return AttachmentStatus{Signed: a.SignedAttachment, Active: a.ActiveAttachment}
}

func (a *Attachment) ApplyStatus(s AttachmentStatus) {
	a.SignedAttachment = s.Signed
	a.ActiveAttachment = s.Active
}
