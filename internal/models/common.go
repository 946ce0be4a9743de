// internal/models/common.go
package models

// Enums
type Category string

const (
	CategoryWatch     Category = "WATCH"
	CategoryHandbag   Category = "HANDBAG"
	CategoryJewellery Category = "JEWELLERY"
)

// Categories returns the closed category set in ingestion order.
func Categories() []Category {
	return []Category{CategoryWatch, CategoryHandbag, CategoryJewellery}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryWatch, CategoryHandbag, CategoryJewellery:
		return true
	}
	return false
}

type PublishState string

const (
	PublishStatePublished   PublishState = "PUBLISHED"
	PublishStateUnpublished PublishState = "UNPUBLISHED"
	// PublishStateDraft is part of the stored-value contract but no code
	// path produces it.
	PublishStateDraft PublishState = "DRAFT"
)

func (p PublishState) Valid() bool {
	switch p {
	case PublishStatePublished, PublishStateUnpublished, PublishStateDraft:
		return true
	}
	return false
}

type VatMode string

const (
	VatModeStandard     VatMode = "STANDARD"
	VatModeMarginScheme VatMode = "MARGIN_SCHEME"
)
