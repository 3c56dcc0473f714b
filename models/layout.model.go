package models

import "gorm.io/datatypes"

// LayoutType identifies one of the homepage layout sections.
type LayoutType string

const (
	LayoutBanner     LayoutType = "Banner"
	LayoutFAQ        LayoutType = "FAQ"
	LayoutCategories LayoutType = "Categories"
)

func (t LayoutType) Valid() bool {
	switch t {
	case LayoutBanner, LayoutFAQ, LayoutCategories:
		return true
	}
	return false
}

type Banner struct {
	Image    Image  `json:"image"`
	Title    string `json:"title"`
	SubTitle string `json:"subTitle"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Category struct {
	Title string `json:"title"`
}

// Layout holds the content of one homepage section; only the field that
// matches Type is populated.
type Layout struct {
	Base
	Type       LayoutType                    `gorm:"size:32;uniqueIndex;not null" json:"type"`
	Banner     datatypes.JSONType[Banner]    `json:"banner"`
	FAQ        datatypes.JSONSlice[FAQItem]  `json:"faq"`
	Categories datatypes.JSONSlice[Category] `json:"categories"`
}
