package models

import "time"

// SiteContentKey is the constant singleton key. The unique index on
// SingletonKey is what guarantees at most one row system-wide.
const SiteContentKey = "site_content"

type Feature struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Service struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// SiteContent is the editable marketing copy for the public storefront.
// Exactly one row exists; see content.GetContent.
type SiteContent struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	SingletonKey string `gorm:"size:32;not null;uniqueIndex" json:"-"`

	// Hero section
	HeroTitle           string `gorm:"not null" json:"heroTitle"`
	HeroTitleHighlight  string `gorm:"not null" json:"heroTitleHighlight"`
	HeroSubtitle        string `gorm:"not null" json:"heroSubtitle"`
	HeroCtaText         string `gorm:"not null" json:"heroCtaText"`
	HeroCtaLink         string `gorm:"not null" json:"heroCtaLink"`
	HeroImageCaption    string `gorm:"not null" json:"heroImageCaption"`
	HeroImageSubCaption string `gorm:"not null" json:"heroImageSubCaption"`

	// Features section
	FeaturesSectionTitle string    `gorm:"not null" json:"featuresSectionTitle"`
	Features             []Feature `gorm:"serializer:json" json:"features"`

	// Services section
	ServicesSectionLabel string    `gorm:"not null" json:"servicesSectionLabel"`
	ServicesSectionTitle string    `gorm:"not null" json:"servicesSectionTitle"`
	Services             []Service `gorm:"serializer:json" json:"services"`

	// Footer / contact
	ContactTitle    string `gorm:"not null" json:"contactTitle"`
	ContactSubtitle string `gorm:"not null" json:"contactSubtitle"`
	ContactEmail    string `gorm:"not null" json:"contactEmail"`
	CopyrightText   string `gorm:"not null" json:"copyrightText"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
