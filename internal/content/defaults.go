package content

import "biovibe-backend/internal/models"

// Defaults returns the full marketing copy the site ships with. The first
// call to GetContent persists exactly this document.
func Defaults() *models.SiteContent {
	return &models.SiteContent{
		SingletonKey: models.SiteContentKey,

		HeroTitle:           "Supporting Providers with Guidance on",
		HeroTitleHighlight:  "Peptide Solutions",
		HeroSubtitle:        "Trusted, research-backed insights for optimizing patient wellness. We help healthcare professionals navigate the peptide landscape with precision and confidence.",
		HeroCtaText:         "Start a Consultation",
		HeroCtaLink:         "/secure",
		HeroImageCaption:    "Advanced Peptide Science",
		HeroImageSubCaption: "Enhancing Patient Outcomes",

		FeaturesSectionTitle: "Why Providers Partner With Us",
		Features: []models.Feature{
			{Title: "Clarity", Description: "Navigating the peptide landscape with precision."},
			{Title: "Compliance", Description: "Guidance on regulatory standards."},
			{Title: "Provider Support", Description: "Direct expertise for healthcare professionals."},
			{Title: "Transparency", Description: "Honest information on peptide solutions."},
		},

		ServicesSectionLabel: "Our Expertise",
		ServicesSectionTitle: "Areas of Consultation",
		Services: []models.Service{
			{Title: "Peptide Blends", Description: "Custom combinations tailored for specific therapeutic goals.", Tags: []string{"Custom", "Specific"}},
			{Title: "Capsules & Formats", Description: "Alternative delivery systems beyond traditional injectables.", Tags: []string{"Oral", "Topical"}},
			{Title: "Advanced Compounds", Description: "Specialized solutions for complex patient needs.", Tags: []string{"Research", "Clinical"}},
		},

		ContactTitle:    "Ready to optimize your practice?",
		ContactSubtitle: "Connect with our team to learn how BioVibe Peptides can support your patient outcomes.",
		ContactEmail:    "support@biovibepeptides.com",

		CopyrightText: "© 2024 BioVibe Peptides. All rights reserved.",
	}
}
