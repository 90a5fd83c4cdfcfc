package service

import "github.com/rcmunich/robert-chang-portfolio/internal/entity"

// Built-in content served while the store holds nothing for a content type.
// Every function returns a fresh copy so callers may not mutate shared state.

func strPtr(s string) *string { return &s }

// DefaultProfile returns the profile shown before one is stored.
func DefaultProfile() entity.ProfileData {
	return entity.ProfileData{
		Personal: entity.PersonalInfo{
			Name:      "Robert Chang",
			Title:     "Managing Director & Chief Truffle Officer",
			Company:   "American Truffle Company",
			Location:  "San Francisco, California, United States",
			Summary:   "Senior global business leader in technology, truffle cultivation and trade. Results-driven Stanford MBA with extensive general management experience and technical background. Fluent in English, German, Mandarin Chinese and Japanese.",
			Languages: []string{"English", "German", "Mandarin Chinese", "Japanese"},
			Specialties: []string{
				"Market Strategies", "Channel Marketing", "Product Marketing", "Business Development",
				"Advertising", "Pricing", "Sales Promotions", "Distribution", "Corporate Communications",
				"Alliance/Partnerships", "Contract Negotiations", "Sales Development", "Cross-cultural Teams",
				"Team Leadership", "Marketing Management", "Mobile and Wireless", "Branding", "Lead Generation",
			},
		},
	}
}

// DefaultExperiences returns the work history shown before any is stored.
func DefaultExperiences() []entity.Experience {
	return []entity.Experience{
		{
			ID:          "1",
			Company:     "American Truffle Company",
			Position:    "Managing Director & Chief Truffle Officer",
			Duration:    "December 2007 - Present (17 years)",
			Location:    strPtr("San Francisco, California"),
			Description: "Founded and led innovative truffle cultivation company, developing scientific methods to grow European truffles sustainably. Pioneered ultra-fresh truffle distribution globally.",
			Achievements: []string{
				"Established first commercial truffle cultivation operation in North America",
				"Developed proprietary scientific methods for truffle cultivation",
				"Built global distribution network for ultra-fresh truffles",
				"Led company to profitability within 3 years",
			},
			Order:     0,
			Lifecycle: entity.LifecycleActive,
		},
		{
			ID:          "2",
			Company:     "ActionRun, Inc.",
			Position:    "VP of Marketing; CEO",
			Duration:    "2010 - 2013 (3 years)",
			Location:    strPtr("Silicon Valley, California"),
			Description: "Led marketing strategy and later served as CEO for mobile technology startup.",
			Achievements: []string{
				"Grew user base by 400% in first year as VP Marketing",
				"Successfully transitioned to CEO role during critical growth phase",
				"Secured Series A funding of $5M",
				"Established partnerships with major mobile carriers",
			},
			Order:     1,
			Lifecycle: entity.LifecycleActive,
		},
		{
			ID:          "3",
			Company:     "Yahoo!",
			Position:    "Director of Product Marketing",
			Duration:    "October 2007 - February 2009 (1 year 5 months)",
			Location:    strPtr("Sunnyvale, California"),
			Description: "Led product marketing initiatives for Yahoo's core products during critical transformation period.",
			Achievements: []string{
				"Managed product marketing for products serving 500M+ users",
				"Led cross-functional teams across multiple time zones",
				"Developed go-to-market strategies for mobile products",
				"Improved user engagement metrics by 35%",
			},
			Order:     2,
			Lifecycle: entity.LifecycleActive,
		},
	}
}

// DefaultTestimonials returns the quotes shown before any are stored.
func DefaultTestimonials() []entity.Testimonial {
	return []entity.Testimonial{
		{
			ID:        "1",
			Name:      "Sarah Williams",
			Title:     "Former CEO, TechVentures",
			Content:   "Robert's unique combination of technical expertise and business acumen is extraordinary. His ability to bridge cultures and markets made him invaluable to our global expansion.",
			Avatar:    strPtr("https://images.unsplash.com/photo-1494790108755-2616b612b786?w=400&h=400&fit=crop&crop=face"),
			Order:     0,
			Lifecycle: entity.LifecycleActive,
		},
		{
			ID:        "2",
			Name:      "Dr. Marcus Chen",
			Title:     "Research Director, Agricultural Sciences",
			Content:   "Robert's innovative approach to truffle cultivation has revolutionized the industry. His scientific rigor combined with business vision is truly remarkable.",
			Avatar:    strPtr("https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop&crop=face"),
			Order:     1,
			Lifecycle: entity.LifecycleActive,
		},
		{
			ID:        "3",
			Name:      "Lisa Park",
			Title:     "VP Marketing, Global Corp",
			Content:   "Working with Robert at Yahoo was transformative. His cross-cultural leadership and strategic thinking helped us navigate complex international markets successfully.",
			Avatar:    strPtr("https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop&crop=face"),
			Order:     2,
			Lifecycle: entity.LifecycleActive,
		},
	}
}

// DefaultExpertise returns the showcase shown before one is stored.
func DefaultExpertise() entity.Expertise {
	return entity.Expertise{
		Title:       "Truffle Cultivation Innovation",
		Subtitle:    "Pioneering Scientific Approach to European Truffle Cultivation",
		Description: "Combining advanced agricultural science with sustainable practices to revolutionize truffle cultivation in North America.",
		Achievements: []string{
			"First commercial truffle cultivation in North America",
			"Proprietary soil microbiome optimization techniques",
			"Sustainable harvesting methods preserving ecosystem",
			"Global distribution of ultra-fresh truffles within 48 hours",
			"Partnership with Michelin-starred restaurants worldwide",
			"Scientific publications on truffle mycorrhizal relationships",
		},
		Metrics: []entity.ExpertiseMetric{
			{Label: "Years of Research", Value: "17+"},
			{Label: "Truffle Varieties", Value: "8"},
			{Label: "Global Partners", Value: "50+"},
			{Label: "Harvest Success Rate", Value: "95%"},
		},
	}
}
