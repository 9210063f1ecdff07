package fixtures

import (
	"github.com/preston-bernstein/nexus-data-service/internal/domain/clubs"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/features"
	"github.com/preston-bernstein/nexus-data-service/internal/domain/news"
)

// Clubs returns the seed club profiles. Each call builds fresh values.
func Clubs() []clubs.Club {
	return []clubs.Club{
		{
			ID:          "finance",
			Name:        "Nexus Finance",
			Tagline:     "Capital, markets and the art of the deal",
			Description: "Students run a live investment fund, dissect earnings calls and meet the founders and investors shaping early-stage finance.",
			Icon:        "trending-up",
			Gradient:    "from-emerald-500 to-teal-600",
			Accent:      "emerald",
			Features: []string{
				"Student-managed investment fund",
				"Weekly market briefings",
				"Venture capital speaker series",
			},
			Leadership: []clubs.Leader{
				{Name: "Priya Raman", Role: "President", Email: "priya@nexus.club", LinkedIn: "https://linkedin.com/in/priyaraman"},
				{Name: "Daniel Okafor", Role: "Head of Investments"},
			},
			UpcomingEvent: clubs.Event{
				Title:       "Term Sheets Demystified",
				Date:        "Oct 24, 2024 • 6:00 PM",
				Type:        "Workshop",
				Description: "A hands-on walkthrough of a seed-stage term sheet with a practising VC.",
				Speakers: []clubs.Speaker{
					{Name: "Maya Chen", Role: "Partner, Northgate Ventures"},
				},
			},
			Stats: []clubs.Stat{
				{Label: "Members", Value: "140+"},
				{Label: "Fund size", Value: "$25K"},
				{Label: "Events / term", Value: "12"},
			},
		},
		{
			ID:          "tech",
			Name:        "Nexus Tech",
			Tagline:     "Build things people want",
			Description: "From first commit to demo day: product sprints, hackathons and mentorship from engineers who have shipped.",
			Icon:        "code",
			Gradient:    "from-indigo-500 to-violet-600",
			Accent:      "indigo",
			Features: []string{
				"Semester-long product sprints",
				"Hackathon team matching",
				"Office hours with startup engineers",
			},
			Leadership: []clubs.Leader{
				{Name: "Lucas Ferreira", Role: "President", Email: "lucas@nexus.club"},
				{Name: "Aisha Bello", Role: "Technical Lead", LinkedIn: "https://linkedin.com/in/aishabello"},
			},
			UpcomingEvent: clubs.Event{
				Title:       "48h Build Weekend",
				Date:        "Nov 2, 2024 • 9:00 AM",
				Type:        "Hackathon",
				Description: "Form a team on Friday, demo a working prototype on Sunday.",
				Speakers: []clubs.Speaker{
					{Name: "Tom Reyes", Role: "CTO, Loopline"},
					{Name: "Hana Sato", Role: "Staff Engineer, Brightwave"},
				},
			},
			Stats: []clubs.Stat{
				{Label: "Members", Value: "210+"},
				{Label: "Projects shipped", Value: "38"},
				{Label: "Hackathon wins", Value: "7"},
			},
		},
		{
			ID:          "marketing",
			Name:        "Nexus Growth",
			Tagline:     "Stories that move markets",
			Description: "Brand, growth and go-to-market practice through live client projects with early-stage startups.",
			Icon:        "megaphone",
			Gradient:    "from-rose-500 to-orange-500",
			Accent:      "rose",
			Features: []string{
				"Live client consulting projects",
				"Growth experiment lab",
				"Portfolio reviews with agency leads",
			},
			Leadership: []clubs.Leader{
				{Name: "Sofia Marin", Role: "President", Email: "sofia@nexus.club"},
			},
			UpcomingEvent: clubs.Event{
				Title:       "Zero-Budget Launch Playbook",
				Date:        "Nov 14, 2024 • 5:30 PM",
				Type:        "Panel",
				Description: "Founders share how they found their first thousand users without paid ads.",
				Speakers: []clubs.Speaker{
					{Name: "Jonah Price", Role: "Founder, Tandem"},
				},
			},
			Stats: []clubs.Stat{
				{Label: "Members", Value: "95+"},
				{Label: "Client projects", Value: "16"},
			},
		},
	}
}

// News returns the seed announcements, newest first.
func News() []news.Item {
	return []news.Item{
		{
			ID:       "1",
			Title:    "Nexus Demo Day returns this spring",
			Summary:  "Twelve student startups will pitch to a panel of founders and investors in the main auditorium.",
			Date:     "Oct 1, 2024",
			Category: news.CategoryAnnouncement,
			Author:   "Nexus Board",
		},
		{
			ID:       "2",
			Title:    "Tech club takes first place at HackState",
			Summary:  "A team of four first-years built an accessibility checker in 36 hours and won the grand prize.",
			Date:     "Sep 18, 2024",
			Category: news.CategoryAchievement,
			Author:   "Lucas Ferreira",
		},
		{
			ID:       "3",
			Title:    "Applications open for the Founders Fellowship",
			Summary:  "Ten fellows will receive mentorship, workspace and a $2,000 stipend to build over the summer.",
			Date:     "Sep 5, 2024",
			Category: news.CategoryOpportunity,
			Author:   "Priya Raman",
		},
	}
}

// Features returns the static landing-page pillars.
func Features() []features.Feature {
	return []features.Feature{
		{
			ID:          "learn",
			Title:       "Learn",
			Subtitle:    "Skills you will not get in class",
			Description: "Workshops and speaker series run by operators, investors and alumni founders.",
			Icon:        "book-open",
			Color:       "text-indigo-500",
			Gradient:    "from-indigo-500/20 to-transparent",
			Variant:     "primary",
		},
		{
			ID:          "build",
			Title:       "Build",
			Subtitle:    "Ship real products",
			Description: "Join a sprint team and take an idea from sketch to launched product in one term.",
			Icon:        "hammer",
			Color:       "text-emerald-500",
			Gradient:    "from-emerald-500/20 to-transparent",
			Variant:     "secondary",
		},
		{
			ID:          "connect",
			Title:       "Connect",
			Subtitle:    "A network that opens doors",
			Description: "Meet mentors, co-founders and employers across the regional startup ecosystem.",
			Icon:        "users",
			Color:       "text-rose-500",
			Gradient:    "from-rose-500/20 to-transparent",
			Variant:     "accent",
		},
		{
			ID:          "launch",
			Title:       "Launch",
			Subtitle:    "From side project to company",
			Description: "Demo Day, the Founders Fellowship and introductions to angel investors.",
			Icon:        "rocket",
			Color:       "text-amber-500",
			Gradient:    "from-amber-500/20 to-transparent",
			Variant:     "highlight",
		},
	}
}
