package domain

import "time"

const day = 24 * time.Hour

const sampleAboutContent = `# About Me

I am a passionate designer with a keen eye for detail and a love for creating meaningful digital experiences. With expertise in UI/UX design, branding, and visual communication, I help businesses connect with their audiences through thoughtful and intentional design.

## My Approach

I believe in user-centered design that not only looks beautiful but also solves real problems. Every project starts with deep research and understanding of the users' needs before moving into the creative process.`

// SampleDocument builds the seed content for a new document owned by
// profile. Every call returns fresh slices.
func SampleDocument(profile Profile, now time.Time) *Document {
	ts := func(ago time.Duration) Timestamp { return NewTimestamp(now.Add(-ago)) }

	return &Document{
		SchemaVersion: CurrentSchemaVersion,
		User:          profile,
		Projects: []Project{
			{
				ID:          "sample-project-1",
				Title:       "Brand Identity Design",
				Description: "A comprehensive brand identity for a tech startup focusing on sustainable solutions.",
				Date:        "2023-12-01",
				CoverImage:  "https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
				Images: []string{
					"https://images.unsplash.com/photo-1649972904349-6e44c42644a7",
					"https://images.unsplash.com/photo-1488590528505-98d2b5aba04b",
					"https://images.unsplash.com/photo-1518770660439-4636190af475",
				},
				CreatedAt: ts(7 * day),
				UpdatedAt: ts(2 * day),
			},
			{
				ID:          "sample-project-2",
				Title:       "UI/UX for Mobile App",
				Description: "User interface and experience design for a health and wellness mobile application.",
				Date:        "2023-11-15",
				CoverImage:  "https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
				Images: []string{
					"https://images.unsplash.com/photo-1461749280684-dccba630e2f6",
					"https://images.unsplash.com/photo-1486312338219-ce68d2c6f44d",
				},
				CreatedAt: ts(14 * day),
				UpdatedAt: ts(10 * day),
			},
		},
		Timeline: []TimelineEntry{
			{
				ID:          "sample-timeline-1",
				Title:       "Graduated Design School",
				Description: "Completed my Bachelor of Arts in Graphic Design with honors.",
				Date:        "2022-05-15",
				Image:       "https://images.unsplash.com/photo-1581091226825-a6a2a5aee158",
				CreatedAt:   ts(0),
			},
			{
				ID:          "sample-timeline-2",
				Title:       "First Client Project",
				Description: "Completed my first major client project with excellent feedback.",
				Date:        "2022-06-30",
				Image:       "https://images.unsplash.com/photo-1485827404703-89b55fcc595e",
				CreatedAt:   ts(0),
			},
		},
		Videos: []VideoItem{
			{
				ID:           "video-1",
				Title:        "Brand Identity Showcase",
				Description:  "A video presentation of our recent brand identity project, showcasing the design process and final deliverables.",
				EmbedURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
				ThumbnailURL: "https://images.unsplash.com/photo-1611162616475-46b635cb6868",
			},
			{
				ID:           "video-2",
				Title:        "UI/UX Design Process",
				Description:  "A walkthrough of our design process for mobile applications, from wireframing to final implementation.",
				EmbedURL:     "https://www.youtube.com/embed/dQw4w9WgXcQ",
				ThumbnailURL: "https://images.unsplash.com/photo-1626785774573-4b799315345d",
			},
		},
		About: AboutSection{
			Content: sampleAboutContent,
			Image:   "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5",
			Layout:  AboutVertical,
		},
		LayoutPreferences: DefaultLayoutPreferences(),
	}
}

// DefaultAbout is used when a migrated document has no about section.
func DefaultAbout() AboutSection {
	return AboutSection{Layout: AboutVertical}
}
