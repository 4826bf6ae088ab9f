// Package content holds the static copy for the landing page. The text is
// presentation data, not logic; handlers pass it straight to the template.
package content

// Hero is the above-the-fold section.
type Hero struct {
	Badge       string
	Title       string
	Description string
	Highlights  []string
}

// Feature is one card in the features grid.
type Feature struct {
	Title       string
	Description string
}

// ShowcaseItem is one gallery entry.
type ShowcaseItem struct {
	Title       string
	Description string
	Image       string
}

// Testimonial is one quote card.
type Testimonial struct {
	Name    string
	Role    string
	Avatar  string
	Content string
	Rating  int
}

// FAQItem is one collapsible question.
type FAQItem struct {
	Question string
	Answer   string
}

// Catalog bundles every section the landing template renders.
type Catalog struct {
	Hero         Hero
	Features     []Feature
	Showcase     []ShowcaseItem
	Testimonials []Testimonial
	FAQ          []FAQItem
}

// Default returns the site copy.
func Default() Catalog {
	return Catalog{
		Hero: Hero{
			Badge:       "The AI model that outperforms Flux Kontext",
			Title:       "Nano Banana",
			Description: "Transform any image with simple text prompts. Nano-banana's advanced model delivers consistent character editing and scene preservation that surpasses Flux Kontext. Experience the future of AI image editing.",
			Highlights:  []string{"One-shot editing", "Multi-image support", "Natural language"},
		},
		Features: []Feature{
			{
				Title:       "One-Shot Editing",
				Description: "Transform your images instantly with a single prompt. No complex workflows or multiple iterations needed.",
			},
			{
				Title:       "Multi-Image Support",
				Description: "Process multiple images at once with batch mode. Save time and maintain consistency across your entire project.",
			},
			{
				Title:       "Natural Language",
				Description: "Use simple, everyday language to describe your edits. Our AI understands context and intent perfectly.",
			},
		},
		Showcase: []ShowcaseItem{
			{
				Title:       "Portrait Enhancement",
				Description: "Professional headshot transformation with natural lighting adjustments",
				Image:       "/static/img/professional-portrait-photo-enhanced-lighting.jpg",
			},
			{
				Title:       "Scene Transformation",
				Description: "Convert daytime scenes to golden hour with perfect atmosphere",
				Image:       "/static/img/landscape-golden-hour-transformation.jpg",
			},
			{
				Title:       "Style Transfer",
				Description: "Apply artistic styles while maintaining subject consistency",
				Image:       "/static/img/artistic-style-transfer-painting-effect.jpg",
			},
			{
				Title:       "Object Editing",
				Description: "Seamlessly add or remove objects with context-aware AI",
				Image:       "/static/img/photo-editing-object-removal-seamless.jpg",
			},
			{
				Title:       "Color Grading",
				Description: "Professional color correction and mood enhancement",
				Image:       "/static/img/color-grading-cinematic-look.jpg",
			},
			{
				Title:       "Background Change",
				Description: "Replace backgrounds while preserving perfect lighting match",
				Image:       "/static/img/background-replacement-studio-quality.jpg",
			},
		},
		Testimonials: []Testimonial{
			{
				Name:    "Sarah Chen",
				Role:    "Content Creator",
				Avatar:  "/static/img/professional-woman-portrait.png",
				Content: "Nano Banana has completely transformed my workflow. What used to take hours in Photoshop now takes minutes. The AI understands exactly what I want.",
				Rating:  5,
			},
			{
				Name:    "Marcus Rodriguez",
				Role:    "Marketing Director",
				Avatar:  "/static/img/professional-man-portrait.png",
				Content: "The consistency across batch edits is incredible. We process hundreds of product images and the quality is always perfect. Best investment we've made.",
				Rating:  5,
			},
			{
				Name:    "Emily Watson",
				Role:    "Photographer",
				Avatar:  "/static/img/photographer-woman-portrait.jpg",
				Content: "As a professional photographer, I was skeptical at first. But the scene preservation and natural results are outstanding. It's like having an AI assistant.",
				Rating:  5,
			},
			{
				Name:    "David Kim",
				Role:    "E-commerce Manager",
				Avatar:  "/static/img/confident-businessman.png",
				Content: "The multi-image support is a game-changer. We can maintain brand consistency across thousands of products effortlessly. ROI was immediate.",
				Rating:  5,
			},
			{
				Name:    "Lisa Anderson",
				Role:    "Graphic Designer",
				Avatar:  "/static/img/creative-woman-portrait.png",
				Content: "The natural language interface is brilliant. I can describe exactly what I want and it delivers. No more fighting with complex tools.",
				Rating:  5,
			},
			{
				Name:    "James Taylor",
				Role:    "Social Media Manager",
				Avatar:  "/static/img/young-man-portrait.png",
				Content: "Creating engaging content has never been easier. The speed and quality let me experiment more and post better content consistently.",
				Rating:  5,
			},
		},
		FAQ: []FAQItem{
			{
				Question: "What makes Nano Banana different from other AI image editors?",
				Answer:   "Nano Banana uses an advanced AI model that excels at consistent character editing and scene preservation, outperforming competitors like Flux Kontext. Our natural language interface makes complex edits simple, and our one-shot editing means you get great results on the first try.",
			},
			{
				Question: "What file formats are supported?",
				Answer:   "We support all major image formats including JPG, PNG, WebP, and HEIC. Maximum file size is 50MB per image. For batch processing, you can upload multiple images simultaneously.",
			},
			{
				Question: "How does the pricing work?",
				Answer:   "We offer flexible pricing plans based on your usage. Start with our free tier to try the service, then upgrade to Pro for unlimited edits and batch processing. Enterprise plans are available for teams with custom requirements.",
			},
			{
				Question: "Can I use Nano Banana for commercial projects?",
				Answer:   "Yes! All paid plans include commercial usage rights. You own the output images and can use them for any commercial purpose including marketing, products, and client work.",
			},
			{
				Question: "How long does it take to process an image?",
				Answer:   "Most edits complete in 10-30 seconds depending on complexity. Our ultra-fast processing means you can iterate quickly and see results almost instantly. Batch processing runs in parallel for maximum efficiency.",
			},
			{
				Question: "Is my data secure and private?",
				Answer:   "Absolutely. We use enterprise-grade encryption for all uploads and processing. Your images are never used for training, and you can delete them at any time. We're fully GDPR compliant.",
			},
			{
				Question: "Do I need any technical skills to use Nano Banana?",
				Answer:   "Not at all! Our natural language interface means you can describe edits in plain English. No need to learn complex tools or technical jargon. If you can describe what you want, Nano Banana can create it.",
			},
			{
				Question: "What kind of edits can I make?",
				Answer:   "Almost anything! Common use cases include background changes, object removal/addition, style transfers, color grading, lighting adjustments, portrait enhancements, and scene transformations. The AI understands context and maintains consistency.",
			},
		},
	}
}
