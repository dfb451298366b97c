package engine

// --- Video extraction types ---

// Placeholders used when the video host omits a field.
const (
	DefaultTitle         = "Unknown Title"
	NoTranscriptSentinel = "No transcript available"
	NoDescriptionText    = "No description available"
)

// Independent caps: descriptions embedded in prompts vs. the transcript fallback.
const (
	DescriptionMaxRunes        = 500
	TranscriptFallbackMaxRunes = 1000
)

// VideoRecord is the normalized extraction result for one video.
// When Error is set no other field is meaningful.
type VideoRecord struct {
	VideoID         string `json:"video_id,omitempty"`
	SourceURL       string `json:"url"`
	Title           string `json:"title,omitempty"`
	Description     string `json:"description,omitempty"` // ≤ DescriptionMaxRunes
	DurationSeconds int    `json:"duration,omitempty"`
	Transcript      string `json:"transcript,omitempty"` // never empty on success
	Error           string `json:"error,omitempty"`
}

// Failed reports whether extraction failed.
func (r VideoRecord) Failed() bool {
	return r.Error != ""
}

// --- MCP tool types ---

type GenerateContentInput struct {
	URL         string `json:"url" jsonschema:"YouTube video URL (watch, youtu.be or embed form)"`
	Platform    string `json:"platform" jsonschema:"Target platform: Instagram or Medium"`
	ContentType string `json:"content_type" jsonschema:"Instagram: Post, Story, Carousel. Medium: Article, Story, Tutorial"`
	APIKey      string `json:"api_key,omitempty" jsonschema:"LLM API key (default: server key)"`
}

type GenerateContentOutput struct {
	VideoURL    string `json:"video_url"`
	Platform    string `json:"platform"`
	ContentType string `json:"content_type"`
	Filename    string `json:"filename"` // suggested markdown file name
	Content     string `json:"content"`
}

type VideoAnalyzeInput struct {
	URL string `json:"url" jsonschema:"YouTube video URL (watch, youtu.be or embed form)"`
}

type ContentTypesInput struct {
	Platform string `json:"platform,omitempty" jsonschema:"Only list content types for this platform"`
}

type ContentTypesOutput struct {
	Platforms map[string][]string `json:"platforms"`
}
