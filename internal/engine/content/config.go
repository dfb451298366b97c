package content

import (
	"slices"
	"strings"

	"github.com/anatolykoptev/go_repurpose/internal/engine"
)

// Supported platforms.
const (
	Instagram = "Instagram"
	Medium    = "Medium"
)

// platformOrder fixes listing order; contentTypes maps each platform to its
// allowed content types in canonical spelling.
var (
	platformOrder = []string{Instagram, Medium}
	contentTypes  = map[string][]string{
		Instagram: {"Post", "Story", "Carousel"},
		Medium:    {"Article", "Story", "Tutorial"},
	}
)

// PipelineConfig is the target platform and content type of one run.
// Both values are in canonical spelling and are embedded verbatim in every
// stage instruction.
type PipelineConfig struct {
	Platform    string
	ContentType string
}

// NewPipelineConfig resolves platform and contentType case-insensitively.
// Unknown platforms and content types not offered by the platform are
// configuration errors.
func NewPipelineConfig(platform, contentType string) (PipelineConfig, error) {
	p, err := CanonicalPlatform(platform)
	if err != nil {
		return PipelineConfig{}, err
	}
	ct, ok := canonical(contentTypes[p], contentType)
	if !ok {
		return PipelineConfig{}, engine.ConfigError("unsupported content type %q for %s (want one of %s)",
			contentType, p, strings.Join(contentTypes[p], ", "))
	}
	return PipelineConfig{Platform: p, ContentType: ct}, nil
}

// CanonicalPlatform resolves platform case-insensitively to its canonical spelling.
func CanonicalPlatform(platform string) (string, error) {
	p, ok := canonical(platformOrder, platform)
	if !ok {
		return "", engine.ConfigError("unsupported platform %q (want one of %s)",
			platform, strings.Join(platformOrder, ", "))
	}
	return p, nil
}

// Platforms lists supported platforms in display order.
func Platforms() []string {
	return slices.Clone(platformOrder)
}

// ContentTypes lists the content types offered by platform, or nil if the
// platform is unknown. Matching is case-insensitive.
func ContentTypes(platform string) []string {
	p, ok := canonical(platformOrder, platform)
	if !ok {
		return nil
	}
	return slices.Clone(contentTypes[p])
}

func canonical(options []string, v string) (string, bool) {
	v = strings.TrimSpace(v)
	for _, o := range options {
		if strings.EqualFold(o, v) {
			return o, true
		}
	}
	return "", false
}
